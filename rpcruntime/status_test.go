package rpcruntime_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/rpcruntime"
)

func TestStatusErrIsNilForOK(t *testing.T) {
	st := rpcruntime.New(rpcruntime.OK, "")
	require.NoError(t, st.Err())
}

func TestStatusErrWrapsNonOK(t *testing.T) {
	st := rpcruntime.New(rpcruntime.NotFound, "no such widget")
	err := st.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not_found")
	require.Contains(t, err.Error(), "no such widget")
}

func TestStatusFromErrorUnwrapsWrapped(t *testing.T) {
	st := rpcruntime.New(rpcruntime.PermissionDenied, "nope")
	wrapped := fmt.Errorf("calling service: %w", st.Err())

	got := rpcruntime.FromError(wrapped)
	require.Equal(t, rpcruntime.PermissionDenied, got.Code)
}

func TestStatusFromErrorOpaqueIsUnknown(t *testing.T) {
	got := rpcruntime.FromError(errors.New("boom"))
	require.Equal(t, rpcruntime.Unknown, got.Code)
}

func TestStatusFromNilErrorIsOK(t *testing.T) {
	got := rpcruntime.FromError(nil)
	require.Equal(t, rpcruntime.OK, got.Code)
}

func TestStatusCodeStringUnknownValue(t *testing.T) {
	require.Contains(t, rpcruntime.StatusCode(999).String(), "999")
}
