package rpcruntime_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/rpcruntime"
)

func TestPipeSendRecvFIFO(t *testing.T) {
	p := rpcruntime.NewPipe[int](4)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Send(ctx, i))
	}
	for i := 0; i < 3; i++ {
		v, err := p.Recv(ctx)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestPipeCloseSendDrainsThenEOF(t *testing.T) {
	p := rpcruntime.NewPipe[string](2)
	ctx := context.Background()

	require.NoError(t, p.Send(ctx, "a"))
	require.NoError(t, p.Send(ctx, "b"))
	require.NoError(t, p.CloseSend())

	v, err := p.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", v)

	v, err = p.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = p.Recv(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestPipeContextCancelFlipsToStatus(t *testing.T) {
	p := rpcruntime.NewPipe[int](0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Recv(ctx)
	st := rpcruntime.FromError(err)
	require.Equal(t, rpcruntime.Cancelled, st.Code)
}

func TestPipeFullDuplexConcurrentSendRecv(t *testing.T) {
	// One Pipe per direction, as a Channel's bidi stream would hand back:
	// sends on one proceed independently of recvs on the other.
	up := rpcruntime.NewPipe[int](0)
	down := rpcruntime.NewPipe[int](0)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3; i++ {
			v, err := up.Recv(ctx)
			require.NoError(t, err)
			require.NoError(t, down.Send(ctx, v*2))
		}
	}()

	for i := 0; i < 3; i++ {
		require.NoError(t, up.Send(ctx, i))
		v, err := down.Recv(ctx)
		require.NoError(t, err)
		require.Equal(t, i*2, v)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("echo goroutine did not finish")
	}
}

func TestPipeCloseIsIdempotent(t *testing.T) {
	p := rpcruntime.NewPipe[int](0)
	p.Close(rpcruntime.New(rpcruntime.Aborted, "first"))
	p.Close(rpcruntime.New(rpcruntime.Internal, "second"))

	_, err := p.Recv(context.Background())
	st := rpcruntime.FromError(err)
	require.Equal(t, rpcruntime.Aborted, st.Code)
}
