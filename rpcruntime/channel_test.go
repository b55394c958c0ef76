package rpcruntime_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/rpcruntime"
)

// echoChannel is a minimal in-process Channel used to exercise the
// interface's contract; real transports (HTTP/2, in-process dispatch,
// whatever a generated server binds to) implement the same shape.
type echoChannel struct{}

func (echoChannel) Unary(_ context.Context, _ string, req []byte) ([]byte, error) {
	return append([]byte(nil), req...), nil
}

func (echoChannel) ServerStream(ctx context.Context, _ string, req []byte) (rpcruntime.RecvStream[[]byte], error) {
	p := rpcruntime.NewPipe[[]byte](2)
	go func() {
		_ = p.Send(ctx, req)
		_ = p.Send(ctx, req)
		_ = p.CloseSend()
	}()
	return p, nil
}

func (echoChannel) ClientStream(ctx context.Context, _ string) (rpcruntime.SendStream[[]byte], rpcruntime.RecvStream[[]byte], error) {
	in := rpcruntime.NewPipe[[]byte](4)
	out := rpcruntime.NewPipe[[]byte](1)
	go func() {
		var joined []byte
		for {
			v, err := in.Recv(ctx)
			if err != nil {
				break
			}
			joined = append(joined, v...)
		}
		_ = out.Send(ctx, joined)
		_ = out.CloseSend()
	}()
	return in, out, nil
}

func (echoChannel) BidiStream(ctx context.Context, _ string) (rpcruntime.SendStream[[]byte], rpcruntime.RecvStream[[]byte], error) {
	in := rpcruntime.NewPipe[[]byte](4)
	out := rpcruntime.NewPipe[[]byte](4)
	go func() {
		for {
			v, err := in.Recv(ctx)
			if err != nil {
				_ = out.CloseSend()
				return
			}
			_ = out.Send(ctx, v)
		}
	}()
	return in, out, nil
}

var _ rpcruntime.Channel = echoChannel{}

func TestChannelUnary(t *testing.T) {
	ch := echoChannel{}
	resp, err := ch.Unary(context.Background(), "/pkg.Svc/Method", []byte("hi"))
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), resp)
}

func TestChannelServerStream(t *testing.T) {
	ctx := context.Background()
	ch := echoChannel{}
	rs, err := ch.ServerStream(ctx, "/pkg.Svc/Method", []byte("x"))
	require.NoError(t, err)

	v, err := rs.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), v)
	v, err = rs.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), v)
	_, err = rs.Recv(ctx)
	require.Error(t, err)
}

func TestChannelClientStream(t *testing.T) {
	ctx := context.Background()
	ch := echoChannel{}
	ss, rs, err := ch.ClientStream(ctx, "/pkg.Svc/Method")
	require.NoError(t, err)

	require.NoError(t, ss.Send(ctx, []byte("a")))
	require.NoError(t, ss.Send(ctx, []byte("b")))
	require.NoError(t, ss.CloseSend())

	resp, err := rs.Recv(ctx)
	require.NoError(t, err)
	require.True(t, bytes.Equal([]byte("ab"), resp))
}

func TestChannelBidiStream(t *testing.T) {
	ctx := context.Background()
	ch := echoChannel{}
	ss, rs, err := ch.BidiStream(ctx, "/pkg.Svc/Method")
	require.NoError(t, err)

	require.NoError(t, ss.Send(ctx, []byte("ping")))
	v, err := rs.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("ping"), v)

	require.NoError(t, ss.CloseSend())
}
