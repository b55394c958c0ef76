package rpcruntime

import "context"

// Channel is the transport abstraction a generated Client calls into. It
// knows nothing about message types — every call carries and returns
// already-encoded bytes — so the same Channel implementation serves
// every generated service (spec §4.6). Channels are owned by the
// caller; a Client holds a non-owning handle and never closes one.
type Channel interface {
	// Unary sends one request and receives one response.
	Unary(ctx context.Context, path string, request []byte) ([]byte, error)

	// ServerStream sends one request and receives a stream of responses.
	ServerStream(ctx context.Context, path string, request []byte) (RecvStream[[]byte], error)

	// ClientStream opens a stream of requests and resolves to one
	// response once the caller closes the send side and the peer
	// replies. The response is obtained via RecvStream so the call
	// shares a uniform cancellation path with the other three modes.
	ClientStream(ctx context.Context, path string) (SendStream[[]byte], RecvStream[[]byte], error)

	// BidiStream opens independent request and response streams that
	// may proceed concurrently (full-duplex, spec §4.6).
	BidiStream(ctx context.Context, path string) (SendStream[[]byte], RecvStream[[]byte], error)
}

// MethodDescriptor is the per-RPC metadata a generator emits as a
// service_descriptor constant (spec §4.5): the method's fully-qualified
// transport path and its streaming shape.
type MethodDescriptor struct {
	Name            string
	FullPath        string // "/pkg.Service/Method"
	ClientStreaming bool
	ServerStreaming bool
}

// ServiceDescriptor collects a service's methods for registration against
// a server-side dispatcher.
type ServiceDescriptor struct {
	FullName string // "pkg.Service"
	Methods  []MethodDescriptor
}
