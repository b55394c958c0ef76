package gen

import (
	"strconv"

	"github.com/wireproto/wireproto/linker"
)

// emitService writes the service_descriptor, the Server interface (one
// method per RPC, stream arms taking a stream handle rather than a
// value), client-side typed stream wrappers, and the Client struct that
// marshals requests/demarshals responses over an rpcruntime.Channel
// (spec §4.5, §4.6). Binding a Server implementation to a live
// transport is a transport concern the Channel abstraction deliberately
// leaves outside generated code (spec §4.6 non-goals).
func (e *emitter) emitService(s *linker.Service) {
	f := e.f
	f.importAlias("context", "")
	f.importAlias("github.com/wireproto/wireproto/rpcruntime", "rpcruntime")
	goName := goTypeName(localName(s.FQN, e.pkg))

	e.emitServiceDescriptor(s, goName)
	e.emitServerInterface(s, goName)
	for _, m := range s.Methods {
		e.emitClientStreamTypes(s, goName, m)
	}
	e.emitClient(s, goName)
}

func (e *emitter) emitServiceDescriptor(s *linker.Service, goName string) {
	f := e.f
	f.P("var ", goName, "Descriptor = rpcruntime.ServiceDescriptor{")
	f.P("\tFullName: ", strconv.Quote(trimLeadingDot(s.FQN)), ",")
	f.P("\tMethods: []rpcruntime.MethodDescriptor{")
	for _, m := range s.Methods {
		f.P("\t\t{")
		f.P("\t\t\tName:            ", strconv.Quote(m.Name), ",")
		f.P("\t\t\tFullPath:        ", strconv.Quote(m.Path(s.FQN)), ",")
		f.P("\t\t\tClientStreaming: ", m.ClientStreaming, ",")
		f.P("\t\t\tServerStreaming: ", m.ServerStreaming, ",")
		f.P("\t\t},")
	}
	f.P("\t},")
	f.P("}")
	f.P()
}

func trimLeadingDot(fqn string) string {
	if len(fqn) > 0 && fqn[0] == '.' {
		return fqn[1:]
	}
	return fqn
}

func (e *emitter) methodIO(m *linker.Method) (reqType, respType string) {
	return "*" + e.goTypeRef(m.InputFQN), "*" + e.goTypeRef(m.OutputFQN)
}

func (e *emitter) emitServerInterface(s *linker.Service, goName string) {
	f := e.f
	f.P("type ", goName, "Server interface {")
	for _, m := range s.Methods {
		reqType, respType := e.methodIO(m)
		switch {
		case !m.ClientStreaming && !m.ServerStreaming:
			f.P("\t", m.Name, "(ctx context.Context, req ", reqType, ") (", respType, ", error)")
		case !m.ClientStreaming && m.ServerStreaming:
			f.P("\t", m.Name, "(ctx context.Context, req ", reqType, ", stream ", goName, "_", m.Name, "Server) error")
		case m.ClientStreaming && !m.ServerStreaming:
			f.P("\t", m.Name, "(ctx context.Context, stream ", goName, "_", m.Name, "Server) (", respType, ", error)")
		default:
			f.P("\t", m.Name, "(ctx context.Context, stream ", goName, "_", m.Name, "Server) error")
		}
	}
	f.P("}")
	f.P()

	for _, m := range s.Methods {
		if !m.ClientStreaming && !m.ServerStreaming {
			continue
		}
		reqType, respType := e.methodIO(m)
		ifaceName := goName + "_" + m.Name + "Server"
		f.P("type ", ifaceName, " interface {")
		if m.ServerStreaming {
			f.P("\tSend(ctx context.Context, resp ", respType, ") error")
		}
		if m.ClientStreaming {
			f.P("\tRecv(ctx context.Context) (", reqType, ", error)")
		}
		f.P("}")
		f.P()
	}
}

// emitClientStreamTypes writes the client-side typed stream handle for
// any streaming method — the concrete type implementing it wraps the
// raw []byte stream(s) rpcruntime.Channel returns and marshals/demarshals
// through the message's own Encode/Decode.
func (e *emitter) emitClientStreamTypes(s *linker.Service, goName string, m *linker.Method) {
	if !m.ClientStreaming && !m.ServerStreaming {
		return
	}
	f := e.f
	reqType, respType := e.methodIO(m)
	ifaceName := goName + "_" + m.Name + "Client"
	implName := unexport(ifaceName)

	f.P("type ", ifaceName, " interface {")
	if m.ClientStreaming {
		f.P("\tSend(ctx context.Context, req ", reqType, ") error")
		f.P("\tCloseSend() error")
	}
	if m.ServerStreaming {
		f.P("\tRecv(ctx context.Context) (", respType, ", error)")
	}
	if m.ClientStreaming && !m.ServerStreaming {
		f.P("\tCloseAndRecv(ctx context.Context) (", respType, ", error)")
	}
	f.P("}")
	f.P()

	f.P("type ", implName, " struct {")
	if m.ClientStreaming {
		f.P("\tsend rpcruntime.SendStream[[]byte]")
	}
	if m.ServerStreaming || (m.ClientStreaming && !m.ServerStreaming) {
		f.P("\trecv rpcruntime.RecvStream[[]byte]")
	}
	f.P("}")
	f.P()

	if m.ClientStreaming {
		f.P("func (s *", implName, ") Send(ctx context.Context, req ", reqType, ") error {")
		f.P("\tw := wire.NewWriter(make([]byte, 0, req.CalcSize()))")
		f.P("\tif err := req.Encode(w); err != nil {")
		f.P("\t\treturn err")
		f.P("\t}")
		f.P("\treturn s.send.Send(ctx, w.Bytes())")
		f.P("}")
		f.P()

		f.P("func (s *", implName, ") CloseSend() error {")
		f.P("\treturn s.send.CloseSend()")
		f.P("}")
		f.P()
	}

	if m.ServerStreaming {
		f.P("func (s *", implName, ") Recv(ctx context.Context) (", respType, ", error) {")
		f.P("\tb, err := s.recv.Recv(ctx)")
		f.P("\tif err != nil {")
		f.P("\t\treturn nil, err")
		f.P("\t}")
		f.P("\tresp := new(", respType[1:], ")")
		f.P("\tif err := resp.Decode(wire.NewReader(b)); err != nil {")
		f.P("\t\treturn nil, err")
		f.P("\t}")
		f.P("\treturn resp, nil")
		f.P("}")
		f.P()
	}

	if m.ClientStreaming && !m.ServerStreaming {
		f.P("func (s *", implName, ") CloseAndRecv(ctx context.Context) (", respType, ", error) {")
		f.P("\tif err := s.send.CloseSend(); err != nil {")
		f.P("\t\treturn nil, err")
		f.P("\t}")
		f.P("\tb, err := s.recv.Recv(ctx)")
		f.P("\tif err != nil {")
		f.P("\t\treturn nil, err")
		f.P("\t}")
		f.P("\tresp := new(", respType[1:], ")")
		f.P("\tif err := resp.Decode(wire.NewReader(b)); err != nil {")
		f.P("\t\treturn nil, err")
		f.P("\t}")
		f.P("\treturn resp, nil")
		f.P("}")
		f.P()
	}
}

func (e *emitter) emitClient(s *linker.Service, goName string) {
	f := e.f
	clientName := goName + "Client"

	f.P("// ", clientName, " calls ", s.Name, " over a shared rpcruntime.Channel;")
	f.P("// it does not own ch and never closes it.")
	f.P("type ", clientName, " struct {")
	f.P("\tch rpcruntime.Channel")
	f.P("}")
	f.P()
	f.P("func New", clientName, "(ch rpcruntime.Channel) *", clientName, " {")
	f.P("\treturn &", clientName, "{ch: ch}")
	f.P("}")
	f.P()

	for i, m := range s.Methods {
		reqType, respType := e.methodIO(m)
		path := strconv.Quote(m.Path(s.FQN))

		switch {
		case !m.ClientStreaming && !m.ServerStreaming:
			f.P("func (c *", clientName, ") ", m.Name, "(ctx context.Context, req ", reqType, ") (", respType, ", error) {")
			f.P("\tw := wire.NewWriter(make([]byte, 0, req.CalcSize()))")
			f.P("\tif err := req.Encode(w); err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\trespBytes, err := c.ch.Unary(ctx, ", path, ", w.Bytes())")
			f.P("\tif err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\tresp := new(", respType[1:], ")")
			f.P("\tif err := resp.Decode(wire.NewReader(respBytes)); err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\treturn resp, nil")
			f.P("}")

		case !m.ClientStreaming && m.ServerStreaming:
			ifaceName := goName + "_" + m.Name + "Client"
			implName := unexport(ifaceName)
			f.P("func (c *", clientName, ") ", m.Name, "(ctx context.Context, req ", reqType, ") (", ifaceName, ", error) {")
			f.P("\tw := wire.NewWriter(make([]byte, 0, req.CalcSize()))")
			f.P("\tif err := req.Encode(w); err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\tstream, err := c.ch.ServerStream(ctx, ", path, ", w.Bytes())")
			f.P("\tif err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\treturn &", implName, "{recv: stream}, nil")
			f.P("}")

		case m.ClientStreaming && !m.ServerStreaming:
			ifaceName := goName + "_" + m.Name + "Client"
			implName := unexport(ifaceName)
			f.P("func (c *", clientName, ") ", m.Name, "(ctx context.Context) (", ifaceName, ", error) {")
			f.P("\tsend, recv, err := c.ch.ClientStream(ctx, ", path, ")")
			f.P("\tif err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\treturn &", implName, "{send: send, recv: recv}, nil")
			f.P("}")

		default:
			ifaceName := goName + "_" + m.Name + "Client"
			implName := unexport(ifaceName)
			f.P("func (c *", clientName, ") ", m.Name, "(ctx context.Context) (", ifaceName, ", error) {")
			f.P("\tsend, recv, err := c.ch.BidiStream(ctx, ", path, ")")
			f.P("\tif err != nil {")
			f.P("\t\treturn nil, err")
			f.P("\t}")
			f.P("\treturn &", implName, "{send: send, recv: recv}, nil")
			f.P("}")
		}
		if i != len(s.Methods)-1 {
			f.P()
		}
	}
	f.P()
}
