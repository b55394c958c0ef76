package ast

// Method is a single `rpc` declaration inside a service.
type Method struct {
	Base
	Name            string
	InputType       string // dotted, as written
	OutputType      string
	ClientStreaming bool
	ServerStreaming bool
	Options         []*OptionNode
}

// Service is a `service` declaration.
type Service struct {
	Base
	Name    string
	Methods []*Method
	Options []*OptionNode
}
