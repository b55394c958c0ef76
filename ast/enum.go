package ast

// EnumValue is one `NAME = number;` entry inside an enum body.
type EnumValue struct {
	Base
	Name    string
	Number  int32
	Options []*OptionNode
}

// Enum is an `enum` declaration, top-level or nested inside a Message.
type Enum struct {
	Base
	Name    string
	Values  []*EnumValue
	Options []*OptionNode
}

func (e *Enum) AllowAlias() bool {
	for _, o := range e.Options {
		if o.Name == "allow_alias" {
			b, _ := o.Value.(bool)
			return b
		}
	}
	return false
}
