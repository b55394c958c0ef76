package ast

// Visitor receives callbacks as Walk descends through a File's declarations.
// Any hook left nil is skipped. Nested messages/enums are visited
// depth-first, parent before children.
type Visitor struct {
	VisitMessage func(*Message)
	VisitField   func(*Field, *Message)
	VisitOneof   func(*Oneof, *Message)
	VisitEnum    func(*Enum)
	VisitService func(*Service)
}

// Walk traverses every declaration in f, invoking the matching Visitor hook.
func Walk(f *File, v *Visitor) {
	for _, m := range f.Messages {
		walkMessage(m, v)
	}
	for _, e := range f.Enums {
		if v.VisitEnum != nil {
			v.VisitEnum(e)
		}
	}
	for _, s := range f.Services {
		if v.VisitService != nil {
			v.VisitService(s)
		}
	}
}

func walkMessage(m *Message, v *Visitor) {
	if v.VisitMessage != nil {
		v.VisitMessage(m)
	}
	for _, fld := range m.Fields {
		if v.VisitField != nil {
			v.VisitField(fld, m)
		}
	}
	for _, o := range m.Oneofs {
		if v.VisitOneof != nil {
			v.VisitOneof(o, m)
		}
	}
	for _, e := range m.Enums {
		if v.VisitEnum != nil {
			v.VisitEnum(e)
		}
	}
	for _, nested := range m.Nested {
		walkMessage(nested, v)
	}
}
