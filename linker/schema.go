package linker

import "github.com/wireproto/wireproto/ast"

// Schema is the canonical, fully resolved intermediate representation
// produced by Link (spec §3 "Linked Schema (IR)"). It outlives the AST,
// which is discarded once linking succeeds.
type Schema struct {
	Files []*File

	messages map[string]*Message
	enums    map[string]*Enum
	services map[string]*Service
}

// Message looks up a fully qualified message name (with or without a
// leading dot).
func (s *Schema) Message(fqn string) (*Message, bool) {
	m, ok := s.messages[trimDot(fqn)]
	return m, ok
}

// Enum looks up a fully qualified enum name.
func (s *Schema) Enum(fqn string) (*Enum, bool) {
	e, ok := s.enums[trimDot(fqn)]
	return e, ok
}

// Service looks up a fully qualified service name.
func (s *Schema) Service(fqn string) (*Service, bool) {
	sv, ok := s.services[trimDot(fqn)]
	return sv, ok
}

// AllMessages returns every message across every file, including nested
// and synthesized map-entry messages, in a deterministic (declaration)
// order suitable for code generation.
func (s *Schema) AllMessages() []*Message {
	var out []*Message
	for _, f := range s.Files {
		for _, m := range f.Messages {
			out = append(out, collectMessages(m)...)
		}
	}
	return out
}

func collectMessages(m *Message) []*Message {
	out := []*Message{m}
	for _, nested := range m.Nested {
		out = append(out, collectMessages(nested)...)
	}
	return out
}

func trimDot(fqn string) string {
	if len(fqn) > 0 && fqn[0] == '.' {
		return fqn[1:]
	}
	return fqn
}

// File is one linked .proto source file.
type File struct {
	Name     string
	Package  string
	Syntax   ast.Syntax
	Messages []*Message
	Enums    []*Enum
	Services []*Service

	// GoPackage is the raw `option go_package = "...";` value, or empty
	// if the file didn't set one. The code generator derives the
	// package's output directory and Go import path from this when
	// present, falling back to the dotted Package path otherwise.
	GoPackage string
}

// FieldTypeKind discriminates the resolved variant of a Field's type
// (spec §3: "Scalar(kind), Enum(fqn), Message(fqn), Map(...), Group(fqn)").
type FieldTypeKind int

const (
	FieldScalar FieldTypeKind = iota
	FieldEnum
	FieldMessage
	FieldMap
	FieldGroup
)

// FieldType is a field's fully resolved type.
type FieldType struct {
	Kind   FieldTypeKind
	Scalar ast.ScalarKind // meaningful when Kind == FieldScalar, or as the map key kind
	FQN    string         // meaningful when Kind is Enum, Message, or Group

	// MapValue is non-nil when Kind == FieldMap; it is the value type of
	// the map (itself never FieldMap, per spec invariant 4).
	MapValue *FieldType
}

// Field is a single resolved message field.
type Field struct {
	Name      string
	Tag       int32
	Label     ast.FieldLabel
	Type      FieldType
	OneofName string // empty unless part of a oneof

	// Packed reflects the resolved packed-or-not encoding for a repeated
	// scalar or enum field (spec §4.4); meaningless for non-repeated
	// fields and for message, group and bytes/string fields.
	Packed bool

	Default    any
	Deprecated bool
}

// IsScalar reports whether f holds a wire-level scalar value (not a
// submessage, map, or group).
func (f *Field) IsScalar() bool { return f.Type.Kind == FieldScalar }

// Oneof is a resolved oneof declaration; its Fields alias entries in the
// owning Message.Fields slice.
type Oneof struct {
	Name   string
	Fields []*Field
}

// Message is a resolved message type.
type Message struct {
	FQN      string
	Name     string
	Syntax   ast.Syntax
	Fields   []*Field
	Oneofs   []*Oneof
	Nested   []*Message
	Enums    []*Enum
	MapEntry bool

	ReservedRanges []ast.ReservedRange
	ReservedNames  []string
}

// FieldByTag returns the field with the given tag, or nil.
func (m *Message) FieldByTag(tag int32) *Field {
	for _, f := range m.Fields {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// EnumValue is a resolved `NAME = number;` entry.
type EnumValue struct {
	Name   string
	Number int32
}

// Enum is a resolved enum type.
type Enum struct {
	FQN        string
	Name       string
	Values     []EnumValue
	AllowAlias bool
}

// Method is a resolved RPC method.
type Method struct {
	Name            string
	InputFQN        string
	OutputFQN       string
	ClientStreaming bool
	ServerStreaming bool
}

// Path is the wire-level RPC method path, "/{service}/{method}" (spec §6).
func (m *Method) Path(serviceFQN string) string {
	return "/" + trimDot(serviceFQN) + "/" + m.Name
}

// Service is a resolved service type.
type Service struct {
	FQN     string
	Name    string
	Methods []*Method
}
