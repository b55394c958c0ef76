package ast

// ScalarKind enumerates the builtin scalar field types.
type ScalarKind int

const (
	ScalarNone ScalarKind = iota
	ScalarInt32
	ScalarInt64
	ScalarUint32
	ScalarUint64
	ScalarSint32
	ScalarSint64
	ScalarFixed32
	ScalarFixed64
	ScalarSfixed32
	ScalarSfixed64
	ScalarFloat
	ScalarDouble
	ScalarBool
	ScalarString
	ScalarBytes
)

var scalarNames = map[string]ScalarKind{
	"int32": ScalarInt32, "int64": ScalarInt64,
	"uint32": ScalarUint32, "uint64": ScalarUint64,
	"sint32": ScalarSint32, "sint64": ScalarSint64,
	"fixed32": ScalarFixed32, "fixed64": ScalarFixed64,
	"sfixed32": ScalarSfixed32, "sfixed64": ScalarSfixed64,
	"float": ScalarFloat, "double": ScalarDouble,
	"bool": ScalarBool, "string": ScalarString, "bytes": ScalarBytes,
}

// LookupScalar returns the ScalarKind for a builtin type name, or
// (ScalarNone, false) if name is not a builtin scalar (i.e. it names a
// message or enum type to be resolved by the linker).
func LookupScalar(name string) (ScalarKind, bool) {
	k, ok := scalarNames[name]
	return k, ok
}

func (k ScalarKind) String() string {
	for name, sk := range scalarNames {
		if sk == k {
			return name
		}
	}
	return "unknown"
}

// FieldLabel is the cardinality a field was declared with.
type FieldLabel int

const (
	LabelImplicit FieldLabel = iota // proto3 singular field with no explicit label
	LabelOptional
	LabelRequired
	LabelRepeated
)

// FieldType is the field's declared type as written in source, before
// linking. Scalar or TypeName is meaningful, discriminated by Kind (a
// group field's name is kept in TypeName).
type FieldTypeKind int

const (
	FieldTypeScalar FieldTypeKind = iota
	FieldTypeNamed                // unresolved dotted name: message, enum, or map-entry-synthesized name
	FieldTypeGroup                // proto2 `group`; parse-only per spec §4.2
)

type FieldType struct {
	Kind     FieldTypeKind
	Scalar   ScalarKind
	TypeName string // as written, may start with "." for absolute lookup
}

// MapType records the key/value the parser saw on a `map<K,V>` field before
// desugaring it into a synthetic nested message (spec §4.2).
type MapType struct {
	KeyScalar ScalarKind // map keys are always scalar (spec §3 invariant 4)
	ValueType FieldType
}

// Field is a single message field declaration.
type Field struct {
	Base
	Name    string
	Label   FieldLabel
	Type    FieldType
	Tag     int32
	Options []*OptionNode

	// OneofName is non-empty when this field is a member of a `oneof`
	// block; the field also appears in that Oneof's Fields slice.
	OneofName string

	// MapType is non-nil if this field was written as `map<K,V>` in
	// source. The parser still desugars it: Type becomes FieldTypeNamed
	// pointing at the synthesized entry message, and Label becomes
	// LabelRepeated, matching spec §4.2's canonicalization. MapType is
	// retained so the linker can mark the synthesized message accordingly
	// without re-deriving it from the entry message's shape.
	MapType *MapType
}

// IsPacked reports the option-level `[packed=...]` override, if any was
// written in source. ok is false when no explicit override was given and
// the syntax-level default (spec §4.4) should apply.
func (f *Field) IsPacked() (packed bool, ok bool) {
	for _, o := range f.Options {
		if o.Name == "packed" {
			b, isBool := o.Value.(bool)
			return b, isBool
		}
	}
	return false, false
}

// Default returns the field's `[default = ...]` option value, if any
// (proto2 only).
func (f *Field) Default() (any, bool) {
	for _, o := range f.Options {
		if o.Name == "default" {
			return o.Value, true
		}
	}
	return nil, false
}

func (f *Field) Deprecated() bool {
	for _, o := range f.Options {
		if o.Name == "deprecated" {
			b, _ := o.Value.(bool)
			return b
		}
	}
	return false
}

// Oneof is a `oneof` block; its Fields alias entries also present in the
// parent Message.Fields.
type Oneof struct {
	Base
	Name   string
	Fields []*Field
}

// ReservedRange is a `reserved 10 to 20;` entry; Start==End for a single tag.
type ReservedRange struct {
	Start, End int32
}
