package ast

// OptionNode is a parsed `option name = value;` statement, attached to a
// file, message, field, enum, enum value, or service/method declaration.
// Values are kept as loosely typed Go values (bool, string, int64, float64,
// or an identifier string for enum-valued options); the linker/generator
// interpret the handful of options this toolchain understands (packed,
// deprecated, default, map_entry, allow_alias).
type OptionNode struct {
	Base
	Name  string
	Value any
}
