package ast

// Message is a `message` declaration, possibly nested inside another
// Message. Map-entry messages synthesized by the parser (spec §4.2) appear
// here too, flagged via MapEntry.
type Message struct {
	Base
	Name     string
	Fields   []*Field
	Oneofs   []*Oneof
	Nested   []*Message
	Enums    []*Enum
	Options  []*OptionNode
	Reserved []ReservedRange
	// ReservedNames holds field names reserved via `reserved "foo", "bar";`.
	ReservedNames []string

	// MapEntry is true for the synthetic `key`/`value` message the parser
	// generates for a `map<K,V>` field. Such messages are not emitted as
	// standalone types by the generator; they only describe the wire shape
	// of their owning repeated field.
	MapEntry bool
}

func (m *Message) MapEntryOption() bool {
	for _, o := range m.Options {
		if o.Name == "map_entry" {
			b, _ := o.Value.(bool)
			return b
		}
	}
	return m.MapEntry
}
