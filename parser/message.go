package parser

import "github.com/wireproto/wireproto/ast"

func (p *parser) parseMessage() (*ast.Message, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "message"
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	m := &ast.Message{Name: name}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.isPunct("}") {
		if p.cur.Kind == ast.TokenEOF {
			return nil, p.unexpected("'}'")
		}
		if err := p.parseMessageElement(m); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	m.Base = p.spanFrom(start)
	return m, nil
}

func (p *parser) parseMessageElement(m *ast.Message) error {
	switch {
	case p.isPunct(";"):
		return p.advance()
	case p.isKeyword("message"):
		nested, err := p.parseMessage()
		if err != nil {
			return err
		}
		m.Nested = append(m.Nested, nested)
		return nil
	case p.isKeyword("enum"):
		e, err := p.parseEnum()
		if err != nil {
			return err
		}
		m.Enums = append(m.Enums, e)
		return nil
	case p.isKeyword("oneof"):
		return p.parseOneof(m)
	case p.isKeyword("reserved"):
		return p.parseReserved(m)
	case p.isKeyword("option"):
		opt, err := p.parseOptionStatement()
		if err != nil {
			return err
		}
		m.Options = append(m.Options, opt)
		return nil
	case p.isKeyword("extend"):
		return p.skipExtend()
	case p.isKeyword("extensions"):
		return p.skipExtensionsRange()
	case p.isKeyword("map"):
		f, err := p.parseMapField()
		if err != nil {
			return err
		}
		m.Fields = append(m.Fields, f)
		return nil
	case p.isKeyword("group"):
		f, err := p.parseGroupField(ast.LabelImplicit)
		if err != nil {
			return err
		}
		m.Fields = append(m.Fields, f)
		return nil
	case p.isKeyword("optional") || p.isKeyword("required") || p.isKeyword("repeated"):
		label := ast.LabelOptional
		if p.isKeyword("required") {
			label = ast.LabelRequired
		} else if p.isKeyword("repeated") {
			label = ast.LabelRepeated
		}
		if err := p.advance(); err != nil {
			return err
		}
		if p.isKeyword("group") {
			f, err := p.parseGroupField(label)
			if err != nil {
				return err
			}
			m.Fields = append(m.Fields, f)
			return nil
		}
		if p.isKeyword("map") && label == ast.LabelRepeated {
			f, err := p.parseMapField()
			if err != nil {
				return err
			}
			m.Fields = append(m.Fields, f)
			return nil
		}
		f, err := p.parseField(label)
		if err != nil {
			return err
		}
		m.Fields = append(m.Fields, f)
		return nil
	case p.cur.Kind == ast.TokenIdent:
		f, err := p.parseField(ast.LabelImplicit)
		if err != nil {
			return err
		}
		m.Fields = append(m.Fields, f)
		return nil
	default:
		return p.unexpected("a message element")
	}
}

// parseField parses `type name = tag [options];` (the label has already
// been consumed by the caller).
func (p *parser) parseField(label ast.FieldLabel) (*ast.Field, error) {
	start := p.cur.Span.Pos
	typ, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	tag, err := p.parseTag()
	if err != nil {
		return nil, err
	}
	opts, err := p.parseFieldOptions()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ast.Field{
		Name: name, Label: label, Type: typ, Tag: tag, Options: opts,
		Base: p.spanFrom(start),
	}, nil
}

// parseFieldType parses a scalar keyword (int32, string, ...) or a
// possibly-dotted message/enum type name.
func (p *parser) parseFieldType() (ast.FieldType, error) {
	if p.cur.Kind != ast.TokenIdent && !p.isPunct(".") {
		return ast.FieldType{}, p.unexpected("a field type")
	}
	// A bare identifier matching a builtin scalar name is always the
	// scalar type: the protobuf grammar reserves these words and they can
	// never be a package/message name prefix.
	if p.cur.Kind == ast.TokenIdent {
		if sk, ok := ast.LookupScalar(p.cur.Text); ok {
			if err := p.advance(); err != nil {
				return ast.FieldType{}, err
			}
			return ast.FieldType{Kind: ast.FieldTypeScalar, Scalar: sk}, nil
		}
	}
	name, err := p.dottedName()
	if err != nil {
		return ast.FieldType{}, err
	}
	return ast.FieldType{Kind: ast.FieldTypeNamed, TypeName: name}, nil
}

func (p *parser) parseTag() (int32, error) {
	if p.cur.Kind != ast.TokenInt {
		return 0, &Error{Kind: BadTag, Span: p.cur.Span, Msg: "expected integer tag"}
	}
	v := p.cur.IntValue
	if err := p.advance(); err != nil {
		return 0, err
	}
	if v > (1<<29 - 1) {
		return 0, &Error{Kind: BadTag, Span: p.cur.Span, Msg: "tag out of range"}
	}
	return int32(v), nil
}

func (p *parser) parseOneof(m *ast.Message) error {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "oneof"
		return err
	}
	name, err := p.ident()
	if err != nil {
		return err
	}
	oneof := &ast.Oneof{Name: name}
	if err := p.expectPunct("{"); err != nil {
		return err
	}
	for !p.isPunct("}") {
		if p.cur.Kind == ast.TokenEOF {
			return p.unexpected("'}'")
		}
		if p.isPunct(";") {
			if err := p.advance(); err != nil {
				return err
			}
			continue
		}
		if p.isKeyword("option") {
			// oneof-scoped options are accepted syntactically but not
			// otherwise interpreted; nothing in this toolchain's codegen
			// output is affected by them.
			if _, err := p.parseOptionStatement(); err != nil {
				return err
			}
			continue
		}
		f, err := p.parseField(ast.LabelImplicit)
		if err != nil {
			return err
		}
		f.OneofName = name
		oneof.Fields = append(oneof.Fields, f)
		m.Fields = append(m.Fields, f)
	}
	if err := p.advance(); err != nil { // consume "}"
		return err
	}
	oneof.Base = p.spanFrom(start)
	m.Oneofs = append(m.Oneofs, oneof)
	return nil
}

func (p *parser) parseMapField() (*ast.Field, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "map"
		return nil, err
	}
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}
	keyName, err := p.ident()
	if err != nil {
		return nil, err
	}
	keyScalar, ok := ast.LookupScalar(keyName)
	if !ok {
		return nil, &Error{Kind: BadLiteral, Span: p.cur.Span, Msg: "invalid map key type " + keyName}
	}
	if err := p.expectPunct(","); err != nil {
		return nil, err
	}
	valType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	tag, err := p.parseTag()
	if err != nil {
		return nil, err
	}
	opts, err := p.parseFieldOptions()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ast.Field{
		Name: name, Label: ast.LabelRepeated, Tag: tag, Options: opts,
		MapType: &ast.MapType{KeyScalar: keyScalar, ValueType: valType},
		Base:    p.spanFrom(start),
	}, nil
}

// parseGroupField parses a proto2 `group Name = tag { ... }` field. Spec
// §4.2 marks groups parse-only: the body's fields are parsed (so syntax
// errors inside are still caught) but discarded, and the field itself is
// represented with FieldTypeGroup so later stages can reject it explicitly
// rather than silently mis-typing it.
func (p *parser) parseGroupField(label ast.FieldLabel) (*ast.Field, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "group"
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	tag, err := p.parseTag()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	inner := &ast.Message{Name: name}
	for !p.isPunct("}") {
		if p.cur.Kind == ast.TokenEOF {
			return nil, p.unexpected("'}'")
		}
		if err := p.parseMessageElement(inner); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	return &ast.Field{
		Name: toLowerFirst(name), Label: label, Tag: tag,
		Type: ast.FieldType{Kind: ast.FieldTypeGroup, TypeName: name},
		Base: p.spanFrom(start),
	}, nil
}

func toLowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func (p *parser) parseReserved(m *ast.Message) error {
	if err := p.advance(); err != nil { // consume "reserved"
		return err
	}
	if p.cur.Kind == ast.TokenString {
		for {
			m.ReservedNames = append(m.ReservedNames, p.cur.StringValue)
			if err := p.advance(); err != nil {
				return err
			}
			if !p.isPunct(",") {
				break
			}
			if err := p.advance(); err != nil {
				return err
			}
		}
		return p.expectPunct(";")
	}
	for {
		lo, err := p.parseTag()
		if err != nil {
			return err
		}
		hi := lo
		if p.isKeyword("to") {
			if err := p.advance(); err != nil {
				return err
			}
			if p.isKeyword("max") {
				hi = 1<<29 - 1
				if err := p.advance(); err != nil {
					return err
				}
			} else {
				hi, err = p.parseTag()
				if err != nil {
					return err
				}
			}
		}
		m.Reserved = append(m.Reserved, ast.ReservedRange{Start: lo, End: hi})
		if !p.isPunct(",") {
			break
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return p.expectPunct(";")
}

// skipExtend parses and discards a proto2 `extend Name { ... }` block:
// extensions are parsed (to keep the surrounding file syntactically valid)
// but never resolved or emitted (spec §1 non-goals).
func (p *parser) skipExtend() error {
	if err := p.advance(); err != nil { // consume "extend"
		return err
	}
	if _, err := p.dottedName(); err != nil {
		return err
	}
	if err := p.expectPunct("{"); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		if p.cur.Kind == ast.TokenEOF {
			return p.unexpected("'}'")
		}
		if p.isPunct("{") {
			depth++
		} else if p.isPunct("}") {
			depth--
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) skipExtensionsRange() error {
	if err := p.advance(); err != nil { // consume "extensions"
		return err
	}
	for !p.isPunct(";") {
		if p.cur.Kind == ast.TokenEOF {
			return p.unexpected("';'")
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return p.advance()
}
