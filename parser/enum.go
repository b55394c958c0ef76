package parser

import "github.com/wireproto/wireproto/ast"

func (p *parser) parseEnum() (*ast.Enum, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "enum"
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	e := &ast.Enum{Name: name}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.isPunct("}") {
		if p.cur.Kind == ast.TokenEOF {
			return nil, p.unexpected("'}'")
		}
		if p.isPunct(";") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if p.isKeyword("option") {
			opt, err := p.parseOptionStatement()
			if err != nil {
				return nil, err
			}
			e.Options = append(e.Options, opt)
			continue
		}
		if p.isKeyword("reserved") {
			// enum reserved ranges/names are accepted but not tracked
			// separately; duplicate-number detection in the linker still
			// catches collisions among declared values.
			if err := p.skipEnumReserved(); err != nil {
				return nil, err
			}
			continue
		}
		v, err := p.parseEnumValue()
		if err != nil {
			return nil, err
		}
		e.Values = append(e.Values, v)
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	e.Base = p.spanFrom(start)
	return e, nil
}

func (p *parser) parseEnumValue() (*ast.EnumValue, error) {
	start := p.cur.Span.Pos
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	neg := false
	if p.isPunct("-") {
		neg = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Kind != ast.TokenInt {
		return nil, p.unexpected("an integer")
	}
	n := int32(p.cur.IntValue)
	if neg {
		n = -n
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	opts, err := p.parseFieldOptions()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ast.EnumValue{Name: name, Number: n, Options: opts, Base: p.spanFrom(start)}, nil
}

func (p *parser) skipEnumReserved() error {
	if err := p.advance(); err != nil { // consume "reserved"
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
