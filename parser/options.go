package parser

import "github.com/wireproto/wireproto/ast"

// parseOptionStatement parses a top-level or block-level `option name =
// value;` statement. The trailing semicolon is consumed here; block-level
// options in message, enum, service and method bodies are parsed here too.
func (p *parser) parseOptionStatement() (*ast.OptionNode, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "option"
		return nil, err
	}
	opt, err := p.parseOptionNameAndValue(start)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return opt, nil
}

func (p *parser) parseOptionNameAndValue(start ast.SourcePos) (*ast.OptionNode, error) {
	name, err := p.optionName()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	val, err := p.optionValue()
	if err != nil {
		return nil, err
	}
	return &ast.OptionNode{Name: name, Value: val, Base: p.spanFrom(start)}, nil
}

// optionName parses `foo.bar` or `(custom.option).bar`. Parenthesized
// (extension) option names are accepted syntactically and folded into a
// flat dotted string; the linker treats any option name it does not
// recognize as opaque and ignores it.
func (p *parser) optionName() (string, error) {
	name := ""
	for {
		var part string
		if p.isPunct("(") {
			if err := p.advance(); err != nil {
				return "", err
			}
			inner, err := p.dottedName()
			if err != nil {
				return "", err
			}
			if err := p.expectPunct(")"); err != nil {
				return "", err
			}
			part = inner
		} else {
			var err error
			part, err = p.ident()
			if err != nil {
				return "", err
			}
		}
		if name == "" {
			name = part
		} else {
			name += "." + part
		}
		if !p.isPunct(".") {
			break
		}
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	return name, nil
}

func (p *parser) optionValue() (any, error) {
	neg := false
	if p.isPunct("-") {
		neg = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	switch p.cur.Kind {
	case ast.TokenString:
		v := p.cur.StringValue
		return v, p.advance()
	case ast.TokenInt:
		v := p.cur.IntValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		if neg {
			return -int64(v), nil
		}
		return int64(v), nil
	case ast.TokenFloat:
		v := p.cur.FloatValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		if neg {
			return -v, nil
		}
		return v, nil
	case ast.TokenIdent, ast.TokenKeyword:
		switch p.cur.Text {
		case "true":
			return true, p.advance()
		case "false":
			return false, p.advance()
		default:
			name := p.cur.Text
			return name, p.advance()
		}
	default:
		return nil, p.unexpected("an option value")
	}
}

// parseFieldOptions parses the bracketed `[opt=val, ...]` suffix on a field
// or enum value declaration. Returns nil if no '[' is present.
func (p *parser) parseFieldOptions() ([]*ast.OptionNode, error) {
	if !p.isPunct("[") {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var opts []*ast.OptionNode
	for {
		start := p.cur.Span.Pos
		opt, err := p.parseOptionNameAndValue(start)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
		if p.isPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return opts, nil
}
