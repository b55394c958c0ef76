package parser

import "github.com/wireproto/wireproto/ast"

func (p *parser) parseService() (*ast.Service, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "service"
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	s := &ast.Service{Name: name}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.isPunct("}") {
		if p.cur.Kind == ast.TokenEOF {
			return nil, p.unexpected("'}'")
		}
		switch {
		case p.isPunct(";"):
			if err := p.advance(); err != nil {
				return nil, err
			}
		case p.isKeyword("option"):
			opt, err := p.parseOptionStatement()
			if err != nil {
				return nil, err
			}
			s.Options = append(s.Options, opt)
		case p.isKeyword("rpc"):
			m, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			s.Methods = append(s.Methods, m)
		default:
			return nil, p.unexpected("an rpc or option declaration")
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	s.Base = p.spanFrom(start)
	return s, nil
}

func (p *parser) parseMethod() (*ast.Method, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil { // consume "rpc"
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	clientStreaming, inType, err := p.parseMethodType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("returns"); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	serverStreaming, outType, err := p.parseMethodType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	m := &ast.Method{
		Name: name, InputType: inType, OutputType: outType,
		ClientStreaming: clientStreaming, ServerStreaming: serverStreaming,
	}
	if p.isPunct("{") {
		if err := p.advance(); err != nil {
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
			opt, err := p.parseOptionStatement()
			if err != nil {
				return nil, err
			}
			m.Options = append(m.Options, opt)
		}
		if err := p.advance(); err != nil { // consume "}"
			return nil, err
		}
	} else if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	m.Base = p.spanFrom(start)
	return m, nil
}

func (p *parser) parseMethodType() (streaming bool, typeName string, err error) {
	if p.isKeyword("stream") {
		streaming = true
		if err = p.advance(); err != nil {
			return
		}
	}
	typeName, err = p.dottedName()
	return
}
