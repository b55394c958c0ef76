// Package parser implements a recursive-descent parser over the token
// stream produced by package lexer, building an *ast.File (spec §4.2).
package parser

import (
	"strconv"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/lexer"
)

// Parse reads the entirety of data as one .proto source file named
// filename and returns its AST. On the first syntax error encountered, it
// returns a non-nil error and a nil *ast.File — error recovery across an
// entire file is the driver's job (try the next file), not this parser's.
func Parse(filename string, data []byte) (*ast.File, error) {
	p := &parser{lex: lexer.New(filename, data), filename: filename}
	if err := p.advance(); err != nil {
		return nil, err
	}
	f, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	canonicalize(f)
	return f, nil
}

type parser struct {
	lex      *lexer.Lexer
	cur      ast.Token
	filename string
}

func (p *parser) spanFrom(start ast.SourcePos) ast.Base {
	return ast.NewBase(start, p.lex.Offset()-start.Offset)
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) unexpected(expected string) error {
	return &Error{Kind: Unexpected, Span: p.cur.Span, Expected: expected, Got: describe(p.cur)}
}

func describe(tok ast.Token) string {
	if tok.Kind == ast.TokenEOF {
		return "EOF"
	}
	return "'" + tok.Text + "'"
}

func (p *parser) isPunct(s string) bool {
	return p.cur.Kind == ast.TokenPunct && p.cur.Text == s
}

func (p *parser) isKeyword(s string) bool {
	return p.cur.Kind == ast.TokenKeyword && p.cur.Text == s
}

func (p *parser) expectPunct(s string) error {
	if !p.isPunct(s) {
		return p.unexpected("'" + s + "'")
	}
	return p.advance()
}

func (p *parser) expectKeyword(s string) error {
	if !p.isKeyword(s) {
		return p.unexpected("'" + s + "'")
	}
	return p.advance()
}

// ident accepts a plain identifier, OR a keyword lexeme used in a context
// where it must be treated as a name (proto allows keywords like "group",
// "to" etc. to double as identifiers in some grammar productions). It is
// used for every declared name and dotted-name segment, option names
// included.
func (p *parser) ident() (string, error) {
	if p.cur.Kind != ast.TokenIdent && p.cur.Kind != ast.TokenKeyword {
		return "", p.unexpected("identifier")
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// dottedName parses a possibly-qualified, possibly-leading-dot type name:
// ['.'] ident ('.' ident)*
func (p *parser) dottedName() (string, error) {
	name := ""
	if p.isPunct(".") {
		name = "."
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	first, err := p.ident()
	if err != nil {
		return "", err
	}
	name += first
	for p.isPunct(".") {
		if err := p.advance(); err != nil {
			return "", err
		}
		part, err := p.ident()
		if err != nil {
			return "", err
		}
		name += "." + part
	}
	return name, nil
}

func (p *parser) parseFile() (*ast.File, error) {
	start := p.cur.Span.Pos
	f := &ast.File{Name: p.filename, Syntax: ast.SyntaxProto2}
	sawSyntax := false
	for p.cur.Kind != ast.TokenEOF {
		switch {
		case p.isPunct(";"):
			if err := p.advance(); err != nil {
				return nil, err
			}
		case p.isKeyword("syntax"):
			if sawSyntax {
				return nil, p.unexpected("single syntax declaration")
			}
			s, err := p.parseSyntax()
			if err != nil {
				return nil, err
			}
			f.Syntax = s
			sawSyntax = true
		case p.isKeyword("package"):
			pkg, err := p.parsePackage()
			if err != nil {
				return nil, err
			}
			f.Package = pkg
		case p.isKeyword("import"):
			imp, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			f.Imports = append(f.Imports, imp)
		case p.isKeyword("option"):
			opt, err := p.parseOptionStatement()
			if err != nil {
				return nil, err
			}
			f.Options = append(f.Options, opt)
		case p.isKeyword("message"):
			m, err := p.parseMessage()
			if err != nil {
				return nil, err
			}
			f.Messages = append(f.Messages, m)
		case p.isKeyword("enum"):
			e, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			f.Enums = append(f.Enums, e)
		case p.isKeyword("service"):
			s, err := p.parseService()
			if err != nil {
				return nil, err
			}
			f.Services = append(f.Services, s)
		case p.isKeyword("extend"):
			// proto2 extend: parsed and discarded per spec §1 non-goals
			// (extensions beyond parsing are out of scope).
			if err := p.skipExtend(); err != nil {
				return nil, err
			}
		default:
			return nil, p.unexpected("a top-level declaration")
		}
	}
	f.Base = p.spanFrom(start)
	return f, nil
}

func (p *parser) parseSyntax() (ast.Syntax, error) {
	if err := p.advance(); err != nil { // consume "syntax"
		return 0, err
	}
	if err := p.expectPunct("="); err != nil {
		return 0, err
	}
	if p.cur.Kind != ast.TokenString {
		return 0, p.unexpected("a string literal")
	}
	val := p.cur.StringValue
	if err := p.advance(); err != nil {
		return 0, err
	}
	if err := p.expectPunct(";"); err != nil {
		return 0, err
	}
	switch val {
	case "proto2":
		return ast.SyntaxProto2, nil
	case "proto3":
		return ast.SyntaxProto3, nil
	default:
		return 0, &Error{Kind: BadLiteral, Span: p.cur.Span, Msg: "unknown syntax " + strconv.Quote(val)}
	}
}

func (p *parser) parsePackage() (string, error) {
	if err := p.advance(); err != nil {
		return "", err
	}
	name, err := p.dottedName()
	if err != nil {
		return "", err
	}
	if err := p.expectPunct(";"); err != nil {
		return "", err
	}
	return name, nil
}

func (p *parser) parseImport() (*ast.Import, error) {
	start := p.cur.Span.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	kind := ast.ImportNormal
	if p.isKeyword("public") {
		kind = ast.ImportPublic
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if p.isKeyword("weak") {
		kind = ast.ImportWeak
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Kind != ast.TokenString {
		return nil, p.unexpected("a string literal")
	}
	path := p.cur.StringValue
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ast.Import{Path: path, Kind: kind, Base: p.spanFrom(start)}, nil
}
