package ast

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenError TokenKind = iota
	TokenEOF
	TokenIdent
	TokenInt
	TokenFloat
	TokenString
	TokenPunct
	TokenKeyword
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenPunct:
		return "punctuation"
	case TokenKeyword:
		return "keyword"
	default:
		return "error"
	}
}

// Keywords recognized by the lexer. Any identifier-shaped lexeme matching
// one of these is emitted as TokenKeyword instead of TokenIdent.
var Keywords = map[string]bool{
	"syntax": true, "package": true, "import": true, "public": true, "weak": true,
	"option": true, "message": true, "enum": true, "service": true, "rpc": true,
	"returns": true, "stream": true, "oneof": true, "map": true, "repeated": true,
	"optional": true, "required": true, "reserved": true, "group": true,
	"true": true, "false": true, "to": true, "max": true, "extend": true, "extensions": true,
}

// Token is a single lexeme with its source span.
type Token struct {
	Kind TokenKind
	Text string
	Span Span

	// IntValue/FloatValue are populated for TokenInt/TokenFloat after
	// literal parsing (decimal/hex/octal for ints; standard grammar for
	// floats). StringValue holds the unescaped value of a TokenString.
	IntValue    uint64
	FloatValue  float64
	StringValue string
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return t.Text
}
