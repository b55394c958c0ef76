package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/lexer"
)

func scanAll(t *testing.T, src string) []ast.Token {
	t.Helper()
	l := lexer.New("test.proto", []byte(src))
	var toks []ast.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == ast.TokenEOF {
			return toks
		}
	}
}

func TestLexerBasicTokens(t *testing.T) {
	toks := scanAll(t, `syntax = "proto3"; message Foo { int32 a = 1; }`)
	kinds := make([]ast.TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []ast.TokenKind{
		ast.TokenKeyword, ast.TokenPunct, ast.TokenString, ast.TokenPunct,
		ast.TokenKeyword, ast.TokenIdent, ast.TokenPunct,
		ast.TokenIdent, ast.TokenIdent, ast.TokenPunct, ast.TokenInt, ast.TokenPunct,
		ast.TokenPunct, ast.TokenEOF,
	}, kinds)
}

func TestLexerSkipsComments(t *testing.T) {
	toks := scanAll(t, "// line comment\nmessage /* inline */ Foo {}")
	require.Equal(t, ast.TokenKeyword, toks[0].Kind)
	require.Equal(t, "message", toks[0].Text)
	require.Equal(t, "Foo", toks[1].Text)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := scanAll(t, `"\n\t\x41\101"`)
	require.Equal(t, ast.TokenString, toks[0].Kind)
	require.Equal(t, "\n\tAA", toks[0].StringValue)
}

func TestLexerNumberLiterals(t *testing.T) {
	toks := scanAll(t, "150 0x96 0747 1.5 1e10 .25")
	require.Equal(t, uint64(150), toks[0].IntValue)
	require.Equal(t, uint64(0x96), toks[1].IntValue)
	require.Equal(t, uint64(0747), toks[2].IntValue)
	require.Equal(t, 1.5, toks[3].FloatValue)
	require.Equal(t, 1e10, toks[4].FloatValue)
	require.Equal(t, 0.25, toks[5].FloatValue)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := lexer.New("test.proto", []byte(`"unterminated`))
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, lexer.UnterminatedString, lexErr.Kind)
}

func TestLexerUnterminatedComment(t *testing.T) {
	l := lexer.New("test.proto", []byte("/* oops"))
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, lexer.UnterminatedComment, lexErr.Kind)
}

func TestLexerUnexpectedByte(t *testing.T) {
	l := lexer.New("test.proto", []byte("$"))
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, lexer.UnexpectedByte, lexErr.Kind)
}
