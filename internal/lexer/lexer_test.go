/*
File    : seagull/internal/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/seagull/internal/token"
)

type tokenizeCase struct {
	name     string
	input    string
	expected []token.Token
}

func TestTokenize(t *testing.T) {
	cases := []tokenizeCase{
		{
			name:  "whitespace only",
			input: "    ",
			expected: []token.Token{
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "variable declaration",
			input: "int x = 3;",
			expected: []token.Token{
				token.New(token.KwInt, "int"),
				token.New(token.Identifier, "x"),
				token.New(token.Assign, "="),
				token.New(token.IntLiteral, "3"),
				token.New(token.Semicolon, ";"),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "signed float literal",
			input: "-3.14",
			expected: []token.Token{
				token.New(token.FloatLiteral, "-3.14"),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "space prevents fusion of minus and digit",
			input: "- 3",
			expected: []token.Token{
				token.New(token.Minus, "-"),
				token.New(token.IntLiteral, "3"),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "keyword for",
			input: "for",
			expected: []token.Token{
				token.New(token.KwFor, "for"),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "identifier that merely starts with a keyword spelling",
			input: "forx",
			expected: []token.Token{
				token.New(token.Identifier, "forx"),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "trailing dot float literal",
			input: "3.",
			expected: []token.Token{
				token.New(token.FloatLiteral, "3."),
				token.New(token.EOF, ""),
			},
		},
		{
			name:  "identifier with digit tail",
			input: "a12",
			expected: []token.Token{
				token.New(token.Identifier, "a12"),
				token.New(token.EOF, ""),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}

func TestTokenizeFunctionSignature(t *testing.T) {
	got := Tokenize("int add(int a, int b){ return a + b; }")
	want := []token.Token{
		token.New(token.KwInt, "int"),
		token.New(token.Identifier, "add"),
		token.New(token.LParen, "("),
		token.New(token.KwInt, "int"),
		token.New(token.Identifier, "a"),
		token.New(token.Comma, ","),
		token.New(token.KwInt, "int"),
		token.New(token.Identifier, "b"),
		token.New(token.RParen, ")"),
		token.New(token.LBrace, "{"),
		token.New(token.KwReturn, "return"),
		token.New(token.Identifier, "a"),
		token.New(token.Plus, "+"),
		token.New(token.Identifier, "b"),
		token.New(token.Semicolon, ";"),
		token.New(token.RBrace, "}"),
		token.New(token.EOF, ""),
	}
	assert.Equal(t, want, got)
}
