/*
File    : seagull/internal/token/token.go
*/

// Package token defines the lexical token vocabulary of the seagull
// source language: the small C-like dialect of §3/§4.1 with two
// primitive types, free functions, and structured control flow.
package token

// Type identifies the category of a Token. It is defined as a string so
// that tests and diagnostics can print it directly, matching the token
// taxonomy in spec §3.
type Type string

// Token type constants. Grouped the way the grammar in §4.1/§4.2 groups
// them: the end-of-file sentinel, keywords, punctuation, and the three
// text-bearing literal/identifier variants.
const (
	// EOF marks the end of the token stream. Every tokenize() call
	// appends exactly one of these, even for an empty or all-whitespace
	// input (§8, lexer law 1).
	EOF Type = "EOF"

	// Keywords
	KwInt    Type = "int"
	KwFloat  Type = "float"
	KwFor    Type = "for"
	KwWhile  Type = "while"
	KwIf     Type = "if"
	KwReturn Type = "return"

	// Punctuation
	Comma     Type = ","
	Semicolon Type = ";"
	LParen    Type = "("
	RParen    Type = ")"
	LBrace    Type = "{"
	RBrace    Type = "}"
	Assign    Type = "="
	Plus      Type = "+"
	Minus     Type = "-"
	Star      Type = "*"
	Slash     Type = "/"

	// Text-bearing variants
	Identifier   Type = "IDENT"
	IntLiteral   Type = "INT_LIT"
	FloatLiteral Type = "FLOAT_LIT"
)

// Keywords maps reserved-word spellings to their Type. Used by the lexer
// to distinguish keywords from ordinary identifiers once it has scanned a
// maximal identifier run (a letter or underscore, then letters,
// underscores, or digits).
var Keywords = map[string]Type{
	"int":    KwInt,
	"float":  KwFloat,
	"for":    KwFor,
	"while":  KwWhile,
	"if":     KwIf,
	"return": KwReturn,
}

// Token is a single lexical token: its classification plus, for the
// three text-bearing variants (identifier, int literal, float literal),
// the source text that produced it. Keywords and punctuation carry no
// payload beyond Type since their spelling is fixed.
type Token struct {
	Type    Type
	Literal string
}

// New constructs a Token of the given type carrying the given literal
// text. For keywords and punctuation, literal is conventionally the
// token's own spelling (useful for diagnostics and tests).
func New(t Type, literal string) Token {
	return Token{Type: t, Literal: literal}
}

// LookupIdent classifies a scanned identifier-shaped run of text: if it
// matches a reserved keyword spelling, the keyword's Type is returned;
// otherwise it is an ordinary Identifier.
func LookupIdent(text string) Type {
	if t, ok := Keywords[text]; ok {
		return t
	}
	return Identifier
}
