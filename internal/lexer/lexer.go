/*
File    : seagull/internal/lexer/lexer.go
*/

// Package lexer implements the single-pass scanner of §4.1: source text
// in, an ordered token stream out, with exactly one byte of lookahead.
package lexer

import "github.com/akashmaji946/seagull/internal/token"

// Lexer scans a source string one byte at a time. It carries no other
// state than its position, following spec §4.1 ("no look-behind; single
// character of lookahead suffices"). Unlike the teacher's lexer it does
// not track line/column: §1 explicitly excludes source-location tracking
// from this dialect ("Non-goals ... no source-location tracking").
type Lexer struct {
	src string
	pos int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) current() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() byte {
	b := l.current()
	l.pos++
	return b
}

func isSpace(b byte) bool { return b == ' ' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// isIdentTail reports whether b may continue an identifier after its
// first character. §9 open question 4 flags a discrepancy in the source
// between the grammar comment (letters/digits/underscore) and the actual
// scan loop (letters/underscore only, no digits). This implementation
// takes the spec's recommended resolution: digits are permitted after
// the first character.
func isIdentTail(b byte) bool {
	return isLetter(b) || isDigit(b)
}

var singleCharPunct = map[byte]token.Type{
	',': token.Comma,
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'=': token.Assign,
	'+': token.Plus,
	'*': token.Star,
	'/': token.Slash,
}

// NextToken recognizes and returns the single next token starting at the
// lexer's current position, applying the match-order rules of §4.1:
// single-character punctuation, a possibly-signed numeric literal, an
// identifier/keyword run, or end of input. Any byte matching none of
// these (whitespace aside) is silently skipped, reproducing §9 open
// question 3 rather than "fixing" it into a diagnostic.
func (l *Lexer) NextToken() token.Token {
	for !l.atEnd() && isSpace(l.current()) {
		l.advance()
	}
	if l.atEnd() {
		return token.New(token.EOF, "")
	}

	c := l.current()

	if tt, ok := singleCharPunct[c]; ok {
		l.advance()
		return token.New(tt, string(c))
	}

	if c == '-' {
		if isDigit(l.peek()) {
			return l.scanNumber()
		}
		l.advance()
		return token.New(token.Minus, "-")
	}

	if isDigit(c) {
		return l.scanNumber()
	}

	if isLetter(c) {
		start := l.pos
		l.advance()
		for !l.atEnd() && isIdentTail(l.current()) {
			l.advance()
		}
		text := l.src[start:l.pos]
		return token.New(token.LookupIdent(text), text)
	}

	// Rule 5 (§4.1): anything else is silently skipped and we retry.
	l.advance()
	return l.NextToken()
}

// scanNumber consumes an optionally-signed numeric literal starting at
// the current position, which is either '-' followed by a digit or a
// digit directly. It implements §4.1 rule 3: a maximal run of digits,
// optionally followed by '.' and a further (possibly empty) maximal run
// of digits, which yields a float literal; otherwise an integer literal.
// A literal such as "3." is therefore a valid float literal with no
// fractional digits.
func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	if l.current() == '-' {
		l.advance()
	}
	for !l.atEnd() && isDigit(l.current()) {
		l.advance()
	}
	if !l.atEnd() && l.current() == '.' {
		l.advance()
		for !l.atEnd() && isDigit(l.current()) {
			l.advance()
		}
		return token.New(token.FloatLiteral, l.src[start:l.pos])
	}
	return token.New(token.IntLiteral, l.src[start:l.pos])
}

// Tokenize scans the entirety of src eagerly and returns the full token
// sequence terminated by an EOF sentinel, as required by §2 ("pure
// function: source text -> ordered sequence of tokens").
func Tokenize(src string) []token.Token {
	l := New(src)
	var tokens []token.Token
	for {
		t := l.NextToken()
		tokens = append(tokens, t)
		if t.Type == token.EOF {
			return tokens
		}
	}
}
