/*
File    : seagull/internal/parser/parser.go
*/

// Package parser implements the predictive recursive-descent parser of
// §4.2. Each parse_X routine follows the single-point-rollback contract:
// on success it advances past what it consumed and returns (value,
// true); on failure it restores the position it started at and returns
// (zero value, false), so the caller may try the next grammar
// alternative. This mirrors the teacher's own token-cursor style
// (parser.CurrToken/NextToken in parser/parser.go) generalized to
// support backtracking, which spec §4.2 requires and the teacher's own
// Pratt parser does not need.
//
// Upon recognizing a construct the parser hands off to sema (§4.3) for
// validation and AST construction; a sema rejection is not a
// backtrackable parse failure; it panics with a *sema.Error that Parse
// recovers at the top level and turns into a returned error, matching
// §7's "first error is fatal" contract without threading an error
// return through every recursive-descent routine (the same bailout
// pattern the Go standard library's own parser uses for fatal syntax
// errors).
package parser

import (
	"errors"

	"github.com/akashmaji946/seagull/internal/ast"
	"github.com/akashmaji946/seagull/internal/sema"
	"github.com/akashmaji946/seagull/internal/token"
)

// errSyntax is returned by Parse when the top-level grammar rule itself
// fails to match; per §7 this is not user-facing and carries no
// diagnostic text, only a fatal "no IR output" outcome.
var errSyntax = errors.New("parser: input did not match the unit grammar")

// Parser is a single-lookahead cursor over a token slice plus the sema
// context that validates and builds AST nodes as constructs are
// recognized.
type Parser struct {
	tokens []token.Token
	pos    int
	sema   *sema.Sema
}

func newParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, sema: sema.New()}
}

// Parse tokenizes nothing itself (that is lexer.Tokenize's job) and
// instead consumes an already-produced token stream, returning the
// validated translation unit. A semantic violation is surfaced as a
// *sema.Error; a syntactic mismatch at the top level is surfaced as
// errSyntax.
func Parse(tokens []token.Token) (unit *ast.Unit, err error) {
	defer func() {
		if r := recover(); r != nil {
			if semaErr, ok := r.(*sema.Error); ok {
				err = semaErr
				return
			}
			panic(r)
		}
	}()

	p := newParser(tokens)
	u, ok := p.parseUnit()
	if !ok {
		return nil, errSyntax
	}
	return u, nil
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

// advance consumes and returns the current token. It never advances
// past the trailing EOF sentinel, so callers may call it freely once
// they've already confirmed a match.
func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(t token.Type) bool {
	return p.current().Type == t
}

// expect consumes the current token if it matches t, reporting whether
// it did. It never rolls back by itself: callers restore p.pos
// themselves on overall rule failure, per the single-point-rollback
// contract.
func (p *Parser) expect(t token.Type) bool {
	if !p.at(t) {
		return false
	}
	p.advance()
	return true
}

// parseName recognizes a bare identifier token (the grammar's name-id).
func (p *Parser) parseName() (string, bool) {
	if !p.at(token.Identifier) {
		return "", false
	}
	return p.advance().Literal, true
}

// parseType recognizes the 'int' or 'float' keyword.
func (p *Parser) parseType() (ast.PrimitiveType, bool) {
	switch p.current().Type {
	case token.KwInt:
		p.advance()
		return ast.INT, true
	case token.KwFloat:
		p.advance()
		return ast.FLOAT, true
	default:
		return 0, false
	}
}

// parseUnit recognizes unit ::= function_decl+.
func (p *Parser) parseUnit() (*ast.Unit, bool) {
	var fns []*ast.FunctionDecl
	for {
		fn, ok := p.parseFunctionDeclaration()
		if !ok {
			break
		}
		fns = append(fns, fn)
	}
	if len(fns) == 0 {
		return nil, false
	}
	if !p.at(token.EOF) {
		return nil, false
	}
	return &ast.Unit{Functions: fns}, true
}
