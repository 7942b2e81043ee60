/*
File    : seagull/internal/parser/parser_expressions.go
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/seagull/internal/ast"
	"github.com/akashmaji946/seagull/internal/token"
)

// parseExpr is the grammar's top expression entry point: expr :=
// add_expr.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseAdditiveExpr()
}

// parseAdditiveExpr recognizes:
//
//	add_expr := mul_expr (('+'|'-') mul_expr)*
//
// Associativity is left-to-right by iterative folding (§4.2): after the
// first operand, each (op, operand) pair is folded into the running
// left-hand side via sema.ActOnBinaryExpression rather than recursing,
// so `a - b - c` parses as (a - b) - c.
func (p *Parser) parseAdditiveExpr() (ast.Expr, bool) {
	save := p.pos

	lhs, ok := p.parseMultiplicativeExpr()
	if !ok {
		p.pos = save
		return nil, false
	}

	for p.at(token.Plus) || p.at(token.Minus) {
		var op ast.BinaryOp
		if p.current().Type == token.Plus {
			op = ast.PLUS
		} else {
			op = ast.MINUS
		}
		p.advance()

		rhs, ok := p.parseMultiplicativeExpr()
		if !ok {
			p.pos = save
			return nil, false
		}
		folded, err := p.sema.ActOnBinaryExpression(op, lhs, rhs)
		if err != nil {
			panic(err)
		}
		lhs = folded
	}
	return lhs, true
}

// parseMultiplicativeExpr recognizes:
//
//	mul_expr := prim_expr (('*'|'/') prim_expr)*
func (p *Parser) parseMultiplicativeExpr() (ast.Expr, bool) {
	save := p.pos

	lhs, ok := p.parsePrimaryExpr()
	if !ok {
		p.pos = save
		return nil, false
	}

	for p.at(token.Star) || p.at(token.Slash) {
		var op ast.BinaryOp
		if p.current().Type == token.Star {
			op = ast.MULTIPLY
		} else {
			op = ast.DIVIDE
		}
		p.advance()

		rhs, ok := p.parsePrimaryExpr()
		if !ok {
			p.pos = save
			return nil, false
		}
		folded, err := p.sema.ActOnBinaryExpression(op, lhs, rhs)
		if err != nil {
			panic(err)
		}
		lhs = folded
	}
	return lhs, true
}

// parsePrimaryExpr recognizes, in order:
//
//	prim_expr := int_lit | float_lit
//	           | '(' expr ')'
//	           | type '(' expr ')'
//	           | name '(' [expr (',' expr)*] ')'
//	           | name '=' expr
//	           | name
//
// Each alternative disambiguates on its first one or two tokens, so no
// arbitrary lookahead is required (§4.2).
func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	if e, ok := p.parseLiteral(); ok {
		return e, true
	}
	if e, ok := p.parseParenthesizedExpr(); ok {
		return e, true
	}
	if e, ok := p.parseCastExpr(); ok {
		return e, true
	}
	if e, ok := p.parseCallExpr(); ok {
		return e, true
	}
	if e, ok := p.parseAssignmentExpr(); ok {
		return e, true
	}
	if e, ok := p.parseVariableExpr(); ok {
		return e, true
	}
	return nil, false
}

func (p *Parser) parseLiteral() (ast.Expr, bool) {
	switch p.current().Type {
	case token.IntLiteral:
		tok := p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			panic(err)
		}
		return &ast.IntLiteral{Value: int32(v)}, true
	case token.FloatLiteral:
		tok := p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			panic(err)
		}
		return &ast.FloatLiteral{Value: float32(v)}, true
	default:
		return nil, false
	}
}

func (p *Parser) parseParenthesizedExpr() (ast.Expr, bool) {
	save := p.pos

	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	expr, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	return expr, true
}

func (p *Parser) parseCastExpr() (ast.Expr, bool) {
	save := p.pos

	target, ok := p.parseType()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	inner, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	return &ast.Cast{Target: target, Inner: inner}, true
}

func (p *Parser) parseCallExpr() (ast.Expr, bool) {
	save := p.pos

	name, ok := p.parseName()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	var args []ast.Expr
	if !p.at(token.RParen) {
		args, ok = p.parseExpressionList()
		if !ok {
			p.pos = save
			return nil, false
		}
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	expr, err := p.sema.ActOnCallExpression(name, args)
	if err != nil {
		panic(err)
	}
	return expr, true
}

// parseExpressionList recognizes:
//
//	expression-list := expr (',' expr)*
func (p *Parser) parseExpressionList() ([]ast.Expr, bool) {
	save := p.pos

	first, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	args := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseExpr()
		if !ok {
			p.pos = save
			return nil, false
		}
		args = append(args, next)
	}
	return args, true
}

func (p *Parser) parseAssignmentExpr() (ast.Expr, bool) {
	save := p.pos

	name, ok := p.parseName()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.Assign) {
		p.pos = save
		return nil, false
	}
	value, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	expr, err := p.sema.ActOnAssignmentExpression(name, value)
	if err != nil {
		panic(err)
	}
	return expr, true
}

func (p *Parser) parseVariableExpr() (ast.Expr, bool) {
	save := p.pos

	name, ok := p.parseName()
	if !ok {
		p.pos = save
		return nil, false
	}
	expr, err := p.sema.ActOnVariableExpression(name)
	if err != nil {
		panic(err)
	}
	return expr, true
}
