/*
File    : seagull/internal/parser/parser_statements.go
*/
package parser

import (
	"github.com/akashmaji946/seagull/internal/ast"
	"github.com/akashmaji946/seagull/internal/token"
)

// parseStatement recognizes:
//
//	statement := for_stmt | while_stmt | if_stmt | return_stmt
//	           | compound  | var_decl  | expr_stmt
func (p *Parser) parseStatement() (ast.Stmt, bool) {
	if s, ok := p.parseForStatement(); ok {
		return s, true
	}
	if s, ok := p.parseWhileStatement(); ok {
		return s, true
	}
	if s, ok := p.parseIfStatement(); ok {
		return s, true
	}
	if s, ok := p.parseReturnStatement(); ok {
		return s, true
	}
	if s, ok := p.parseCompoundStatement(); ok {
		return s, true
	}
	if s, ok := p.parseVariableDeclaration(); ok {
		return s, true
	}
	if s, ok := p.parseExpressionStatement(); ok {
		return s, true
	}
	return nil, false
}

// parseStatements recognizes statement+ (one or more).
func (p *Parser) parseStatements() ([]ast.Stmt, bool) {
	first, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	stmts := []ast.Stmt{first}
	for {
		s, ok := p.parseStatement()
		if !ok {
			break
		}
		stmts = append(stmts, s)
	}
	return stmts, true
}

// parseCompoundStatement recognizes '{' statements '}'. Note this
// dialect does not push a fresh sema scope here (§4.3, §9 open
// question 5): all locals in a function, however deeply nested their
// enclosing compounds, share the one scope pushed at function entry.
func (p *Parser) parseCompoundStatement() (ast.Stmt, bool) {
	save := p.pos

	if !p.expect(token.LBrace) {
		p.pos = save
		return nil, false
	}
	stmts, ok := p.parseStatements()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RBrace) {
		p.pos = save
		return nil, false
	}
	return &ast.Compound{Stmts: stmts}, true
}

// parseForStatement recognizes:
//
//	for_stmt := 'for' '(' expr ';' expr ';' expr ')' compound
func (p *Parser) parseForStatement() (ast.Stmt, bool) {
	save := p.pos

	if !p.expect(token.KwFor) {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	init, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.Semicolon) {
		p.pos = save
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.Semicolon) {
		p.pos = save
		return nil, false
	}
	step, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	body, ok := p.parseCompoundStatement()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &ast.For{Init: init, Cond: cond, Step: step, Body: body}, true
}

// parseWhileStatement recognizes:
//
//	while_stmt := 'while' '(' expr ')' compound
func (p *Parser) parseWhileStatement() (ast.Stmt, bool) {
	save := p.pos

	if !p.expect(token.KwWhile) {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	body, ok := p.parseCompoundStatement()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &ast.While{Cond: cond, Body: body}, true
}

// parseIfStatement recognizes:
//
//	if_stmt := 'if' '(' expr ')' compound
func (p *Parser) parseIfStatement() (ast.Stmt, bool) {
	save := p.pos

	if !p.expect(token.KwIf) {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.RParen) {
		p.pos = save
		return nil, false
	}
	body, ok := p.parseCompoundStatement()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &ast.If{Cond: cond, Body: body}, true
}

// parseReturnStatement recognizes:
//
//	return_stmt := 'return' expr ';'
func (p *Parser) parseReturnStatement() (ast.Stmt, bool) {
	save := p.pos

	if !p.expect(token.KwReturn) {
		p.pos = save
		return nil, false
	}
	value, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.Semicolon) {
		p.pos = save
		return nil, false
	}
	stmt, err := p.sema.ActOnReturnStatement(value)
	if err != nil {
		panic(err)
	}
	return stmt, true
}

// parseVariableDeclaration recognizes:
//
//	var_decl := type name [ '=' expr ] ';'
func (p *Parser) parseVariableDeclaration() (ast.Stmt, bool) {
	save := p.pos

	typ, ok := p.parseType()
	if !ok {
		p.pos = save
		return nil, false
	}
	name, ok := p.parseName()
	if !ok {
		p.pos = save
		return nil, false
	}
	var init ast.Expr
	if p.at(token.Assign) {
		p.advance()
		init, ok = p.parseExpr()
		if !ok {
			p.pos = save
			return nil, false
		}
	}
	if !p.expect(token.Semicolon) {
		p.pos = save
		return nil, false
	}
	decl, err := p.sema.ActOnVariableDeclaration(typ, name, init)
	if err != nil {
		panic(err)
	}
	return decl, true
}

// parseExpressionStatement recognizes:
//
//	expr_stmt := expr ';'
func (p *Parser) parseExpressionStatement() (ast.Stmt, bool) {
	save := p.pos

	expr, ok := p.parseExpr()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.Semicolon) {
		p.pos = save
		return nil, false
	}
	return &ast.ExpressionStmt{Expr: expr}, true
}
