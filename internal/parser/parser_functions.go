/*
File    : seagull/internal/parser/parser_functions.go
*/
package parser

import (
	"github.com/akashmaji946/seagull/internal/ast"
	"github.com/akashmaji946/seagull/internal/token"
)

// parseFunctionDeclaration recognizes:
//
//	function_decl := type name '(' [param (',' param)*] ')' compound
func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDecl, bool) {
	save := p.pos

	returnType, ok := p.parseType()
	if !ok {
		p.pos = save
		return nil, false
	}
	name, ok := p.parseName()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.expect(token.LParen) {
		p.pos = save
		return nil, false
	}

	p.sema.PushScope()

	var params []*ast.VariableDecl
	if !p.at(token.RParen) {
		params, ok = p.parseParameterList()
		if !ok {
			p.sema.PopScope()
			p.pos = save
			return nil, false
		}
	}
	if !p.expect(token.RParen) {
		p.sema.PopScope()
		p.pos = save
		return nil, false
	}

	p.sema.EnterFunctionDeclaration(returnType)
	body, ok := p.parseCompoundStatement()
	p.sema.LeaveFunctionDeclaration()
	if !ok {
		p.sema.PopScope()
		p.pos = save
		return nil, false
	}

	decl, err := p.sema.ActOnFunctionDeclaration(returnType, name, params, body)
	p.sema.PopScope()
	if err != nil {
		panic(err)
	}
	return decl, true
}

// parseParameterList recognizes:
//
//	param       := type name
//	param-list  := param (',' param)*
func (p *Parser) parseParameterList() ([]*ast.VariableDecl, bool) {
	save := p.pos

	first, ok := p.parseFunctionParameter()
	if !ok {
		p.pos = save
		return nil, false
	}
	params := []*ast.VariableDecl{first}

	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseFunctionParameter()
		if !ok {
			p.pos = save
			return nil, false
		}
		params = append(params, next)
	}
	return params, true
}

func (p *Parser) parseFunctionParameter() (*ast.VariableDecl, bool) {
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
	decl, err := p.sema.ActOnParameterDeclaration(typ, name)
	if err != nil {
		panic(err)
	}
	return decl, true
}
