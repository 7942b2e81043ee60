/*
File    : seagull/internal/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/seagull/internal/ast"
	"github.com/akashmaji946/seagull/internal/lexer"
	"github.com/akashmaji946/seagull/internal/sema"
)

func parse(t *testing.T, src string) *ast.Unit {
	t.Helper()
	unit, err := Parse(lexer.Tokenize(src))
	require.NoError(t, err)
	require.NotNil(t, unit)
	return unit
}

func TestParse_SimpleFunction(t *testing.T) {
	unit := parse(t, "int f(){ return 0; }")
	require.Len(t, unit.Functions, 1)

	f := unit.Functions[0]
	assert.Equal(t, "f", f.Name)
	assert.Equal(t, ast.INT, f.ReturnType)
	assert.Empty(t, f.Params)

	body, ok := f.Body.(*ast.Compound)
	require.True(t, ok)
	require.Len(t, body.Stmts, 1)

	ret, ok := body.Stmts[0].(*ast.Return)
	require.True(t, ok)
	lit, ok := ret.Value.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int32(0), lit.Value)
}

func TestParse_CallBackReferenceHoldsCalleeName(t *testing.T) {
	unit := parse(t, "int f(int x){ return x; } int g(){ return f(1); }")
	require.Len(t, unit.Functions, 2)

	g := unit.Functions[1]
	body := g.Body.(*ast.Compound)
	ret := body.Stmts[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Decl.Name)
}

func TestParse_RejectsInitializerTypeMismatch(t *testing.T) {
	_, err := Parse(lexer.Tokenize("int f(){ float x = 1; return 0; }"))
	require.Error(t, err)
	semaErr, ok := err.(*sema.Error)
	require.True(t, ok)
	assert.Equal(t, sema.InitializerMismatch, semaErr.Kind)
}

func TestParse_RejectsDuplicateParameterName(t *testing.T) {
	_, err := Parse(lexer.Tokenize("int f(int x, int x){ return 0; }"))
	require.Error(t, err)
	semaErr, ok := err.(*sema.Error)
	require.True(t, ok)
	assert.Equal(t, sema.DuplicateParameter, semaErr.Kind)
}

func TestParse_AdditiveAssociativityIsLeftToRight(t *testing.T) {
	unit := parse(t, "int f(int a, int b, int c){ return a - b - c; }")
	body := unit.Functions[0].Body.(*ast.Compound)
	ret := body.Stmts[0].(*ast.Return)

	outer, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.MINUS, outer.Op)

	_, cIsVariable := outer.Rhs.(*ast.Variable)
	assert.True(t, cIsVariable)
	assert.Equal(t, "c", outer.Rhs.(*ast.Variable).Decl.Name)

	inner, ok := outer.Lhs.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.MINUS, inner.Op)
	assert.Equal(t, "a", inner.Lhs.(*ast.Variable).Decl.Name)
	assert.Equal(t, "b", inner.Rhs.(*ast.Variable).Decl.Name)
}

func TestParse_UnknownFunctionIsFatal(t *testing.T) {
	_, err := Parse(lexer.Tokenize("int f(){ g(); return 0; }"))
	require.Error(t, err)
	semaErr, ok := err.(*sema.Error)
	require.True(t, ok)
	assert.Equal(t, sema.UnknownCallee, semaErr.Kind)
}

func TestParse_DefaultInitializedVariable(t *testing.T) {
	unit := parse(t, "int f(){ int x; return x; }")
	body := unit.Functions[0].Body.(*ast.Compound)
	decl := body.Stmts[0].(*ast.VariableDecl)
	lit, ok := decl.Init.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int32(0), lit.Value)
}

func TestParse_TrailingGarbageIsSyntaxError(t *testing.T) {
	_, err := Parse(lexer.Tokenize("int f(){ return 0; } )"))
	require.Error(t, err)
	assert.Equal(t, errSyntax, err)
}

func TestParse_ForLoopParses(t *testing.T) {
	unit := parse(t, "int f(int n){ int s = 0; for(s = 0; n; n) { s = s + 1; } return s; }")
	body := unit.Functions[0].Body.(*ast.Compound)
	require.Len(t, body.Stmts, 3)
	_, ok := body.Stmts[1].(*ast.For)
	assert.True(t, ok)
}
