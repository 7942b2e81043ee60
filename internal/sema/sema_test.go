/*
File    : seagull/internal/sema/sema_test.go
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/seagull/internal/ast"
)

func TestActOnVariableDeclaration_SynthesizesDefault(t *testing.T) {
	s := New()
	s.PushScope()

	decl, err := s.ActOnVariableDeclaration(ast.INT, "x", nil)
	require.NoError(t, err)
	require.NotNil(t, decl.Init)

	lit, ok := decl.Init.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int32(0), lit.Value)
}

func TestActOnVariableDeclaration_RejectsDuplicateInScope(t *testing.T) {
	s := New()
	s.PushScope()

	_, err := s.ActOnVariableDeclaration(ast.INT, "x", nil)
	require.NoError(t, err)

	_, err = s.ActOnVariableDeclaration(ast.FLOAT, "x", nil)
	require.Error(t, err)
	semaErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateVariable, semaErr.Kind)
}

func TestActOnVariableDeclaration_RejectsInitializerMismatch(t *testing.T) {
	s := New()
	s.PushScope()

	_, err := s.ActOnVariableDeclaration(ast.FLOAT, "x", &ast.IntLiteral{Value: 1})
	require.Error(t, err)
	assert.Equal(t, InitializerMismatch, err.(*Error).Kind)
}

func TestActOnParameterDeclaration_RejectsDuplicateParameter(t *testing.T) {
	s := New()
	s.PushScope()

	_, err := s.ActOnParameterDeclaration(ast.INT, "x")
	require.NoError(t, err)

	_, err = s.ActOnParameterDeclaration(ast.INT, "x")
	require.Error(t, err)
	assert.Equal(t, DuplicateParameter, err.(*Error).Kind)
}

func TestActOnFunctionDeclaration_RejectsDuplicateName(t *testing.T) {
	s := New()
	body := &ast.Compound{}

	_, err := s.ActOnFunctionDeclaration(ast.INT, "f", nil, body)
	require.NoError(t, err)

	_, err = s.ActOnFunctionDeclaration(ast.FLOAT, "f", nil, body)
	require.Error(t, err)
	assert.Equal(t, DuplicateFunction, err.(*Error).Kind)
}

func TestActOnCallExpression_UnknownAndArity(t *testing.T) {
	s := New()
	_, err := s.ActOnCallExpression("missing", nil)
	require.Error(t, err)
	assert.Equal(t, UnknownCallee, err.(*Error).Kind)

	s.PushScope()
	param, _ := s.ActOnParameterDeclaration(ast.INT, "n")
	s.PopScope()
	_, err = s.ActOnFunctionDeclaration(ast.INT, "f", []*ast.VariableDecl{param}, &ast.Compound{})
	require.NoError(t, err)

	_, err = s.ActOnCallExpression("f", nil)
	require.Error(t, err)
	assert.Equal(t, ArityMismatch, err.(*Error).Kind)

	call, err := s.ActOnCallExpression("f", []ast.Expr{&ast.IntLiteral{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, ast.INT, call.Type())
}

func TestActOnAssignmentExpression(t *testing.T) {
	s := New()
	s.PushScope()
	decl, _ := s.ActOnVariableDeclaration(ast.INT, "x", nil)

	_, err := s.ActOnAssignmentExpression("missing", &ast.IntLiteral{Value: 1})
	require.Error(t, err)
	assert.Equal(t, UnknownVariable, err.(*Error).Kind)

	_, err = s.ActOnAssignmentExpression("x", &ast.FloatLiteral{Value: 1})
	require.Error(t, err)
	assert.Equal(t, AssignedTypeMismatch, err.(*Error).Kind)

	expr, err := s.ActOnAssignmentExpression("x", &ast.IntLiteral{Value: 2})
	require.NoError(t, err)
	assign := expr.(*ast.Assignment)
	assert.Same(t, decl, assign.Decl)
}

func TestActOnBinaryExpression_RejectsMixedTypes(t *testing.T) {
	s := New()
	_, err := s.ActOnBinaryExpression(ast.PLUS, &ast.IntLiteral{Value: 1}, &ast.FloatLiteral{Value: 1})
	require.Error(t, err)
	assert.Equal(t, MixedBinaryOperands, err.(*Error).Kind)

	expr, err := s.ActOnBinaryExpression(ast.PLUS, &ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2})
	require.NoError(t, err)
	assert.Equal(t, ast.INT, expr.Type())
}

func TestActOnReturnStatement_RequiresMatchingType(t *testing.T) {
	s := New()
	s.EnterFunctionDeclaration(ast.FLOAT)

	_, err := s.ActOnReturnStatement(&ast.IntLiteral{Value: 1})
	require.Error(t, err)
	assert.Equal(t, ReturnTypeMismatch, err.(*Error).Kind)

	stmt, err := s.ActOnReturnStatement(&ast.FloatLiteral{Value: 1})
	require.NoError(t, err)
	require.IsType(t, &ast.Return{}, stmt)
}

func TestLookupVariable_InnermostFirst(t *testing.T) {
	s := New()
	s.PushScope()
	outer, _ := s.ActOnVariableDeclaration(ast.INT, "x", nil)
	assert.Same(t, outer, s.lookupVariable("x"))

	s.PushScope()
	inner, _ := s.ActOnVariableDeclaration(ast.INT, "x", nil)
	assert.Same(t, inner, s.lookupVariable("x"))
}
