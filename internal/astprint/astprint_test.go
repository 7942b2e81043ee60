/*
File    : seagull/internal/astprint/astprint_test.go
*/
package astprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/seagull/internal/lexer"
	"github.com/akashmaji946/seagull/internal/parser"
)

func TestPrintUnit_ContainsFunctionAndReturn(t *testing.T) {
	unit, err := parser.Parse(lexer.Tokenize("int f(){ return 0; }"))
	require.NoError(t, err)

	out := PrintUnit(unit)
	assert.Contains(t, out, "function_declaration")
	assert.Contains(t, out, `name = "f"`)
	assert.Contains(t, out, "return_statement")
	assert.Contains(t, out, "int_literal_expression")
}

func TestPrintUnit_CallPrintsDeclRefWithoutRewalkingCallee(t *testing.T) {
	unit, err := parser.Parse(lexer.Tokenize("int f(int n){ return n; } int g(){ return f(1); }"))
	require.NoError(t, err)

	out := PrintUnit(unit)
	assert.Contains(t, out, "call_expression")
	assert.Contains(t, out, `decl = "f"`)

	// declRef prints a one-line reference rather than re-walking f's own
	// body, so f's parameter name appears exactly once (in f's own
	// function_declaration), not again at the g -> f call site.
	assert.Equal(t, 1, strings.Count(out, `name = "n"`))
}
