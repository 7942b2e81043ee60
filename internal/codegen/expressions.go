/*
File    : seagull/internal/codegen/expressions.go
*/
package codegen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/akashmaji946/seagull/internal/ast"
)

// VisitVariable pushes the bound SSA value for the referenced
// declaration.
func (g *Generator) VisitVariable(n *ast.Variable) {
	g.push(g.values[n.Decl])
}

// VisitAssignment visits the RHS and rebinds the declaration's value
// to the top of the stack without popping it: the assignment's own
// value remains on the stack as the expression's result (§4.4).
func (g *Generator) VisitAssignment(n *ast.Assignment) {
	n.Value.Accept(g)
	g.values[n.Decl] = g.peek()
}

// VisitIntLiteral pushes a typed i32 constant.
func (g *Generator) VisitIntLiteral(n *ast.IntLiteral) {
	g.push(constant.NewInt(types.I32, int64(n.Value)))
}

// VisitFloatLiteral pushes a typed float constant.
func (g *Generator) VisitFloatLiteral(n *ast.FloatLiteral) {
	g.push(constant.NewFloat(types.Float, float64(n.Value)))
}

// VisitCall visits each argument, pops it, collects an argument list in
// order, and emits a call to the mapped IR function.
func (g *Generator) VisitCall(n *ast.Call) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		a.Accept(g)
		args[i] = g.pop()
	}
	fn := g.functions[n.Decl]
	g.push(g.cur.NewCall(fn, args...))
}

// VisitBinary emits add/sub/mul/sdiv per the operator tag. Per §4.4 and
// §9 item 2, this dispatches on integer opcodes unconditionally, even
// when the operand type is float — a correct compiler would select
// fadd/fsub/fmul/fdiv for float operands instead.
func (g *Generator) VisitBinary(n *ast.Binary) {
	n.Lhs.Accept(g)
	lhs := g.pop()
	n.Rhs.Accept(g)
	rhs := g.pop()

	var result value.Value
	switch n.Op {
	case ast.PLUS:
		result = g.cur.NewAdd(lhs, rhs)
	case ast.MINUS:
		result = g.cur.NewSub(lhs, rhs)
	case ast.MULTIPLY:
		result = g.cur.NewMul(lhs, rhs)
	case ast.DIVIDE:
		result = g.cur.NewSDiv(lhs, rhs)
	}
	g.push(result)
}

// VisitCast visits the inner expression and emits fptosi (target INT)
// or sitofp (target FLOAT). The cast is only meaningful when the
// inner expression's type is the opposite of the target (§4.4).
func (g *Generator) VisitCast(n *ast.Cast) {
	n.Inner.Accept(g)
	v := g.pop()

	var result value.Value
	if n.Target == ast.INT {
		result = g.cur.NewFPToSI(v, types.I32)
	} else {
		result = g.cur.NewSIToFP(v, types.Float)
	}
	g.push(result)
}
