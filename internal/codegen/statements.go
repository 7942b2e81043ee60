/*
File    : seagull/internal/codegen/statements.go
*/
package codegen

import (
	"github.com/llir/llvm/ir/enum"

	"github.com/akashmaji946/seagull/internal/ast"
)

// VisitVariableDecl visits the initializer, pops its value, and binds
// it to this declaration. Locals are pure SSA values: there is no
// stack slot or alloca (§4.4).
func (g *Generator) VisitVariableDecl(n *ast.VariableDecl) {
	n.Init.Accept(g)
	g.values[n] = g.pop()
}

// VisitExpressionStmt visits the expression and discards its value.
func (g *Generator) VisitExpressionStmt(n *ast.ExpressionStmt) {
	n.Expr.Accept(g)
	g.pop()
}

// VisitReturn visits the expression and emits a ret of the popped
// value.
func (g *Generator) VisitReturn(n *ast.Return) {
	n.Value.Accept(g)
	g.cur.NewRet(g.pop())
}

// VisitIf reproduces §4.4/§9 item 1 faithfully: the condition value is
// compared against the zero constant of its own type via fcmp one, but
// the branch that follows tests the raw (uncompared) operand, not the
// compare result. The compare is therefore computed and then discarded
// — a correct lowering would branch on it instead.
func (g *Generator) VisitIf(n *ast.If) {
	n.Cond.Accept(g)
	v := g.pop()
	_ = g.cur.NewFCmp(enum.FPredONE, v, g.defaultConstant(n.Cond.Type()))

	then := g.currentFunc.NewBlock("then")
	merge := g.currentFunc.NewBlock("merge")
	g.cur.NewCondBr(v, then, merge)

	g.cur = then
	n.Body.Accept(g)
	g.cur.NewBr(merge)

	g.cur = merge
}

// VisitWhile reproduces §4.4/§9 item 7 faithfully: the condition is
// evaluated once, in the block preceding "loop", and the branch inside
// "loop" tests that same stale value on every iteration rather than
// re-evaluating the condition expression each time around. The block
// that was current on entry (the preheader) is terminated with an
// unconditional branch into "loop" before g.cur switches to it, the
// same ordering VisitIf uses for its own CondBr.
func (g *Generator) VisitWhile(n *ast.While) {
	n.Cond.Accept(g)
	v := g.pop()
	_ = g.cur.NewFCmp(enum.FPredONE, v, g.defaultConstant(n.Cond.Type()))

	loop := g.currentFunc.NewBlock("loop")
	g.cur.NewBr(loop)
	g.cur = loop

	then := g.currentFunc.NewBlock("then")
	els := g.currentFunc.NewBlock("else")
	g.cur.NewCondBr(v, then, els)

	g.cur = then
	n.Body.Accept(g)
	g.cur.NewBr(loop)

	g.cur = els
}

// VisitFor visits init (discarding its value), visits the condition
// once, then lowers the conditional back-edge the same way VisitWhile
// does, including terminating the preheader block with a branch into
// "for_loop" before g.cur switches to it.
func (g *Generator) VisitFor(n *ast.For) {
	n.Init.Accept(g)
	g.pop()

	n.Cond.Accept(g)
	cond := g.pop()

	loop := g.currentFunc.NewBlock("for_loop")
	g.cur.NewBr(loop)
	g.cur = loop

	then := g.currentFunc.NewBlock("then")
	els := g.currentFunc.NewBlock("else")
	g.cur.NewCondBr(cond, then, els)

	g.cur = then
	n.Body.Accept(g)
	n.Step.Accept(g)
	g.pop()
	g.cur.NewBr(loop)

	g.cur = els
}

// VisitCompound visits children in order.
func (g *Generator) VisitCompound(n *ast.Compound) {
	for _, s := range n.Stmts {
		s.Accept(g)
	}
}
