/*
File    : seagull/internal/ast/visitor.go
*/
package ast

// Visitor is the double-dispatch interface every AST consumer
// implements: the code generator (§4.4) and the supplemented pretty
// printer (internal/astprint) both drive a post-order walk of the tree
// through this interface, mirroring the accept/visit split of the
// teacher's own PrintingVisitor (main.go) and of the original compiler's
// `struct visitor`.
type Visitor interface {
	VisitUnit(n *Unit)
	VisitFunctionDecl(n *FunctionDecl)
	VisitVariableDecl(n *VariableDecl)
	VisitExpressionStmt(n *ExpressionStmt)
	VisitReturn(n *Return)
	VisitIf(n *If)
	VisitWhile(n *While)
	VisitFor(n *For)
	VisitCompound(n *Compound)
	VisitVariable(n *Variable)
	VisitAssignment(n *Assignment)
	VisitIntLiteral(n *IntLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitCall(n *Call)
	VisitBinary(n *Binary)
	VisitCast(n *Cast)
}
