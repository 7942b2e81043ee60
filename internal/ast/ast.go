/*
File    : seagull/internal/ast/ast.go
*/

// Package ast defines the abstract syntax tree produced by the parser
// once every node has passed through sema validation (§3). Expression
// nodes carry a resolved result Type; statement and declaration nodes
// hold owned children by value-of-pointer, following the ownership tree
// described in §5. Variable, Assignment, and Call hold non-owning
// ("weak") references to declarations that outlive them, per §3's
// invariant list.
package ast

// PrimitiveType is the enumeration of the two primitive types this
// dialect supports (§3).
type PrimitiveType int

const (
	INT PrimitiveType = iota
	FLOAT
)

func (t PrimitiveType) String() string {
	switch t {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	default:
		return "?"
	}
}

// BinaryOp is the enumeration of binary arithmetic operators (§3).
type BinaryOp int

const (
	PLUS BinaryOp = iota
	MINUS
	MULTIPLY
	DIVIDE
)

func (op BinaryOp) String() string {
	switch op {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	default:
		return "?"
	}
}

// ResultType promotes two equal operand types to their shared result
// type. §4.3 notes that a true promotion table exists in name only: the
// sema precondition that lhs.Type == rhs.Type means this function is
// only ever asked to promote a type to itself. It is kept as its own
// function (rather than inlined) to mirror the teacher-language's
// get_result_type, which the spec calls out as "never triggered".
func ResultType(lhs, rhs PrimitiveType) PrimitiveType {
	if lhs != rhs {
		panic("ast: ResultType called with mismatched operand types")
	}
	return lhs
}

// Expr is any expression node. Every concrete expression type exposes
// its resolved result type via Type.
type Expr interface {
	Accept(v Visitor)
	Type() PrimitiveType
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v Visitor)
}

// IntLiteral is a decimal integer literal; its result type is always
// INT.
type IntLiteral struct {
	Value int32
}

func (n *IntLiteral) Type() PrimitiveType { return INT }
func (n *IntLiteral) Accept(v Visitor)    { v.VisitIntLiteral(n) }

// FloatLiteral is a decimal float literal; its result type is always
// FLOAT.
type FloatLiteral struct {
	Value float32
}

func (n *FloatLiteral) Type() PrimitiveType { return FLOAT }
func (n *FloatLiteral) Accept(v Visitor)    { v.VisitFloatLiteral(n) }

// Variable is a reference to a previously declared variable. Decl is a
// non-owning back-reference into the VariableDecl that declared it;
// VariableDecl nodes are owned by the statement or function that
// introduced them and outlive every Variable that refers to them (§3,
// §5).
type Variable struct {
	Decl *VariableDecl
}

func (n *Variable) Type() PrimitiveType { return n.Decl.Type }
func (n *Variable) Accept(v Visitor)    { v.VisitVariable(n) }

// Assignment assigns Value to the variable named by Decl. Its result
// type (and value, per §4.4) is that of the referenced variable.
type Assignment struct {
	Decl  *VariableDecl
	Value Expr
}

func (n *Assignment) Type() PrimitiveType { return n.Decl.Type }
func (n *Assignment) Accept(v Visitor)    { v.VisitAssignment(n) }

// Call invokes Decl with Args, in order. Its result type is the
// callee's return type.
type Call struct {
	Decl *FunctionDecl
	Args []Expr
}

func (n *Call) Type() PrimitiveType { return n.Decl.ReturnType }
func (n *Call) Accept(v Visitor)    { v.VisitCall(n) }

// Binary is lhs `op` rhs. Sema guarantees lhs.Type() == rhs.Type()
// before this node is constructed (§4.3); its result type is that
// common operand type.
type Binary struct {
	Op       BinaryOp
	Lhs, Rhs Expr
	Result   PrimitiveType
}

func (n *Binary) Type() PrimitiveType { return n.Result }
func (n *Binary) Accept(v Visitor)    { v.VisitBinary(n) }

// Cast converts Inner's value to Target, regardless of Inner's own
// type (§3: "Every Cast yields the target type regardless of operand
// type").
type Cast struct {
	Target PrimitiveType
	Inner  Expr
}

func (n *Cast) Type() PrimitiveType { return n.Target }
func (n *Cast) Accept(v Visitor)    { v.VisitCast(n) }

// VariableDecl declares a variable of Type named Name, initialized by
// Init. Sema guarantees Init is never nil once parsing completes: an
// omitted initializer is replaced with a synthesized default (§4.3).
// VariableDecl is also the arena root that Variable/Assignment weak
// references point into; see package doc.
type VariableDecl struct {
	Type PrimitiveType
	Name string
	Init Expr
}

func (n *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(n) }

// ExpressionStmt evaluates Expr and discards its value.
type ExpressionStmt struct {
	Expr Expr
}

func (n *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(n) }

// Return returns Value from the enclosing function. Sema guarantees
// Value.Type() equals the enclosing function's declared return type.
type Return struct {
	Value Expr
}

func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }

// If conditionally executes Body once based on Cond.
type If struct {
	Cond Expr
	Body Stmt
}

func (n *If) Accept(v Visitor) { v.VisitIf(n) }

// While repeatedly executes Body while Cond holds. §9 open question 7
// documents that the code generator's faithful lowering evaluates Cond
// only once, before the loop, rather than on each iteration.
type While struct {
	Cond Expr
	Body Stmt
}

func (n *While) Accept(v Visitor) { v.VisitWhile(n) }

// For is a C-style for loop: Init runs once, then Body and Step run on
// each iteration. As with While, the code generator evaluates Cond only
// once, before the loop, and branches on that same value on every
// iteration.
type For struct {
	Init, Cond, Step Expr
	Body             Stmt
}

func (n *For) Accept(v Visitor) { v.VisitFor(n) }

// Compound is an ordered sequence of statements sharing the enclosing
// function's single scope (§4.3: nested compounds do not push a new
// scope in this dialect).
type Compound struct {
	Stmts []Stmt
}

func (n *Compound) Accept(v Visitor) { v.VisitCompound(n) }

// FunctionDecl is a top-level function: its declared return type, name,
// ordered parameters, and compound body.
type FunctionDecl struct {
	ReturnType PrimitiveType
	Name       string
	Params     []*VariableDecl
	Body       Stmt
}

func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }

// Unit is an entire translation unit: an ordered sequence of function
// declarations (§3).
type Unit struct {
	Functions []*FunctionDecl
}

func (n *Unit) Accept(v Visitor) { v.VisitUnit(n) }
