/*
File    : seagull/internal/astprint/visit.go
*/
package astprint

import "github.com/akashmaji946/seagull/internal/ast"

func (p *Printer) VisitUnit(n *ast.Unit) {
	p.open("unit")
	p.line("function_declarations = [")
	p.indent += indentSize
	if len(n.Functions) == 0 {
		p.line("<none>")
	}
	for _, fn := range n.Functions {
		fn.Accept(p)
	}
	p.indent -= indentSize
	p.line("]")
	p.close()
}

func (p *Printer) VisitFunctionDecl(n *ast.FunctionDecl) {
	p.open("function_declaration")
	p.line("return_type = %q", n.ReturnType.String())
	p.line("name = %q", n.Name)
	p.line("parameters = [")
	p.indent += indentSize
	if len(n.Params) == 0 {
		p.line("<none>")
	}
	for _, param := range n.Params {
		param.Accept(p)
	}
	p.indent -= indentSize
	p.line("]")
	p.line("body =")
	p.indent += indentSize
	n.Body.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitVariableDecl(n *ast.VariableDecl) {
	p.open("variable_declaration_statement")
	p.line("type = %q", n.Type.String())
	p.line("name = %q", n.Name)
	p.line("initialization =")
	p.indent += indentSize
	n.Init.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitExpressionStmt(n *ast.ExpressionStmt) {
	p.open("expression_statement")
	p.line("expr =")
	p.indent += indentSize
	n.Expr.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitReturn(n *ast.Return) {
	p.open("return_statement")
	p.line("value =")
	p.indent += indentSize
	n.Value.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitIf(n *ast.If) {
	p.open("if_statement")
	p.line("condition =")
	p.indent += indentSize
	n.Cond.Accept(p)
	p.indent -= indentSize
	p.line("body =")
	p.indent += indentSize
	n.Body.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitWhile(n *ast.While) {
	p.open("while_statement")
	p.line("condition =")
	p.indent += indentSize
	n.Cond.Accept(p)
	p.indent -= indentSize
	p.line("body =")
	p.indent += indentSize
	n.Body.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitFor(n *ast.For) {
	p.open("for_statement")
	p.line("initialization =")
	p.indent += indentSize
	n.Init.Accept(p)
	p.indent -= indentSize
	p.line("condition =")
	p.indent += indentSize
	n.Cond.Accept(p)
	p.indent -= indentSize
	p.line("step =")
	p.indent += indentSize
	n.Step.Accept(p)
	p.indent -= indentSize
	p.line("body =")
	p.indent += indentSize
	n.Body.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitCompound(n *ast.Compound) {
	p.open("compound_statement")
	p.line("statements = [")
	p.indent += indentSize
	if len(n.Stmts) == 0 {
		p.line("<none>")
	}
	for _, s := range n.Stmts {
		s.Accept(p)
	}
	p.indent -= indentSize
	p.line("]")
	p.close()
}

func (p *Printer) VisitVariable(n *ast.Variable) {
	p.open("variable_expression")
	p.line("type = %q", n.Type().String())
	p.declRef("decl", n.Decl.Name)
	p.close()
}

func (p *Printer) VisitAssignment(n *ast.Assignment) {
	p.open("assignment_expression")
	p.line("type = %q", n.Type().String())
	p.declRef("decl", n.Decl.Name)
	p.line("value =")
	p.indent += indentSize
	n.Value.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitIntLiteral(n *ast.IntLiteral) {
	p.open("int_literal_expression")
	p.line("type = %q", n.Type().String())
	p.line("value = %d", n.Value)
	p.close()
}

func (p *Printer) VisitFloatLiteral(n *ast.FloatLiteral) {
	p.open("float_literal_expression")
	p.line("type = %q", n.Type().String())
	p.line("value = %g", n.Value)
	p.close()
}

func (p *Printer) VisitCall(n *ast.Call) {
	p.open("call_expression")
	p.line("type = %q", n.Type().String())
	p.declRef("decl", n.Decl.Name)
	p.line("arguments = [")
	p.indent += indentSize
	if len(n.Args) == 0 {
		p.line("<none>")
	}
	for _, a := range n.Args {
		a.Accept(p)
	}
	p.indent -= indentSize
	p.line("]")
	p.close()
}

func (p *Printer) VisitBinary(n *ast.Binary) {
	p.open("binary_expression")
	p.line("type = %q", n.Type().String())
	p.line("operation = %q", n.Op.String())
	p.line("lhs =")
	p.indent += indentSize
	n.Lhs.Accept(p)
	p.indent -= indentSize
	p.line("rhs =")
	p.indent += indentSize
	n.Rhs.Accept(p)
	p.indent -= indentSize
	p.close()
}

func (p *Printer) VisitCast(n *ast.Cast) {
	p.open("cast_expression")
	p.line("type = %q", n.Type().String())
	p.line("expr =")
	p.indent += indentSize
	n.Inner.Accept(p)
	p.indent -= indentSize
	p.close()
}
