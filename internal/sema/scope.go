/*
File    : seagull/internal/sema/scope.go
*/
package sema

import "github.com/akashmaji946/seagull/internal/ast"

// scope is one lexical scope: an ordered list of the variables declared
// directly in it. Adapted from the teacher's scope.Scope (scope/scope.go),
// but flattened to match §4.3: this dialect pushes a scope only on
// function entry and pops it on exit, never for a nested compound
// statement, so there is no parent-chain traversal to perform inside a
// single scope object — the chain lives in Sema.variables instead.
type scope struct {
	vars []*ast.VariableDecl
}

// declares reports whether name is already bound directly in this
// scope (not any enclosing one). Used to detect duplicate variable and
// duplicate parameter declarations (§4.3).
func (s *scope) declares(name string) bool {
	for _, v := range s.vars {
		if v.Name == name {
			return true
		}
	}
	return false
}

func (s *scope) bind(decl *ast.VariableDecl) {
	s.vars = append(s.vars, decl)
}
