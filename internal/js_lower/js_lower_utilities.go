package js_lower

import (
	"github.com/tslower/tslower/internal/ast"
	"github.com/tslower/tslower/internal/helpers"
	"github.com/tslower/tslower/internal/js_ast"
)

func (c *Converters) StartOnNewLine(node ast.Index32) {
	c.f.Table.AddEmitFlags(node, js_ast.EmitFlagStartsOnNewLine)
}

// Whether an identifier should only be referred to by its internal name
func (c *Converters) IsInternalName(ident js_ast.Expr) bool {
	return c.f.Table.EmitFlags(ident.Index).Has(js_ast.EmitFlagInternalName)
}

// Whether an identifier should only be referred to by its local name
func (c *Converters) IsLocalName(ident js_ast.Expr) bool {
	return c.f.Table.EmitFlags(ident.Index).Has(js_ast.EmitFlagLocalName)
}

// Whether an identifier should only be referred to by its export name if it
// names an exported symbol
func (c *Converters) IsExportName(ident js_ast.Expr) bool {
	return c.f.Table.EmitFlags(ident.Index).Has(js_ast.EmitFlagExportName)
}

func isUseStrictDirective(stmt js_ast.Stmt) bool {
	directive, ok := stmt.Data.(*js_ast.SDirective)
	return ok && helpers.UTF16EqualsString(directive.Value, "use strict")
}

// Looks for "use strict" in the directive prologue at the start of "stmts"
func FindUseStrictPrologue(stmts []js_ast.Stmt) (js_ast.Stmt, bool) {
	for _, stmt := range stmts {
		if _, ok := stmt.Data.(*js_ast.SDirective); !ok {
			break
		}
		if isUseStrictDirective(stmt) {
			return stmt, true
		}
	}
	return js_ast.Stmt{}, false
}

func StartsWithUseStrict(stmts []js_ast.Stmt) bool {
	return len(stmts) > 0 && isUseStrictDirective(stmts[0])
}

func IsCommaSequence(expr js_ast.Expr) bool {
	binary, ok := expr.Data.(*js_ast.EBinary)
	return ok && binary.Op == js_ast.BinOpComma
}

type OuterExpressionKinds uint8

const (
	OuterExpressionsParentheses OuterExpressionKinds = 1 << iota

	// "a as T", "<T>a", and "a!"
	OuterExpressionsAssertions

	OuterExpressionsAll = OuterExpressionsParentheses | OuterExpressionsAssertions
)

// Removes the selected kinds of wrappers around an expression
func SkipOuterExpressions(expr js_ast.Expr, kinds OuterExpressionKinds) js_ast.Expr {
	for {
		switch e := expr.Data.(type) {
		case *js_ast.EParen:
			if (kinds & OuterExpressionsParentheses) != 0 {
				expr = e.Value
				continue
			}

		case *js_ast.ETSAssertion:
			if (kinds & OuterExpressionsAssertions) != 0 {
				expr = e.Value
				continue
			}

		case *js_ast.ETSNonNull:
			if (kinds & OuterExpressionsAssertions) != 0 {
				expr = e.Value
				continue
			}
		}
		return expr
	}
}

func SkipAssertions(expr js_ast.Expr) js_ast.Expr {
	return SkipOuterExpressions(expr, OuterExpressionsAssertions)
}

// Turns the initializer of a for-of loop into a statement that binds the
// current value:
//
//	"for (let [a, b] of c)" => "let [a, b] = boundValue;"
//	"for (x.y of c)" => "x.y = boundValue;"
func (c *Converters) ForOfBindingStatement(init js_ast.Stmt, boundValue js_ast.Expr) js_ast.Stmt {
	switch s := init.Data.(type) {
	case *js_ast.SLocal:
		if len(s.Decls) == 0 {
			panic("Internal error: variable declaration list is empty")
		}
		first := s.Decls[0]
		decl := c.f.NewDecl(first.Binding, boundValue)
		c.link(decl.Index, first.Index)
		local := c.f.NewLocal(s.Kind, []js_ast.Decl{decl})
		c.f.Table.SetTextRange(local.Index, init.Index)
		return local

	case *js_ast.SExpr:
		assign := c.f.NewAssign(s.Value, boundValue)
		c.f.Table.SetTextRange(assign.Index, s.Value.Index)
		stmt := c.f.NewExprStmt(assign)
		c.f.Table.SetTextRange(stmt.Index, s.Value.Index)
		return stmt
	}

	panic("Internal error: expected a for-of initializer")
}

// Returns "dest" with "source" in front of it when "dest" is a block, which
// gets a new statement list. Anything else is wrapped in a new block that
// holds "dest" followed by "source".
func (c *Converters) InsertLeadingStatement(dest js_ast.Stmt, source js_ast.Stmt) js_ast.Stmt {
	if block, ok := dest.Data.(*js_ast.SBlock); ok {
		stmts := make([]js_ast.Stmt, 0, len(block.Stmts)+1)
		stmts = append(stmts, source)
		stmts = append(stmts, block.Stmts...)
		result := c.f.NewBlock(stmts, !block.IsSingleLine)
		c.link(result.Index, dest.Index)
		return result
	}
	return c.f.NewBlock([]js_ast.Stmt{dest, source}, true)
}
