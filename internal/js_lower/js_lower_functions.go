package js_lower

import "github.com/tslower/tslower/internal/js_ast"

// Returns the body of an arrow function as a block:
//
//	"() => x" => "() => { return x; }"
//
// A body that is already a block is returned as-is.
func (c *Converters) ToFunctionBlock(body js_ast.ConciseBody, multiLine bool) js_ast.Stmt {
	if body.BlockOrNil.Data != nil {
		if !js_ast.IsBlock(body.BlockOrNil) {
			panic("Internal error: expected a block")
		}
		return body.BlockOrNil
	}
	if body.ExprOrNil.Data == nil {
		panic("Internal error: function has no body")
	}

	ret := c.f.NewReturn(body.ExprOrNil)
	c.f.Table.SetTextRange(ret.Index, body.ExprOrNil.Index)
	block := c.f.NewBlock([]js_ast.Stmt{ret}, multiLine)
	c.f.Table.SetTextRange(block.Index, body.ExprOrNil.Index)
	return block
}

// Converts "function f() {}" from a declaration to an expression
func (c *Converters) ToFunctionExpression(decl js_ast.Stmt) js_ast.Expr {
	s, ok := decl.Data.(*js_ast.SFunction)
	if !ok {
		panic("Internal error: expected a function declaration")
	}
	if s.Fn.BodyOrNil.Data == nil {
		panic("Internal error: function declaration has no body")
	}

	expr := c.f.NewFunction(js_ast.Fn{
		Modifiers:         s.Fn.Modifiers,
		IsGenerator:       s.Fn.IsGenerator,
		NameOrNil:         s.Fn.NameOrNil,
		TSTypeParameters:  s.Fn.TSTypeParameters,
		Args:              s.Fn.Args,
		TSReturnTypeOrNil: s.Fn.TSReturnTypeOrNil,
		BodyOrNil:         s.Fn.BodyOrNil,
	})
	c.link(expr.Index, decl.Index)
	if c.f.Table.StartsOnNewLine(decl.Index) {
		c.StartOnNewLine(expr.Index)
	}
	return expr
}
