package js_lower

import "github.com/tslower/tslower/internal/js_ast"

// Converts the target of an element to an expression. Declarative patterns are
// lowered. Anything else must already be an expression and is returned as-is.
func (c *Converters) ToAssignmentTarget(target js_ast.Target) js_ast.Expr {
	if js_ast.IsBindingPattern(target) {
		return c.ToAssignmentPattern(target)
	}
	if expr, ok := js_ast.TargetToExpr(target); ok && expr.Data != nil {
		return expr
	}
	panic("Internal error: expected an assignment target")
}

func (c *Converters) identifierTarget(element js_ast.BindingElement) js_ast.Expr {
	if !js_ast.IsIdentifier(element.Target) {
		panic("Internal error: rest element must bind an identifier")
	}
	expr, _ := js_ast.BindingToExpr(element.Target)
	return expr
}

// Wraps "target" with the default value of "element", if it has one
func (c *Converters) withDefault(target js_ast.Expr, element js_ast.BindingElement) js_ast.Expr {
	if element.DefaultValueOrNil.Data == nil {
		return target
	}
	assign := c.f.NewAssign(target, element.DefaultValueOrNil)
	c.link(assign.Index, element.Index)
	return assign
}

// Converts an element of an array pattern:
//
//	"a = 1" => "a = 1"
//	"...a" => "...a"
//	"[a, b] = []" => "[a, b] = []"
func (c *Converters) ToArrayElement(element js_ast.Element) js_ast.Expr {
	switch KindOfElement(element) {
	case ElementDeclaration:
		item := element.(js_ast.BindingElement)
		if item.IsRest {
			spread := c.f.NewSpread(c.clone(c.identifierTarget(item)))
			c.link(spread.Index, item.Index)
			return spread
		}
		return c.withDefault(c.ToAssignmentTarget(item.Target), item)

	case ElementAssignmentTarget, ElementSpread:
		return element.(js_ast.Expr)
	}

	panic("Internal error: expected an array element")
}

// Converts an element of an object pattern:
//
//	"a" => "a"
//	"a = 1" => "a = 1"
//	"a: {b}" => "a: {b}"
//	"a: b = 1" => "a: b = 1"
//	"...a" => "...a"
func (c *Converters) ToObjectElement(element js_ast.Element) js_ast.Property {
	switch e := element.(type) {
	case js_ast.BindingElement:
		var property js_ast.Property
		switch {
		case e.IsRest:
			property = c.f.NewSpreadProperty(c.identifierTarget(e))

		case e.KeyOrNil.Data != nil:
			property = c.f.NewProperty(e.KeyOrNil, c.withDefault(c.ToAssignmentTarget(e.Target), e))

		default:
			if !js_ast.IsIdentifier(e.Target) {
				panic("Internal error: shorthand property must bind an identifier")
			}
			name, _ := js_ast.BindingToExpr(e.Target)
			property = c.f.NewShorthandProperty(name, e.DefaultValueOrNil)
		}
		c.link(property.Index, e.Index)
		return property

	case js_ast.Property:
		return e
	}

	panic("Internal error: expected an object element")
}

// Converts "[a, b = 1, ...c]" from a binding pattern to an array literal. An
// array literal is returned as-is.
func (c *Converters) ToArrayPattern(pattern js_ast.Target) js_ast.Expr {
	switch p := pattern.(type) {
	case js_ast.Binding:
		if b, ok := p.Data.(*js_ast.BArray); ok {
			c.enterPattern()
			defer c.leavePattern()

			items := make([]js_ast.Expr, len(b.Items))
			for i, item := range b.Items {
				items[i] = c.ToArrayElement(item)
			}
			array := c.f.NewArray(items, b.IsSingleLine)
			c.link(array.Index, p.Index)
			return array
		}

	case js_ast.Expr:
		if _, ok := p.Data.(*js_ast.EArray); ok {
			return p
		}
	}

	panic("Internal error: expected an array pattern")
}

// Converts "{a, b: c = 2, ...rest}" from a binding pattern to an object
// literal. An object literal is returned as-is.
func (c *Converters) ToObjectPattern(pattern js_ast.Target) js_ast.Expr {
	switch p := pattern.(type) {
	case js_ast.Binding:
		if b, ok := p.Data.(*js_ast.BObject); ok {
			c.enterPattern()
			defer c.leavePattern()

			properties := make([]js_ast.Property, len(b.Properties))
			for i, property := range b.Properties {
				properties[i] = c.ToObjectElement(property)
			}
			object := c.f.NewObject(properties, b.IsSingleLine)
			c.link(object.Index, p.Index)
			return object
		}

	case js_ast.Expr:
		if _, ok := p.Data.(*js_ast.EObject); ok {
			return p
		}
	}

	panic("Internal error: expected an object pattern")
}

func (c *Converters) ToAssignmentPattern(pattern js_ast.Target) js_ast.Expr {
	var data interface{}
	switch p := pattern.(type) {
	case js_ast.Binding:
		data = p.Data
	case js_ast.Expr:
		data = p.Data
	}

	switch data.(type) {
	case *js_ast.BArray, *js_ast.EArray:
		return c.ToArrayPattern(pattern)

	case *js_ast.BObject, *js_ast.EObject:
		return c.ToObjectPattern(pattern)
	}

	panic("Internal error: expected an array or object pattern")
}
