package js_lower

import (
	"fmt"

	"github.com/tslower/tslower/internal/js_ast"
	"github.com/tslower/tslower/internal/js_factory"
)

// The accessors of an object literal that share a key. Getters and setters
// with the same key are defined together, so only the first of them in source
// order produces any code.
type AccessorDeclarations struct {
	FirstAccessor *js_ast.Property
	Getter        *js_ast.Property
	Setter        *js_ast.Property
}

// Finds the accessors among "properties" with the same key as "accessor". An
// accessor with a key that only has a value at run-time can't be paired.
func AllAccessorDeclarations(properties []js_ast.Property, accessor js_ast.Property) (result AccessorDeclarations) {
	if !accessor.Kind.IsAccessor() {
		panic("Internal error: expected an accessor")
	}

	keyText, ok := js_ast.PropertyKeyText(accessor.Key)
	if !ok {
		result.FirstAccessor = &accessor
		if accessor.Kind == js_ast.PropertyGet {
			result.Getter = &accessor
		} else {
			result.Setter = &accessor
		}
		return
	}

	for i := range properties {
		member := &properties[i]
		if !member.Kind.IsAccessor() {
			continue
		}
		if text, ok := js_ast.PropertyKeyText(member.Key); !ok || text != keyText {
			continue
		}
		if result.FirstAccessor == nil {
			result.FirstAccessor = member
		}
		if member.Kind == js_ast.PropertyGet && result.Getter == nil {
			result.Getter = member
		}
		if member.Kind == js_ast.PropertySet && result.Setter == nil {
			result.Setter = member
		}
	}

	if result.FirstAccessor == nil {
		panic("Internal error: accessor is not a member of the object literal")
	}
	return
}

// Returns an expression for reading the property "key" of "target":
//
//	"a" => "target.a"
//	"'a'" => "target['a']"
//	"[a]" => "target[a]"
func (c *Converters) MemberAccessForPropertyName(target js_ast.Expr, key js_ast.Expr) js_ast.Expr {
	var access js_ast.Expr
	switch k := key.Data.(type) {
	case *js_ast.EComputedKey:
		access = c.f.NewIndex(target, k.Value)
	case *js_ast.EIdentifier:
		access = c.f.NewDot(target, k.Name)
	case *js_ast.EString, *js_ast.ENumber:
		access = c.f.NewIndex(target, key)
	default:
		panic("Internal error: invalid property key")
	}
	c.link(access.Index, key.Index)
	c.f.Table.AddEmitFlags(access.Index, js_ast.EmitFlagNoNestedSourceMaps)
	return access
}

// Returns an expression that evaluates to the name of a property key:
//
//	"a" => "'a'"
//	"'a'" => "'a'"
//	"[a]" => "a"
func (c *Converters) ExprForPropertyName(key js_ast.Expr) js_ast.Expr {
	switch k := key.Data.(type) {
	case *js_ast.EIdentifier:
		str := c.f.NewString(k.Name)
		c.link(str.Index, key.Index)
		return str

	case *js_ast.EComputedKey:
		return c.clone(k.Value)

	case *js_ast.EString, *js_ast.ENumber:
		return c.clone(key)
	}

	panic("Internal error: invalid property key")
}

// Converts the name of a type or namespace to the property accesses that read
// it at run-time. Anything that isn't a qualified name is copied.
//
//	"A.B.C" => "A.B.C"
func (c *Converters) ExprForEntityName(name js_ast.Expr) js_ast.Expr {
	q, ok := name.Data.(*js_ast.ETSQualifiedName)
	if !ok {
		return c.clone(name)
	}
	right, ok := q.Right.Data.(*js_ast.EIdentifier)
	if !ok {
		panic("Internal error: qualified name must end in an identifier")
	}
	dot := c.f.NewDot(c.ExprForEntityName(q.Left), right.Name)
	c.link(dot.Index, name.Index)
	return dot
}

// Returns an anonymous function expression with the parameters and body of a
// getter, setter, or method
func (c *Converters) functionForProperty(property js_ast.Property) js_ast.Expr {
	fn, ok := property.ValueOrNil.Data.(*js_ast.EFunction)
	if !ok {
		panic("Internal error: expected a function")
	}
	if fn.Fn.BodyOrNil.Data == nil {
		panic("Internal error: object literal member has no body")
	}
	expr := c.f.NewFunction(js_ast.Fn{
		Modifiers:   fn.Fn.Modifiers,
		IsGenerator: fn.Fn.IsGenerator && property.Kind == js_ast.PropertyMethod,
		Args:        fn.Fn.Args,
		BodyOrNil:   fn.Fn.BodyOrNil,
	})
	c.link(expr.Index, property.Index)
	return expr
}

func (c *Converters) exprForAccessor(properties []js_ast.Property, accessor js_ast.Property, receiver js_ast.Expr, isMultiLine bool) (js_ast.Expr, bool) {
	accessors := AllAccessorDeclarations(properties, accessor)
	first := *accessors.FirstAccessor

	if first.Index != accessor.Index {
		keyText, _ := js_ast.PropertyKeyText(accessor.Key)
		c.addDebug(accessor.Index, fmt.Sprintf("Folded %s accessor for %q into the definition for the earlier %s accessor",
			accessorKindText(accessor.Kind), keyText, accessorKindText(first.Kind)))
		return js_ast.Expr{}, false
	}

	enabled := true
	descriptor := js_factory.PropertyDescriptor{
		Enumerable:   &enabled,
		Configurable: &enabled,
	}
	if accessors.Getter != nil {
		descriptor.GetOrNil = c.functionForProperty(*accessors.Getter)
	}
	if accessors.Setter != nil {
		descriptor.SetOrNil = c.functionForProperty(*accessors.Setter)
	}

	descriptorObject := c.f.NewPropertyDescriptor(descriptor, isMultiLine)
	c.link(descriptorObject.Index, first.Index)
	for _, property := range descriptorObject.Data.(*js_ast.EObject).Properties {
		// "get" and "set" stand in for their own accessor
		anchor := first
		if name, ok := property.Key.Data.(*js_ast.EIdentifier); ok {
			if name.Name == "get" && accessors.Getter != nil {
				anchor = *accessors.Getter
			} else if name.Name == "set" && accessors.Setter != nil {
				anchor = *accessors.Setter
			}
		}
		c.link(property.Index, anchor.Index)
		c.link(property.Key.Index, anchor.Index)
		if _, ok := property.ValueOrNil.Data.(*js_ast.EBoolean); ok {
			c.link(property.ValueOrNil.Index, anchor.Index)
		}
	}

	call := c.f.NewObjectDefinePropertyCall(receiver, c.ExprForPropertyName(first.Key), descriptorObject)
	c.link(call.Index, first.Index)
	callee := call.Data.(*js_ast.ECall).Target
	c.link(callee.Index, first.Index)
	c.link(callee.Data.(*js_ast.EDot).Target.Index, first.Index)
	return call, true
}

func accessorKindText(kind js_ast.PropertyKind) string {
	if kind == js_ast.PropertyGet {
		return "get"
	}
	return "set"
}

// Returns an expression that defines "property" on "receiver". The second
// result is false when there is nothing to emit for this member because it's
// the second accessor of a pair, which the first accessor already defined.
//
//	"a: 1" => "receiver.a = 1"
//	"a" => "receiver.a = a"
//	"a() {}" => "receiver.a = function() {}"
//	"get a() {}" => "Object.defineProperty(receiver, 'a', { ... })"
func (c *Converters) ExprForObjectLiteralMember(properties []js_ast.Property, property js_ast.Property, receiver js_ast.Expr, isMultiLine bool) (js_ast.Expr, bool) {
	var value js_ast.Expr

	switch property.Kind {
	case js_ast.PropertyGet, js_ast.PropertySet:
		return c.exprForAccessor(properties, property, receiver, isMultiLine)

	case js_ast.PropertyNormal:
		if property.ValueOrNil.Data == nil {
			panic("Internal error: property has no value")
		}
		value = property.ValueOrNil

	case js_ast.PropertyShorthand:
		value = c.clone(property.Key)

	case js_ast.PropertyMethod:
		value = c.functionForProperty(property)

	default:
		panic("Internal error: unexpected object literal member")
	}

	assign := c.f.NewAssign(c.MemberAccessForPropertyName(receiver, property.Key), value)
	c.link(assign.Index, property.Index)
	return assign, true
}

// Returns one expression per member of "object" that defines that member on
// "receiver", skipping members with nothing to emit
func (c *Converters) AssignmentsForObjectLiteral(object js_ast.Expr, receiver js_ast.Expr) []js_ast.Expr {
	e, ok := object.Data.(*js_ast.EObject)
	if !ok {
		panic("Internal error: expected an object literal")
	}

	exprs := make([]js_ast.Expr, 0, len(e.Properties))
	for _, property := range e.Properties {
		if expr, ok := c.ExprForObjectLiteralMember(e.Properties, property, receiver, !e.IsSingleLine); ok {
			exprs = append(exprs, expr)
		}
	}
	return exprs
}
