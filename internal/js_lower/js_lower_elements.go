package js_lower

import "github.com/tslower/tslower/internal/js_ast"

type ElementKind uint8

const (
	// A "BindingElement" from a declaration or a parameter list
	ElementDeclaration ElementKind = iota

	// An expression that is already a valid assignment target, possibly with a
	// default value: "a", "a.b", "a[0]", "[a]", "{a}", "a = 1"
	ElementAssignmentTarget

	// "...a" inside an array literal
	ElementSpread

	// A member of an object literal: "a: b", "a = 1", or "...a"
	ElementObjectMember
)

func (kind ElementKind) String() string {
	switch kind {
	case ElementDeclaration:
		return "declaration"
	case ElementAssignmentTarget:
		return "assignment target"
	case ElementSpread:
		return "spread"
	case ElementObjectMember:
		return "object member"
	default:
		panic("Internal error")
	}
}

func KindOfElement(element js_ast.Element) ElementKind {
	switch e := element.(type) {
	case js_ast.BindingElement:
		return ElementDeclaration

	case js_ast.Expr:
		switch e.Data.(type) {
		case nil:
		case *js_ast.ESpread:
			return ElementSpread
		default:
			return ElementAssignmentTarget
		}

	case js_ast.Property:
		switch e.Kind {
		case js_ast.PropertyNormal, js_ast.PropertyShorthand, js_ast.PropertySpread:
			return ElementObjectMember
		}
	}

	panic("Internal error: unexpected destructuring element")
}

// Returns the name or nested pattern that an element binds:
//
//	"a" in "let [a = 1] = x"
//	"{b}" in "let {a: {b}} = x"
//	"b.c" in "({a: b.c = 1} = x)"
//	"a" in "[...a] = x"
func TargetOfElement(element js_ast.Element) js_ast.Target {
	switch KindOfElement(element) {
	case ElementDeclaration:
		return element.(js_ast.BindingElement).Target

	case ElementObjectMember:
		property := element.(js_ast.Property)
		if property.Kind == js_ast.PropertyShorthand {
			return property.Key
		}
		return TargetOfElement(property.ValueOrNil)

	case ElementSpread:
		return TargetOfElement(element.(js_ast.Expr).Data.(*js_ast.ESpread).Value)

	default:
		expr := element.(js_ast.Expr)
		if binary, ok := expr.Data.(*js_ast.EBinary); ok && binary.Op == js_ast.BinOpAssign {
			return TargetOfElement(binary.Left)
		}
		return expr
	}
}

// Returns the value used when the incoming value is undefined, or a nil
// expression if there isn't one:
//
//	"1" in "let [a = 1] = x"
//	"1" in "({a: b = 1} = x)"
//	"1" in "({a = 1} = x)"
//	"1" in "[a = 1] = x"
//
// Spread and rest elements never have one.
func DefaultValueOfElement(element js_ast.Element) js_ast.Expr {
	switch KindOfElement(element) {
	case ElementDeclaration:
		return element.(js_ast.BindingElement).DefaultValueOrNil

	case ElementObjectMember:
		property := element.(js_ast.Property)
		switch property.Kind {
		case js_ast.PropertyShorthand:
			return property.InitializerOrNil
		case js_ast.PropertyNormal:
			if binary, ok := property.ValueOrNil.Data.(*js_ast.EBinary); ok && binary.Op == js_ast.BinOpAssign {
				return binary.Right
			}
		}

	case ElementAssignmentTarget:
		if binary, ok := element.(js_ast.Expr).Data.(*js_ast.EBinary); ok && binary.Op == js_ast.BinOpAssign {
			return binary.Right
		}
	}

	return js_ast.Expr{}
}

func IsRestElement(element js_ast.Element) bool {
	switch KindOfElement(element) {
	case ElementDeclaration:
		return element.(js_ast.BindingElement).IsRest

	case ElementSpread:
		return true

	case ElementObjectMember:
		return element.(js_ast.Property).Kind == js_ast.PropertySpread
	}

	return false
}

// Returns the key an element of an object pattern reads from:
//
//	"a" in "let {a: b} = x"
//	"a" in "let {a} = x"
//	"a" in "let {["a"]: b} = x"
//	"[k]" in "let {[k]: b} = x"
//
// Computed keys holding a string or number literal are unwrapped.
func PropertyKeyOfElement(element js_ast.Element) js_ast.Expr {
	switch KindOfElement(element) {
	case ElementDeclaration:
		if key := element.(js_ast.BindingElement).KeyOrNil; key.Data != nil {
			return unwrapLiteralComputedKey(key)
		}

	case ElementObjectMember:
		if property := element.(js_ast.Property); property.Kind == js_ast.PropertyNormal {
			return unwrapLiteralComputedKey(property.Key)
		}
	}

	if expr, ok := js_ast.TargetToExpr(TargetOfElement(element)); ok && js_ast.IsPropertyName(expr) {
		return unwrapLiteralComputedKey(expr)
	}

	panic("Internal error: invalid property name for destructuring element")
}

func unwrapLiteralComputedKey(key js_ast.Expr) js_ast.Expr {
	if computed, ok := key.Data.(*js_ast.EComputedKey); ok && js_ast.IsStringOrNumericLiteral(computed.Value) {
		return computed.Value
	}
	return key
}

// Returns the elements of an array or object pattern in either its declarative
// or its assignment form
func ElementsOfPattern(pattern js_ast.Target) []js_ast.Element {
	var elements []js_ast.Element

	switch p := pattern.(type) {
	case js_ast.Binding:
		switch b := p.Data.(type) {
		case *js_ast.BArray:
			elements = make([]js_ast.Element, len(b.Items))
			for i, item := range b.Items {
				elements[i] = item
			}
			return elements

		case *js_ast.BObject:
			elements = make([]js_ast.Element, len(b.Properties))
			for i, property := range b.Properties {
				elements[i] = property
			}
			return elements
		}

	case js_ast.Expr:
		switch e := p.Data.(type) {
		case *js_ast.EArray:
			elements = make([]js_ast.Element, len(e.Items))
			for i, item := range e.Items {
				elements[i] = item
			}
			return elements

		case *js_ast.EObject:
			elements = make([]js_ast.Element, len(e.Properties))
			for i, property := range e.Properties {
				elements[i] = property
			}
			return elements
		}
	}

	panic("Internal error: expected an array or object pattern")
}
