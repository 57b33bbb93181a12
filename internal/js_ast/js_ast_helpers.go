package js_ast

import "github.com/tslower/tslower/internal/helpers"

func IsBlock(stmt Stmt) bool {
	_, ok := stmt.Data.(*SBlock)
	return ok
}

// Returns true for a declarative array or object pattern
func IsBindingPattern(target Target) bool {
	if binding, ok := target.(Binding); ok {
		switch binding.Data.(type) {
		case *BArray, *BObject:
			return true
		}
	}
	return false
}

func IsArrayLiteral(target Target) bool {
	if expr, ok := target.(Expr); ok {
		_, ok := expr.Data.(*EArray)
		return ok
	}
	return false
}

func IsObjectLiteral(target Target) bool {
	if expr, ok := target.(Expr); ok {
		_, ok := expr.Data.(*EObject)
		return ok
	}
	return false
}

// Identifiers are shared between bindings and expressions, so this is true for
// both forms
func IsIdentifier(target Target) bool {
	switch t := target.(type) {
	case Binding:
		_, ok := t.Data.(*EIdentifier)
		return ok
	case Expr:
		_, ok := t.Data.(*EIdentifier)
		return ok
	}
	return false
}

func IsSpread(expr Expr) bool {
	_, ok := expr.Data.(*ESpread)
	return ok
}

func IsComputedPropertyName(expr Expr) bool {
	_, ok := expr.Data.(*EComputedKey)
	return ok
}

func IsStringOrNumericLiteral(expr Expr) bool {
	switch expr.Data.(type) {
	case *EString, *ENumber:
		return true
	}
	return false
}

func IsAssignment(expr Expr) bool {
	binary, ok := expr.Data.(*EBinary)
	return ok && binary.Op == BinOpAssign
}

// Returns true for anything that can appear as the key of a property
func IsPropertyName(target Target) bool {
	if expr, ok := target.(Expr); ok {
		switch expr.Data.(type) {
		case *EIdentifier, *EString, *ENumber, *EComputedKey:
			return true
		}
		return false
	}
	if binding, ok := target.(Binding); ok {
		_, ok := binding.Data.(*EIdentifier)
		return ok
	}
	return false
}

// Returns the expression form of a binding whose data is shared with
// expressions. Patterns have no expression form without lowering.
func BindingToExpr(binding Binding) (Expr, bool) {
	if e, ok := binding.Data.(E); ok {
		return Expr{Data: e, Index: binding.Index}, true
	}
	return Expr{}, false
}

// Returns the expression form of a target, if it has one without lowering
func TargetToExpr(target Target) (Expr, bool) {
	switch t := target.(type) {
	case Expr:
		return t, true
	case Binding:
		return BindingToExpr(t)
	}
	return Expr{}, false
}

func Assign(a Expr, b Expr) *EBinary {
	return &EBinary{Op: BinOpAssign, Left: a, Right: b}
}

// Returns the text of a property key that can be compared statically. Keys
// with the same text refer to the same property:
//
//	{ a: 1, "a": 2, ["a"]: 3 }
//	{ 1: 1, "1": 2, [1]: 3 }
//
// A computed key that isn't a literal only has a value at run-time.
func PropertyKeyText(key Expr) (string, bool) {
	switch k := key.Data.(type) {
	case *EIdentifier:
		return k.Name, true

	case *EString:
		return helpers.UTF16ToString(k.Value), true

	case *ENumber:
		return helpers.FloatToString(k.Value), true

	case *EComputedKey:
		if IsStringOrNumericLiteral(k.Value) {
			return PropertyKeyText(k.Value)
		}
	}
	return "", false
}
