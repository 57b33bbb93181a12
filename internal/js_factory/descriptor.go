package js_factory

import "github.com/tslower/tslower/internal/js_ast"

// The attributes of a property descriptor. Anything left unset is omitted from
// the descriptor object.
type PropertyDescriptor struct {
	Enumerable   *bool
	Configurable *bool
	Writable     *bool
	ValueOrNil   js_ast.Expr
	GetOrNil     js_ast.Expr
	SetOrNil     js_ast.Expr
}

// Builds the descriptor object literal. Its properties are in the order
// "enumerable", "configurable", "writable", "value", "get", "set".
func (f *Factory) NewPropertyDescriptor(descriptor PropertyDescriptor, multiLine bool) js_ast.Expr {
	isData := descriptor.Writable != nil || descriptor.ValueOrNil.Data != nil
	isAccessor := descriptor.GetOrNil.Data != nil || descriptor.SetOrNil.Data != nil
	if isData && isAccessor {
		panic("Internal error: a property descriptor may not be both an accessor descriptor and a data descriptor")
	}

	var properties []js_ast.Property
	addBoolean := func(name string, value *bool) {
		if value != nil {
			properties = append(properties, f.NewProperty(f.NewIdentifier(name), f.NewBoolean(*value)))
		}
	}
	addExpr := func(name string, value js_ast.Expr) {
		if value.Data != nil {
			properties = append(properties, f.NewProperty(f.NewIdentifier(name), value))
		}
	}

	addBoolean("enumerable", descriptor.Enumerable)
	addBoolean("configurable", descriptor.Configurable)
	addBoolean("writable", descriptor.Writable)
	addExpr("value", descriptor.ValueOrNil)
	addExpr("get", descriptor.GetOrNil)
	addExpr("set", descriptor.SetOrNil)

	return f.NewObject(properties, !multiLine)
}

// Object.defineProperty(target, key, descriptor)
func (f *Factory) NewObjectDefinePropertyCall(target js_ast.Expr, key js_ast.Expr, descriptor js_ast.Expr) js_ast.Expr {
	return f.NewCall(f.NewDot(f.NewIdentifier("Object"), "defineProperty"), []js_ast.Expr{target, key, descriptor})
}
