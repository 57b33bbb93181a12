package js_factory

// The factory is the only place that creates nodes. Every node it returns has a
// fresh slot in the tree's node table, so metadata can be attached to it right
// after construction. Nodes are never mutated once they've been handed out.

import (
	"github.com/tslower/tslower/internal/helpers"
	"github.com/tslower/tslower/internal/js_ast"
)

type Factory struct {
	Table *js_ast.NodeTable
}

func New(table *js_ast.NodeTable) *Factory {
	return &Factory{Table: table}
}

func (f *Factory) Expr(data js_ast.E) js_ast.Expr {
	return js_ast.Expr{Data: data, Index: f.Table.Alloc()}
}

func (f *Factory) Binding(data js_ast.B) js_ast.Binding {
	return js_ast.Binding{Data: data, Index: f.Table.Alloc()}
}

func (f *Factory) Stmt(data js_ast.S) js_ast.Stmt {
	return js_ast.Stmt{Data: data, Index: f.Table.Alloc()}
}

func (f *Factory) NewIdentifier(name string) js_ast.Expr {
	return f.Expr(&js_ast.EIdentifier{Name: name})
}

func (f *Factory) NewString(text string) js_ast.Expr {
	return f.Expr(&js_ast.EString{Value: helpers.StringToUTF16(text)})
}

func (f *Factory) NewNumber(value float64) js_ast.Expr {
	return f.Expr(&js_ast.ENumber{Value: value})
}

func (f *Factory) NewBoolean(value bool) js_ast.Expr {
	return f.Expr(&js_ast.EBoolean{Value: value})
}

func (f *Factory) NewMissing() js_ast.Expr {
	return f.Expr(&js_ast.EMissing{})
}

func (f *Factory) NewArray(items []js_ast.Expr, isSingleLine bool) js_ast.Expr {
	return f.Expr(&js_ast.EArray{Items: items, IsSingleLine: isSingleLine})
}

func (f *Factory) NewObject(properties []js_ast.Property, isSingleLine bool) js_ast.Expr {
	return f.Expr(&js_ast.EObject{Properties: properties, IsSingleLine: isSingleLine})
}

func (f *Factory) NewSpread(value js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.ESpread{Value: value})
}

func (f *Factory) NewAssign(target js_ast.Expr, value js_ast.Expr) js_ast.Expr {
	return f.Expr(js_ast.Assign(target, value))
}

func (f *Factory) NewComma(left js_ast.Expr, right js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.EBinary{Op: js_ast.BinOpComma, Left: left, Right: right})
}

func (f *Factory) NewCall(target js_ast.Expr, args []js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.ECall{Target: target, Args: args})
}

func (f *Factory) NewDot(target js_ast.Expr, name string) js_ast.Expr {
	return f.Expr(&js_ast.EDot{Target: target, Name: name})
}

func (f *Factory) NewIndex(target js_ast.Expr, index js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.EIndex{Target: target, Index: index})
}

func (f *Factory) NewFunction(fn js_ast.Fn) js_ast.Expr {
	return f.Expr(&js_ast.EFunction{Fn: fn})
}

func (f *Factory) NewArrow(args []js_ast.BindingElement, body js_ast.ConciseBody, isAsync bool) js_ast.Expr {
	return f.Expr(&js_ast.EArrow{Args: args, Body: body, IsAsync: isAsync})
}

func (f *Factory) NewComputedKey(value js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.EComputedKey{Value: value})
}

func (f *Factory) NewParen(value js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.EParen{Value: value})
}

func (f *Factory) NewTSAssertion(value js_ast.Expr, typ js_ast.TSType) js_ast.Expr {
	return f.Expr(&js_ast.ETSAssertion{Value: value, Type: typ})
}

func (f *Factory) NewTSNonNull(value js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.ETSNonNull{Value: value})
}

func (f *Factory) NewTSQualifiedName(left js_ast.Expr, right js_ast.Expr) js_ast.Expr {
	return f.Expr(&js_ast.ETSQualifiedName{Left: left, Right: right})
}

func (f *Factory) NewThis() js_ast.Expr {
	return f.Expr(&js_ast.EThis{})
}

// Returns a shallow copy of "expr" in a new slot. The copy has no metadata and
// shares its children with the original.
func (f *Factory) Clone(expr js_ast.Expr) js_ast.Expr {
	var data js_ast.E

	switch e := expr.Data.(type) {
	case *js_ast.EArray:
		clone := *e
		data = &clone
	case *js_ast.EObject:
		clone := *e
		data = &clone
	case *js_ast.ESpread:
		clone := *e
		data = &clone
	case *js_ast.EBinary:
		clone := *e
		data = &clone
	case *js_ast.EIdentifier:
		clone := *e
		data = &clone
	case *js_ast.EMissing:
		data = &js_ast.EMissing{}
	case *js_ast.EString:
		clone := *e
		data = &clone
	case *js_ast.ENumber:
		clone := *e
		data = &clone
	case *js_ast.EBoolean:
		clone := *e
		data = &clone
	case *js_ast.ENull:
		data = &js_ast.ENull{}
	case *js_ast.EUndefined:
		data = &js_ast.EUndefined{}
	case *js_ast.EThis:
		data = &js_ast.EThis{}
	case *js_ast.ECall:
		clone := *e
		data = &clone
	case *js_ast.EDot:
		clone := *e
		data = &clone
	case *js_ast.EIndex:
		clone := *e
		data = &clone
	case *js_ast.EFunction:
		clone := *e
		data = &clone
	case *js_ast.EArrow:
		clone := *e
		data = &clone
	case *js_ast.EComputedKey:
		clone := *e
		data = &clone
	case *js_ast.EParen:
		clone := *e
		data = &clone
	case *js_ast.ETSAssertion:
		clone := *e
		data = &clone
	case *js_ast.ETSNonNull:
		clone := *e
		data = &clone
	case *js_ast.ETSQualifiedName:
		clone := *e
		data = &clone
	default:
		panic("Internal error")
	}

	return f.Expr(data)
}

func (f *Factory) NewProperty(key js_ast.Expr, value js_ast.Expr) js_ast.Property {
	return js_ast.Property{Kind: js_ast.PropertyNormal, Key: key, ValueOrNil: value, Index: f.Table.Alloc()}
}

// The key is also the value. The initializer is only allowed in assignment
// patterns.
func (f *Factory) NewShorthandProperty(name js_ast.Expr, initializerOrNil js_ast.Expr) js_ast.Property {
	return js_ast.Property{Kind: js_ast.PropertyShorthand, Key: name, InitializerOrNil: initializerOrNil, Index: f.Table.Alloc()}
}

func (f *Factory) NewSpreadProperty(value js_ast.Expr) js_ast.Property {
	return js_ast.Property{Kind: js_ast.PropertySpread, ValueOrNil: value, Index: f.Table.Alloc()}
}

// Creates a getter, setter, or method
func (f *Factory) NewFunctionProperty(kind js_ast.PropertyKind, key js_ast.Expr, fn js_ast.Fn) js_ast.Property {
	if kind != js_ast.PropertyGet && kind != js_ast.PropertySet && kind != js_ast.PropertyMethod {
		panic("Internal error")
	}
	return js_ast.Property{Kind: kind, Key: key, ValueOrNil: f.NewFunction(fn), Index: f.Table.Alloc()}
}

func (f *Factory) NewBindingIdentifier(name string) js_ast.Binding {
	return f.Binding(&js_ast.EIdentifier{Name: name})
}

func (f *Factory) NewBindingMissing() js_ast.Binding {
	return f.Binding(&js_ast.EMissing{})
}

func (f *Factory) NewArrayBinding(items []js_ast.BindingElement, isSingleLine bool) js_ast.Binding {
	return f.Binding(&js_ast.BArray{Items: items, IsSingleLine: isSingleLine})
}

func (f *Factory) NewObjectBinding(properties []js_ast.BindingElement, isSingleLine bool) js_ast.Binding {
	return f.Binding(&js_ast.BObject{Properties: properties, IsSingleLine: isSingleLine})
}

func (f *Factory) NewBindingElement(keyOrNil js_ast.Expr, target js_ast.Binding, defaultValueOrNil js_ast.Expr) js_ast.BindingElement {
	return js_ast.BindingElement{KeyOrNil: keyOrNil, Target: target, DefaultValueOrNil: defaultValueOrNil, Index: f.Table.Alloc()}
}

func (f *Factory) NewRestElement(target js_ast.Binding) js_ast.BindingElement {
	return js_ast.BindingElement{Target: target, IsRest: true, Index: f.Table.Alloc()}
}

func (f *Factory) NewBlock(stmts []js_ast.Stmt, multiLine bool) js_ast.Stmt {
	return f.Stmt(&js_ast.SBlock{Stmts: stmts, IsSingleLine: !multiLine})
}

func (f *Factory) NewReturn(valueOrNil js_ast.Expr) js_ast.Stmt {
	return f.Stmt(&js_ast.SReturn{ValueOrNil: valueOrNil})
}

func (f *Factory) NewExprStmt(value js_ast.Expr) js_ast.Stmt {
	return f.Stmt(&js_ast.SExpr{Value: value})
}

func (f *Factory) NewDirective(text string) js_ast.Stmt {
	return f.Stmt(&js_ast.SDirective{Value: helpers.StringToUTF16(text)})
}

func (f *Factory) NewFunctionDeclaration(fn js_ast.Fn) js_ast.Stmt {
	return f.Stmt(&js_ast.SFunction{Fn: fn})
}

func (f *Factory) NewDecl(binding js_ast.Binding, valueOrNil js_ast.Expr) js_ast.Decl {
	return js_ast.Decl{Binding: binding, ValueOrNil: valueOrNil, Index: f.Table.Alloc()}
}

func (f *Factory) NewLocal(kind js_ast.LocalKind, decls []js_ast.Decl) js_ast.Stmt {
	return f.Stmt(&js_ast.SLocal{Kind: kind, Decls: decls})
}
