package js_lower_test

import (
	"testing"

	"github.com/tslower/tslower/internal/config"
	"github.com/tslower/tslower/internal/js_ast"
	"github.com/tslower/tslower/internal/js_lower"
	"github.com/tslower/tslower/internal/logger"
	"github.com/tslower/tslower/internal/test"
)

type accessorPair struct {
	getter js_ast.Property
	setter js_ast.Property
}

// Builds "get x() { return 1; }" and "set x(v) {}" with ranges from the source
func buildAccessorPair(h *harness) accessorPair {
	f := h.f
	getterKey := h.exprN(f.NewIdentifier("x"), "x", 0)
	ret := h.stmt(f.NewReturn(h.expr(f.NewNumber(1), "1")), "return 1;")
	getter := h.property(f.NewFunctionProperty(js_ast.PropertyGet, getterKey, js_ast.Fn{
		BodyOrNil: h.stmt(f.NewBlock([]js_ast.Stmt{ret}, false), "{ return 1; }"),
	}), "get x() { return 1; }")

	setterKey := h.exprN(f.NewIdentifier("x"), "x", 1)
	arg := h.element(f.NewBindingElement(js_ast.Expr{}, h.binding(f.NewBindingIdentifier("v"), "v"), js_ast.Expr{}), "v")
	setter := h.property(f.NewFunctionProperty(js_ast.PropertySet, setterKey, js_ast.Fn{
		Args:      []js_ast.BindingElement{arg},
		BodyOrNil: h.stmt(f.NewBlock(nil, false), "{}"),
	}), "set x(v) {}")

	return accessorPair{getter: getter, setter: setter}
}

const definePair = `Object.defineProperty(obj, "x", { enumerable: true, configurable: true, get: function() {
  return 1;
}, set: function(v) {
} })`

func TestAccessorPairGetterFirst(t *testing.T) {
	h := newHarnessWithOptions(t, "({ get x() { return 1; }, set x(v) {} })", config.Options{LogLevel: logger.LevelDebug})
	pair := buildAccessorPair(h)
	properties := []js_ast.Property{pair.getter, pair.setter}
	receiver := h.f.NewIdentifier("obj")

	call, ok := h.c.ExprForObjectLiteralMember(properties, pair.getter, receiver, false)
	test.AssertEqual(t, ok, true)
	expectPrintedExpr(t, call, definePair)
	h.assertStandsIn(call.Index, pair.getter.Index, 0)

	args := call.Data.(*js_ast.ECall).Args
	test.AssertEqual(t, args[0].Index, receiver.Index)
	h.assertStandsIn(args[1].Index, pair.getter.Key.Index, 0)
	h.assertStandsIn(args[2].Index, pair.getter.Index, 0)

	// "Object.defineProperty" is part of the definition of the pair
	callee := call.Data.(*js_ast.ECall).Target
	h.assertStandsIn(callee.Index, pair.getter.Index, 0)
	h.assertStandsIn(callee.Data.(*js_ast.EDot).Target.Index, pair.getter.Index, 0)

	descriptor := args[2].Data.(*js_ast.EObject)
	test.AssertEqual(t, descriptor.IsSingleLine, true)
	test.AssertEqual(t, len(descriptor.Properties), 4)
	anchors := []js_ast.Property{pair.getter, pair.getter, pair.getter, pair.setter}
	for i, property := range descriptor.Properties {
		h.assertStandsIn(property.Index, anchors[i].Index, 0)
		h.assertStandsIn(property.Key.Index, anchors[i].Index, 0)
		h.assertStandsIn(property.ValueOrNil.Index, anchors[i].Index, 0)
	}

	// The setter was already defined along with the getter
	second, ok := h.c.ExprForObjectLiteralMember(properties, pair.setter, receiver, false)
	test.AssertEqual(t, ok, false)
	test.AssertEqual(t, second.Data, nil)

	msgs := h.log.Done()
	test.AssertEqual(t, len(msgs), 1)
	test.AssertEqual(t, msgs[0].Kind, logger.Debug)
	test.AssertEqual(t, msgs[0].Text, `Folded set accessor for "x" into the definition for the earlier get accessor`)
	test.AssertEqual(t, msgs[0].Location.Line, 1)
	test.AssertEqual(t, msgs[0].Location.Column, 26)
	test.AssertEqual(t, msgs[0].Location.Length, len("set x(v) {}"))
}

func TestAccessorPairSetterFirst(t *testing.T) {
	h := newHarness(t, "({ set x(v) {}, get x() { return 1; } })")
	pair := buildAccessorPair(h)
	properties := []js_ast.Property{pair.setter, pair.getter}
	receiver := h.f.NewIdentifier("obj")

	// The getter comes second in source order, so it produces nothing
	second, ok := h.c.ExprForObjectLiteralMember(properties, pair.getter, receiver, false)
	test.AssertEqual(t, ok, false)
	test.AssertEqual(t, second.Data, nil)

	call, ok := h.c.ExprForObjectLiteralMember(properties, pair.setter, receiver, false)
	test.AssertEqual(t, ok, true)
	expectPrintedExpr(t, call, definePair)
	h.assertStandsIn(call.Index, pair.setter.Index, 0)

	// Debug messages are off by default
	test.AssertEqual(t, len(h.log.Done()), 0)
}

func TestAccessorLone(t *testing.T) {
	h := newHarness(t, "({\n  get y() { return 2; }\n})")
	f := h.f
	ret := h.stmt(f.NewReturn(h.expr(f.NewNumber(2), "2")), "return 2;")
	getter := h.property(f.NewFunctionProperty(js_ast.PropertyGet, h.expr(f.NewIdentifier("y"), "y"), js_ast.Fn{
		BodyOrNil: h.stmt(f.NewBlock([]js_ast.Stmt{ret}, false), "{ return 2; }"),
	}), "get y() { return 2; }")
	object := f.NewObject([]js_ast.Property{getter}, false)

	exprs := h.c.AssignmentsForObjectLiteral(object, f.NewIdentifier("obj"))
	test.AssertEqual(t, len(exprs), 1)
	expectPrintedExpr(t, exprs[0], `Object.defineProperty(obj, "y", {
  enumerable: true,
  configurable: true,
  get: function() {
    return 2;
  }
})`)
	h.assertStandsIn(exprs[0].Index, getter.Index, 0)
}

func TestAccessorKeyMatching(t *testing.T) {
	h := newHarness(t, "")
	f := h.f
	body := func() js_ast.Fn {
		return js_ast.Fn{BodyOrNil: f.NewBlock(nil, false)}
	}

	// "x" and "'x'" name the same property
	properties := []js_ast.Property{
		f.NewFunctionProperty(js_ast.PropertyGet, f.NewIdentifier("x"), body()),
		f.NewProperty(f.NewIdentifier("y"), f.NewNumber(1)),
		f.NewFunctionProperty(js_ast.PropertySet, f.NewString("x"), body()),
		f.NewFunctionProperty(js_ast.PropertyGet, f.NewComputedKey(f.NewString("x")), body()),
		f.NewFunctionProperty(js_ast.PropertyGet, f.NewNumber(1), body()),
	}
	accessors := js_lower.AllAccessorDeclarations(properties, properties[2])
	test.AssertEqual(t, accessors.FirstAccessor.Index, properties[0].Index)
	test.AssertEqual(t, accessors.Getter.Index, properties[0].Index)
	test.AssertEqual(t, accessors.Setter.Index, properties[2].Index)

	accessors = js_lower.AllAccessorDeclarations(properties, properties[4])
	test.AssertEqual(t, accessors.FirstAccessor.Index, properties[4].Index)
	test.AssertEqual(t, accessors.Getter.Index, properties[4].Index)
	test.AssertEqual(t, accessors.Setter == nil, true)

	receiver := f.NewIdentifier("obj")
	exprs := h.c.AssignmentsForObjectLiteral(f.NewObject(properties, true), receiver)
	test.AssertEqual(t, len(exprs), 3)
	expectPrintedExpr(t, exprs[0], `Object.defineProperty(obj, "x", { enumerable: true, configurable: true, get: function() {
}, set: function() {
} })`)
	expectPrintedExpr(t, exprs[1], "obj.y = 1")
	expectPrintedExpr(t, exprs[2], `Object.defineProperty(obj, 1, { enumerable: true, configurable: true, get: function() {
} })`)

	test.AssertPanics(t, "expected an accessor", func() {
		js_lower.AllAccessorDeclarations(properties, properties[1])
	})
}

func TestAccessorDynamicKeys(t *testing.T) {
	h := newHarness(t, "")
	f := h.f
	k := f.NewIdentifier("k")
	getter := f.NewFunctionProperty(js_ast.PropertyGet, f.NewComputedKey(k), js_ast.Fn{BodyOrNil: f.NewBlock(nil, false)})
	setter := f.NewFunctionProperty(js_ast.PropertySet, f.NewComputedKey(k), js_ast.Fn{BodyOrNil: f.NewBlock(nil, false)})
	properties := []js_ast.Property{getter, setter}

	// Keys that are only known at run-time are never paired
	receiver := f.NewIdentifier("obj")
	first, ok := h.c.ExprForObjectLiteralMember(properties, getter, receiver, false)
	test.AssertEqual(t, ok, true)
	expectPrintedExpr(t, first, `Object.defineProperty(obj, k, { enumerable: true, configurable: true, get: function() {
} })`)

	second, ok := h.c.ExprForObjectLiteralMember(properties, setter, receiver, false)
	test.AssertEqual(t, ok, true)
	expectPrintedExpr(t, second, `Object.defineProperty(obj, k, { enumerable: true, configurable: true, set: function() {
} })`)

	// The key expression is copied for each definition
	keyArg := second.Data.(*js_ast.ECall).Args[1]
	test.AssertEqual(t, keyArg.Index == k.Index, false)
	test.AssertEqual(t, h.table.GetOriginalNode(keyArg.Index), k.Index)
}

func TestObjectLiteralMembers(t *testing.T) {
	h := newHarness(t, `({a: 1, b, c() {}, "d-e": 2, [f]: 3, 4: 5})`)
	f := h.f

	keyA := h.expr(f.NewIdentifier("a"), "a")
	keyB := h.expr(f.NewIdentifier("b"), "b")
	keyC := h.expr(f.NewIdentifier("c"), "c")
	inner := h.expr(f.NewIdentifier("f"), "f")
	properties := []js_ast.Property{
		h.property(f.NewProperty(keyA, h.expr(f.NewNumber(1), "1")), "a: 1"),
		h.property(f.NewShorthandProperty(keyB, js_ast.Expr{}), "b"),
		h.property(f.NewFunctionProperty(js_ast.PropertyMethod, keyC, js_ast.Fn{
			BodyOrNil: h.stmt(f.NewBlock(nil, false), "{}"),
		}), "c() {}"),
		h.property(f.NewProperty(h.expr(f.NewString("d-e"), `"d-e"`), h.expr(f.NewNumber(2), "2")), `"d-e": 2`),
		h.property(f.NewProperty(h.expr(f.NewComputedKey(inner), "[f]"), h.expr(f.NewNumber(3), "3")), "[f]: 3"),
		h.property(f.NewProperty(h.expr(f.NewNumber(4), "4"), h.expr(f.NewNumber(5), "5")), "4: 5"),
	}
	receiver := f.NewIdentifier("o")

	exprs := h.c.AssignmentsForObjectLiteral(f.NewObject(properties, true), receiver)
	test.AssertEqual(t, len(exprs), len(properties))

	expected := []string{
		"o.a = 1",
		"o.b = b",
		"o.c = function() {\n}",
		`o["d-e"] = 2`,
		"o[f] = 3",
		"o[4] = 5",
	}
	for i, expr := range exprs {
		expectPrintedExpr(t, expr, expected[i])
		h.assertStandsIn(expr.Index, properties[i].Index, 0)

		// The member access is plumbing and doesn't get nested source mappings
		access := expr.Data.(*js_ast.EBinary).Left
		h.assertStandsIn(access.Index, properties[i].Key.Index, js_ast.EmitFlagNoNestedSourceMaps)
	}

	// The shorthand value is a copy of the name
	value := exprs[1].Data.(*js_ast.EBinary).Right
	test.AssertEqual(t, value.Index == keyB.Index, false)
	h.assertStandsIn(value.Index, keyB.Index, 0)

	// The method becomes a function expression
	fn := exprs[2].Data.(*js_ast.EBinary).Right
	h.assertStandsIn(fn.Index, properties[2].Index, 0)

	// The computed key is used directly
	test.AssertEqual(t, exprs[4].Data.(*js_ast.EBinary).Left.Data.(*js_ast.EIndex).Index.Index, inner.Index)
}

func TestObjectLiteralMemberPanics(t *testing.T) {
	h := newHarness(t, "")
	f := h.f
	receiver := f.NewIdentifier("o")

	spread := f.NewSpreadProperty(f.NewIdentifier("a"))
	test.AssertPanics(t, "unexpected object literal member", func() {
		h.c.ExprForObjectLiteralMember([]js_ast.Property{spread}, spread, receiver, false)
	})

	method := f.NewFunctionProperty(js_ast.PropertyMethod, f.NewIdentifier("m"), js_ast.Fn{})
	test.AssertPanics(t, "has no body", func() {
		h.c.ExprForObjectLiteralMember([]js_ast.Property{method}, method, receiver, false)
	})

	getter := f.NewFunctionProperty(js_ast.PropertyGet, f.NewIdentifier("g"), js_ast.Fn{})
	test.AssertPanics(t, "has no body", func() {
		h.c.ExprForObjectLiteralMember([]js_ast.Property{getter}, getter, receiver, false)
	})

	missingValue := js_ast.Property{Kind: js_ast.PropertyNormal, Key: f.NewIdentifier("p"), Index: h.table.Alloc()}
	test.AssertPanics(t, "property has no value", func() {
		h.c.ExprForObjectLiteralMember([]js_ast.Property{missingValue}, missingValue, receiver, false)
	})

	test.AssertPanics(t, "expected an object literal", func() {
		h.c.AssignmentsForObjectLiteral(f.NewArray(nil, true), receiver)
	})
}

func TestExprForEntityName(t *testing.T) {
	h := newHarness(t, "let x: A.B.C;")
	f := h.f

	a := h.expr(f.NewIdentifier("A"), "A")
	ab := h.expr(f.NewTSQualifiedName(a, h.expr(f.NewIdentifier("B"), "B")), "A.B")
	abc := h.expr(f.NewTSQualifiedName(ab, h.expr(f.NewIdentifier("C"), "C")), "A.B.C")

	expr := h.c.ExprForEntityName(abc)
	expectPrintedExpr(t, expr, "A.B.C")
	h.assertStandsIn(expr.Index, abc.Index, 0)

	inner := expr.Data.(*js_ast.EDot).Target
	test.AssertEqual(t, inner.Data.(*js_ast.EDot).Name, "B")
	h.assertStandsIn(inner.Index, ab.Index, 0)

	// The leftmost name is copied
	leftmost := inner.Data.(*js_ast.EDot).Target
	test.AssertEqual(t, leftmost.Index == a.Index, false)
	h.assertStandsIn(leftmost.Index, a.Index, 0)

	// A plain identifier is only copied
	copied := h.c.ExprForEntityName(a)
	expectPrintedExpr(t, copied, "A")
	h.assertStandsIn(copied.Index, a.Index, 0)

	test.AssertPanics(t, "qualified name must end in an identifier", func() {
		h.c.ExprForEntityName(f.NewTSQualifiedName(a, f.NewString("B")))
	})
}
