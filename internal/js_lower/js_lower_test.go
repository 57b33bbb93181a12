package js_lower_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tslower/tslower/internal/ast"
	"github.com/tslower/tslower/internal/config"
	"github.com/tslower/tslower/internal/js_ast"
	"github.com/tslower/tslower/internal/js_factory"
	"github.com/tslower/tslower/internal/js_lower"
	"github.com/tslower/tslower/internal/js_printer"
	"github.com/tslower/tslower/internal/logger"
	"github.com/tslower/tslower/internal/test"
)

// Builds trees by hand with ranges taken from real source text, since there's
// no parser in this module
type harness struct {
	t      *testing.T
	source logger.Source
	table  *js_ast.NodeTable
	f      *js_factory.Factory
	log    logger.Log
	c      *js_lower.Converters
}

func newHarness(t *testing.T, contents string) *harness {
	t.Helper()
	return newHarnessWithOptions(t, contents, config.Options{})
}

func newHarnessWithOptions(t *testing.T, contents string, options config.Options) *harness {
	t.Helper()
	table := &js_ast.NodeTable{}
	h := &harness{
		t:      t,
		source: logger.Source{PrettyPath: "<stdin>", Contents: contents},
		table:  table,
		f:      js_factory.New(table),
		log:    logger.NewDeferLog(),
	}
	h.c = js_lower.NewConverters(h.f, h.log, &h.source, options)
	return h
}

// Gives "node" the range of the "n"th occurrence of "text" in the source
func (h *harness) setRange(node ast.Index32, text string, n int) {
	h.t.Helper()
	start := -1
	for i := 0; i <= n; i++ {
		next := strings.Index(h.source.Contents[start+1:], text)
		if next < 0 {
			h.t.Fatalf("Missing occurrence %d of %q", n, text)
		}
		start += next + 1
	}
	h.table.SetRange(node, logger.Range{Loc: logger.Loc{Start: int32(start)}, Len: int32(len(text))})
}

func (h *harness) expr(expr js_ast.Expr, text string) js_ast.Expr {
	h.t.Helper()
	h.setRange(expr.Index, text, 0)
	return expr
}

func (h *harness) exprN(expr js_ast.Expr, text string, n int) js_ast.Expr {
	h.t.Helper()
	h.setRange(expr.Index, text, n)
	return expr
}

func (h *harness) binding(binding js_ast.Binding, text string) js_ast.Binding {
	h.t.Helper()
	h.setRange(binding.Index, text, 0)
	return binding
}

func (h *harness) element(element js_ast.BindingElement, text string) js_ast.BindingElement {
	h.t.Helper()
	h.setRange(element.Index, text, 0)
	return element
}

func (h *harness) property(property js_ast.Property, text string) js_ast.Property {
	h.t.Helper()
	h.setRange(property.Index, text, 0)
	return property
}

func (h *harness) stmt(stmt js_ast.Stmt, text string) js_ast.Stmt {
	h.t.Helper()
	h.setRange(stmt.Index, text, 0)
	return stmt
}

// Checks that "node" was derived from "original" and sits at its position
func (h *harness) assertStandsIn(node ast.Index32, original ast.Index32, flags js_ast.EmitFlags) {
	h.t.Helper()
	originalMeta := h.table.Meta(original)
	if !originalMeta.HasRange {
		h.t.Fatal("The original node has no range")
	}
	expected := js_ast.NodeMeta{
		Range:    originalMeta.Range,
		Original: original,
		Flags:    flags,
		HasRange: true,
	}
	if diff := cmp.Diff(expected, h.table.Meta(node), cmp.AllowUnexported(ast.Index32{})); diff != "" {
		h.t.Fatalf("Metadata mismatch (-want +got):\n%s", diff)
	}
}

func printExpr(expr js_ast.Expr) string {
	return string(js_printer.PrintExpr(expr, js_printer.Options{}).JS)
}

func printStmts(stmts ...js_ast.Stmt) string {
	return string(js_printer.Print(stmts, js_printer.Options{}).JS)
}

func expectPrintedExpr(t *testing.T, expr js_ast.Expr, expected string) {
	t.Helper()
	test.AssertEqualWithDiff(t, printExpr(expr), expected)
}
