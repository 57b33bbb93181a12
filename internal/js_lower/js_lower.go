package js_lower

// This package rewrites declarative destructuring and object literal members
// into plain expressions for targets that don't support them. Every node it
// creates stands in for some node of the input tree and gets that node's range
// and an origin link back to it, so diagnostics and source maps still point at
// the code the user wrote.
//
// Input that is already in the output form is returned as-is without creating
// any nodes. Input with a shape the caller promised would never show up here is
// a bug in the caller and causes a panic.

import (
	"github.com/tslower/tslower/internal/ast"
	"github.com/tslower/tslower/internal/config"
	"github.com/tslower/tslower/internal/js_ast"
	"github.com/tslower/tslower/internal/js_factory"
	"github.com/tslower/tslower/internal/logger"
)

type Converters struct {
	f       *js_factory.Factory
	log     logger.Log
	source  *logger.Source
	options config.Options

	// The current nesting level of declarative patterns being lowered
	patternDepth int
}

// The log is only used when debug messages are enabled in "options". The source
// may be nil when the tree doesn't come from a file.
func NewConverters(f *js_factory.Factory, log logger.Log, source *logger.Source, options config.Options) *Converters {
	return &Converters{
		f:       f,
		log:     log,
		source:  source,
		options: options,
	}
}

// Makes "node" stand in for "original"
func (c *Converters) link(node ast.Index32, original ast.Index32) {
	c.f.Table.SetTextRange(node, original)
	c.f.Table.SetOriginalNode(node, original)
}

// Returns a copy of "expr" that stands in for it
func (c *Converters) clone(expr js_ast.Expr) js_ast.Expr {
	clone := c.f.Clone(expr)
	c.link(clone.Index, expr.Index)
	return clone
}

func (c *Converters) enterPattern() {
	if max := c.options.MaxPatternDepth; max > 0 && c.patternDepth+1 > max {
		panic("Internal error: destructuring pattern is nested too deeply")
	}
	c.patternDepth++
}

func (c *Converters) leavePattern() {
	c.patternDepth--
}

func (c *Converters) addDebug(node ast.Index32, text string) {
	if !c.options.ShouldLogDebug() {
		return
	}
	source := c.source
	r, hasRange := c.f.Table.Range(node)
	if !hasRange {
		source = nil
	}
	c.log.AddDebug(source, r, text)
}
