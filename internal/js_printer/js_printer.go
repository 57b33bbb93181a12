package js_printer

import (
	"github.com/tslower/tslower/internal/helpers"
	"github.com/tslower/tslower/internal/js_ast"
)

// This printer writes lowered trees back out as JavaScript. TypeScript-only
// syntax (type annotations, type parameters, assertions) is dropped. It doesn't
// generate source maps.

type printer struct {
	js             []byte
	options        Options
	stmtStart      int
	arrowExprStart int
	needsSemicolon bool
}

func (p *printer) print(text string) {
	p.js = append(p.js, text...)
}

// This is the same as "print(string(bytes))" without any unnecessary temporary
// allocations
func (p *printer) printBytes(bytes []byte) {
	p.js = append(p.js, bytes...)
}

func (p *printer) printQuotedUTF16(text []uint16) {
	p.printBytes(helpers.QuoteUTF16(text, '"'))
}

func (p *printer) printIndent() {
	if !p.options.MinifyWhitespace {
		for i := 0; i < p.options.Indent; i++ {
			p.print("  ")
		}
	}
}

func (p *printer) printSpace() {
	if !p.options.MinifyWhitespace {
		p.print(" ")
	}
}

func (p *printer) printNewline() {
	if !p.options.MinifyWhitespace {
		p.print("\n")
	}
}

func (p *printer) printSemicolonAfterStatement() {
	if !p.options.MinifyWhitespace {
		p.print(";\n")
	} else {
		p.needsSemicolon = true
	}
}

func (p *printer) printSemicolonIfNeeded() {
	if p.needsSemicolon {
		p.print(";")
		p.needsSemicolon = false
	}
}

func (p *printer) printNumber(value float64, level js_ast.L) {
	text := helpers.FloatToString(value)
	if value < 0 && level >= js_ast.LPrefix {
		p.print("(")
		p.print(text)
		p.print(")")
		return
	}
	p.print(text)
}

func (p *printer) printBinding(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.EMissing:

	case *js_ast.EIdentifier:
		p.print(b.Name)

	case *js_ast.BArray:
		isMultiLine := len(b.Items) > 0 && !b.IsSingleLine
		p.print("[")
		if isMultiLine {
			p.options.Indent++
		}

		for i, item := range b.Items {
			if i != 0 {
				p.print(",")
				if !isMultiLine {
					p.printSpace()
				}
			}
			if isMultiLine {
				p.printNewline()
				p.printIndent()
			}
			p.printBindingElement(item)

			// Make sure there's a comma after trailing missing items
			if _, ok := item.Target.Data.(*js_ast.EMissing); ok && i == len(b.Items)-1 {
				p.print(",")
			}
		}

		if isMultiLine {
			p.printNewline()
			p.options.Indent--
			p.printIndent()
		}
		p.print("]")

	case *js_ast.BObject:
		isMultiLine := len(b.Properties) > 0 && !b.IsSingleLine
		p.print("{")
		if isMultiLine {
			p.options.Indent++
		}

		for i, property := range b.Properties {
			if i != 0 {
				p.print(",")
			}
			if isMultiLine {
				p.printNewline()
				p.printIndent()
			} else {
				p.printSpace()
			}
			p.printBindingElement(property)
		}

		if isMultiLine {
			p.printNewline()
			p.options.Indent--
			p.printIndent()
		} else if len(b.Properties) > 0 {
			p.printSpace()
		}
		p.print("}")

	default:
		panic("Internal error")
	}
}

// Prints a pattern element or a function parameter
func (p *printer) printBindingElement(item js_ast.BindingElement) {
	if item.IsRest {
		p.print("...")
	}

	if item.KeyOrNil.Data != nil {
		p.printPropertyKey(item.KeyOrNil)
		p.print(":")
		p.printSpace()
	}

	p.printBinding(item.Target)

	if item.DefaultValueOrNil.Data != nil {
		p.printSpace()
		p.print("=")
		p.printSpace()
		p.printExpr(item.DefaultValueOrNil, js_ast.LComma)
	}
}

func (p *printer) printFnArgs(args []js_ast.BindingElement) {
	p.print("(")
	for i, arg := range args {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.printBindingElement(arg)
	}
	p.print(")")
}

func (p *printer) printFn(fn js_ast.Fn) {
	p.printFnArgs(fn.Args)
	if fn.BodyOrNil.Data == nil {
		return
	}
	p.printSpace()
	p.printBlock(fn.BodyOrNil)
}

func (p *printer) printFnPrefix(fn js_ast.Fn) {
	if fn.Modifiers.Has(js_ast.ModifierAsync) {
		p.print("async ")
	}
	p.print("function")
	if fn.IsGenerator {
		p.print("*")
	}
	if name, ok := fn.NameOrNil.Data.(*js_ast.EIdentifier); ok {
		if !fn.IsGenerator {
			p.print(" ")
		} else {
			p.printSpace()
		}
		p.print(name.Name)
	}
}

func (p *printer) printPropertyKey(key js_ast.Expr) {
	switch k := key.Data.(type) {
	case *js_ast.EIdentifier:
		p.print(k.Name)

	case *js_ast.EString:
		p.printQuotedUTF16(k.Value)

	case *js_ast.ENumber:
		p.printNumber(k.Value, js_ast.LLowest)

	case *js_ast.EComputedKey:
		p.print("[")
		p.printExpr(k.Value, js_ast.LComma)
		p.print("]")

	default:
		panic("Internal error")
	}
}

func (p *printer) printProperty(property js_ast.Property) {
	switch property.Kind {
	case js_ast.PropertySpread:
		p.print("...")
		p.printExpr(property.ValueOrNil, js_ast.LComma)
		return

	case js_ast.PropertyGet, js_ast.PropertySet, js_ast.PropertyMethod:
		fn := property.ValueOrNil.Data.(*js_ast.EFunction).Fn
		switch property.Kind {
		case js_ast.PropertyGet:
			p.print("get ")
		case js_ast.PropertySet:
			p.print("set ")
		default:
			if fn.Modifiers.Has(js_ast.ModifierAsync) {
				p.print("async ")
			}
			if fn.IsGenerator {
				p.print("*")
			}
		}
		p.printPropertyKey(property.Key)
		p.printFn(fn)
		return

	case js_ast.PropertyShorthand:
		p.printPropertyKey(property.Key)
		if property.InitializerOrNil.Data != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpr(property.InitializerOrNil, js_ast.LComma)
		}
		return
	}

	p.printPropertyKey(property.Key)
	p.print(":")
	p.printSpace()
	p.printExpr(property.ValueOrNil, js_ast.LComma)
}

func (p *printer) printExpr(expr js_ast.Expr, level js_ast.L) {
	switch e := expr.Data.(type) {
	case *js_ast.EMissing:

	case *js_ast.EIdentifier:
		p.print(e.Name)

	case *js_ast.EThis:
		p.print("this")

	case *js_ast.ENull:
		p.print("null")

	case *js_ast.EUndefined:
		if level >= js_ast.LPrefix {
			p.print("(void 0)")
		} else {
			p.print("void 0")
		}

	case *js_ast.EBoolean:
		if e.Value {
			p.print("true")
		} else {
			p.print("false")
		}

	case *js_ast.EString:
		p.printQuotedUTF16(e.Value)

	case *js_ast.ENumber:
		p.printNumber(e.Value, level)

	case *js_ast.ESpread:
		p.print("...")
		p.printExpr(e.Value, js_ast.LComma)

	case *js_ast.EParen:
		p.print("(")
		p.printExpr(e.Value, js_ast.LLowest)
		p.print(")")

	case *js_ast.ETSAssertion:
		p.printExpr(e.Value, level)

	case *js_ast.ETSNonNull:
		p.printExpr(e.Value, level)

	case *js_ast.EDot:
		p.printExpr(e.Target, js_ast.LPostfix)
		p.print(".")
		p.print(e.Name)

	case *js_ast.ETSQualifiedName:
		p.printExpr(e.Left, js_ast.LPostfix)
		p.print(".")
		p.printExpr(e.Right, js_ast.LPostfix)

	case *js_ast.EIndex:
		p.printExpr(e.Target, js_ast.LPostfix)
		p.print("[")
		p.printExpr(e.Index, js_ast.LLowest)
		p.print("]")

	case *js_ast.ECall:
		p.printExpr(e.Target, js_ast.LPostfix)
		p.print("(")
		for i, arg := range e.Args {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printExpr(arg, js_ast.LComma)
		}
		p.print(")")

	case *js_ast.EArray:
		isMultiLine := len(e.Items) > 0 && !e.IsSingleLine
		p.print("[")
		if isMultiLine {
			p.options.Indent++
		}

		for i, item := range e.Items {
			if i != 0 {
				p.print(",")
				if !isMultiLine {
					p.printSpace()
				}
			}
			if isMultiLine {
				p.printNewline()
				p.printIndent()
			}
			p.printExpr(item, js_ast.LComma)

			// Make sure there's a comma after trailing missing items
			if _, ok := item.Data.(*js_ast.EMissing); ok && i == len(e.Items)-1 {
				p.print(",")
			}
		}

		if isMultiLine {
			p.printNewline()
			p.options.Indent--
			p.printIndent()
		}
		p.print("]")

	case *js_ast.EObject:
		n := len(p.js)
		wrap := p.stmtStart == n || p.arrowExprStart == n
		if wrap {
			p.print("(")
		}

		isMultiLine := len(e.Properties) > 0 && !e.IsSingleLine
		p.print("{")
		if isMultiLine {
			p.options.Indent++
		}

		for i, property := range e.Properties {
			if i != 0 {
				p.print(",")
			}
			if isMultiLine {
				p.printNewline()
				p.printIndent()
			} else {
				p.printSpace()
			}
			p.printProperty(property)
		}

		if isMultiLine {
			p.printNewline()
			p.options.Indent--
			p.printIndent()
		} else if len(e.Properties) > 0 {
			p.printSpace()
		}
		p.print("}")

		if wrap {
			p.print(")")
		}

	case *js_ast.EFunction:
		n := len(p.js)
		wrap := p.stmtStart == n
		if wrap {
			p.print("(")
		}
		p.printFnPrefix(e.Fn)
		p.printFn(e.Fn)
		if wrap {
			p.print(")")
		}

	case *js_ast.EArrow:
		wrap := level >= js_ast.LAssign
		if wrap {
			p.print("(")
		}
		if e.IsAsync {
			p.print("async ")
		}
		p.printFnArgs(e.Args)
		p.printSpace()
		p.print("=>")
		p.printSpace()
		if e.Body.BlockOrNil.Data != nil {
			p.printBlock(e.Body.BlockOrNil)
		} else {
			p.arrowExprStart = len(p.js)
			p.printExpr(e.Body.ExprOrNil, js_ast.LComma)
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.EBinary:
		entry := js_ast.OpTable[e.Op]
		wrap := level >= entry.Level

		// Destructuring assignments must be parenthesized
		if n := len(p.js); p.stmtStart == n || p.arrowExprStart == n {
			if _, ok := e.Left.Data.(*js_ast.EObject); ok {
				wrap = true
			}
		}

		if wrap {
			p.print("(")
		}

		leftLevel := entry.Level - 1
		rightLevel := entry.Level - 1
		if e.Op.IsRightAssociative() {
			leftLevel = entry.Level
		}

		p.printExpr(e.Left, leftLevel)
		if e.Op != js_ast.BinOpComma {
			p.printSpace()
		}
		p.print(entry.Text)
		p.printSpace()
		p.printExpr(e.Right, rightLevel)

		if wrap {
			p.print(")")
		}

	default:
		panic("Internal error")
	}
}

func (p *printer) printBlock(stmt js_ast.Stmt) {
	block, ok := stmt.Data.(*js_ast.SBlock)
	if !ok {
		panic("Internal error")
	}

	p.print("{")
	p.printNewline()

	p.options.Indent++
	for _, stmt := range block.Stmts {
		p.printSemicolonIfNeeded()
		p.printStmt(stmt)
	}
	p.options.Indent--
	p.needsSemicolon = false

	p.printIndent()
	p.print("}")
}

func (p *printer) printStmt(stmt js_ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *js_ast.SBlock:
		p.printIndent()
		p.printBlock(stmt)
		p.printNewline()

	case *js_ast.SDirective:
		p.printIndent()
		p.printQuotedUTF16(s.Value)
		p.printSemicolonAfterStatement()

	case *js_ast.SExpr:
		p.printIndent()
		p.stmtStart = len(p.js)
		p.printExpr(s.Value, js_ast.LLowest)
		p.printSemicolonAfterStatement()

	case *js_ast.SReturn:
		p.printIndent()
		p.print("return")
		if s.ValueOrNil.Data != nil {
			p.print(" ")
			p.printExpr(s.ValueOrNil, js_ast.LLowest)
		}
		p.printSemicolonAfterStatement()

	case *js_ast.SFunction:
		p.printIndent()
		if s.Fn.Modifiers.Has(js_ast.ModifierExport) {
			p.print("export ")
		}
		if s.Fn.Modifiers.Has(js_ast.ModifierDefault) {
			p.print("default ")
		}
		p.printFnPrefix(s.Fn)
		p.printFn(s.Fn)
		if s.Fn.BodyOrNil.Data == nil {
			p.printSemicolonAfterStatement()
		} else {
			p.printNewline()
		}

	case *js_ast.SLocal:
		p.printIndent()
		switch s.Kind {
		case js_ast.LocalVar:
			p.print("var ")
		case js_ast.LocalLet:
			p.print("let ")
		case js_ast.LocalConst:
			p.print("const ")
		}
		for i, decl := range s.Decls {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printBinding(decl.Binding)
			if decl.ValueOrNil.Data != nil {
				p.printSpace()
				p.print("=")
				p.printSpace()
				p.printExpr(decl.ValueOrNil, js_ast.LComma)
			}
		}
		p.printSemicolonAfterStatement()

	default:
		panic("Internal error")
	}
}

type Options struct {
	// The current indentation level in units of two spaces
	Indent int

	MinifyWhitespace bool
}

type PrintResult struct {
	JS []byte
}

func newPrinter(options Options) *printer {
	return &printer{
		options:        options,
		stmtStart:      -1,
		arrowExprStart: -1,
	}
}

func Print(stmts []js_ast.Stmt, options Options) PrintResult {
	p := newPrinter(options)
	for _, stmt := range stmts {
		p.printSemicolonIfNeeded()
		p.printStmt(stmt)
	}
	return PrintResult{JS: p.js}
}

// Prints a single expression without a trailing semicolon
func PrintExpr(expr js_ast.Expr, options Options) PrintResult {
	p := newPrinter(options)
	p.printExpr(expr, js_ast.LLowest)
	return PrintResult{JS: p.js}
}
