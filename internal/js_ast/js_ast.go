package js_ast

import "github.com/tslower/tslower/internal/ast"

// Every tree is made of small value wrappers ("Expr", "Binding", "Stmt") around
// pointers to variant data. Each wrapper carries the index of its slot in the
// tree's node table. Source ranges, origin links, and emit hints live in that
// table instead of in the nodes themselves (see "js_ast_meta.go"). A node's
// identity is its index, so copying a wrapper does not create a new node.
//
// Trees are treated as immutable once parsed. Passes that lower syntax build
// new nodes for the parts that change and reuse everything else.

type L int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	LLowest L = iota
	LComma
	LSpread
	LYield
	LAssign
	LConditional
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
	LPrefix
	LPostfix
	LNew
	LCall
	LMember
)

type OpCode int

// Only the operators that lowering can produce are represented here
const (
	// Non-associative
	BinOpComma OpCode = iota

	// Right-associative
	BinOpAssign
)

func (op OpCode) IsRightAssociative() bool {
	return op >= BinOpAssign
}

type opTableEntry struct {
	Text  string
	Level L
}

var OpTable = []opTableEntry{
	{",", LComma},
	{"=", LAssign},
}

type ModifierFlags uint8

const (
	ModifierExport ModifierFlags = 1 << iota
	ModifierDefault
	ModifierDeclare
	ModifierAsync
	ModifierStatic
)

func (flags ModifierFlags) Has(flag ModifierFlags) bool {
	return (flags & flag) != 0
}

// This is a stand-in for a TypeScript type annotation. Types are carried
// through lowering untouched and are never printed.
type TSType struct {
	Text string
}

type TSTypeParameter struct {
	Name string
}

type Fn struct {
	// This is an "*EIdentifier" when present
	NameOrNil Expr

	// This is an "*SBlock" when present. It's missing for overload signatures.
	BodyOrNil Stmt

	TSReturnTypeOrNil *TSType
	TSTypeParameters  []TSTypeParameter
	Args              []BindingElement
	Modifiers         ModifierFlags
	IsGenerator       bool
}

// The body of an arrow function. Exactly one of these is present.
//
//	() => {}
//	() => x
type ConciseBody struct {
	BlockOrNil Stmt
	ExprOrNil  Expr
}

type PropertyKind uint8

const (
	PropertyNormal    PropertyKind = iota // "a: b"
	PropertyShorthand                     // "a" or, in an assignment pattern, "a = 1"
	PropertySpread                        // "...a"
	PropertyGet                           // "get a() {}"
	PropertySet                           // "set a(v) {}"
	PropertyMethod                        // "a() {}"
)

func (kind PropertyKind) IsAccessor() bool {
	return kind == PropertyGet || kind == PropertySet
}

// A member of an object literal
type Property struct {
	// This is an "*EIdentifier", "*EString", "*ENumber", or "*EComputedKey". It's
	// unused for spread properties.
	Key Expr

	// This is missing for shorthand properties, where the key is also the value.
	// Getters, setters, and methods store an "*EFunction" here.
	ValueOrNil Expr

	// This is only used for shorthand properties in assignment patterns:
	//
	//   ({a = 1} = {});
	//
	InitializerOrNil Expr

	Index ast.Index32
	Kind  PropertyKind
}

// A declarative element of a binding pattern or a function parameter list:
//
//	"a" and "b = 1" in "let [a, b = 1] = x"
//	"a: b" and "...c" in "let {a: b, ...c} = x"
//	"[k]: {d}" in "function f({[k]: {d}}) {}"
type BindingElement struct {
	// This is only used inside object patterns when the element renames the
	// property ("a" in "{a: b}"). Computed keys are stored as "*EComputedKey".
	KeyOrNil Expr

	DefaultValueOrNil Expr
	Target            Binding
	Index             ast.Index32
	IsRest            bool
}

type Binding struct {
	Data  B
	Index ast.Index32
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system. Identifiers and holes are shared with expressions so that
// a binding name can be used as an assignment target without a copy.
type B interface{ isBinding() }

type BArray struct {
	Items        []BindingElement
	IsSingleLine bool
}

type BObject struct {
	Properties   []BindingElement
	IsSingleLine bool
}

func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}
func (*EIdentifier) isBinding() {}
func (*EMissing) isBinding()    {}

type Expr struct {
	Data  E
	Index ast.Index32
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type E interface{ isExpr() }

type EArray struct {
	Items        []Expr
	IsSingleLine bool
}

type EObject struct {
	Properties   []Property
	IsSingleLine bool
}

type ESpread struct{ Value Expr }

type EBinary struct {
	Left  Expr
	Right Expr
	Op    OpCode
}

type EIdentifier struct{ Name string }

// An elided array element: the hole in "[a, , b]"
type EMissing struct{}

type EString struct{ Value []uint16 }

type ENumber struct{ Value float64 }

type EBoolean struct{ Value bool }

type ENull struct{}

type EUndefined struct{}

type EThis struct{}

type ECall struct {
	Target Expr
	Args   []Expr
}

type EDot struct {
	Target Expr
	Name   string
}

type EIndex struct {
	Target Expr
	Index  Expr
}

type EFunction struct{ Fn Fn }

type EArrow struct {
	Body    ConciseBody
	Args    []BindingElement
	IsAsync bool
}

// This only appears as a property key: "[a]" in "{[a]: b}"
type EComputedKey struct{ Value Expr }

type EParen struct{ Value Expr }

// Both "a as T" and "<T>a"
type ETSAssertion struct {
	Value Expr
	Type  TSType
}

// "a!"
type ETSNonNull struct{ Value Expr }

// A dotted name in a type position: "A.B" in "let x: A.B". The left side is an
// "*EIdentifier" or another "*ETSQualifiedName". The right side is an
// "*EIdentifier".
type ETSQualifiedName struct {
	Left  Expr
	Right Expr
}

func (*EArray) isExpr()           {}
func (*EObject) isExpr()          {}
func (*ESpread) isExpr()          {}
func (*EBinary) isExpr()          {}
func (*EIdentifier) isExpr()      {}
func (*EMissing) isExpr()         {}
func (*EString) isExpr()          {}
func (*ENumber) isExpr()          {}
func (*EBoolean) isExpr()         {}
func (*ENull) isExpr()            {}
func (*EUndefined) isExpr()       {}
func (*EThis) isExpr()            {}
func (*ECall) isExpr()            {}
func (*EDot) isExpr()             {}
func (*EIndex) isExpr()           {}
func (*EFunction) isExpr()        {}
func (*EArrow) isExpr()           {}
func (*EComputedKey) isExpr()     {}
func (*EParen) isExpr()           {}
func (*ETSAssertion) isExpr()     {}
func (*ETSNonNull) isExpr()       {}
func (*ETSQualifiedName) isExpr() {}

type Stmt struct {
	Data  S
	Index ast.Index32
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type S interface{ isStmt() }

type SBlock struct {
	Stmts        []Stmt
	IsSingleLine bool
}

type SDirective struct {
	Value []uint16
}

type SExpr struct {
	Value Expr
}

type SReturn struct {
	ValueOrNil Expr
}

type SFunction struct {
	Fn Fn
}

type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

type Decl struct {
	Binding    Binding
	ValueOrNil Expr
	Index      ast.Index32
}

type SLocal struct {
	Decls []Decl
	Kind  LocalKind
}

func (*SBlock) isStmt()     {}
func (*SDirective) isStmt() {}
func (*SExpr) isStmt()      {}
func (*SReturn) isStmt()    {}
func (*SFunction) isStmt()  {}
func (*SLocal) isStmt()     {}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system. An element of a destructuring container is one of:
//
//	BindingElement: "a = 1" in "let [a = 1] = x" or "function f(a = 1) {}"
//	Expr:           "a = 1" in "[a = 1] = x", "...a" in "[...a] = x"
//	Property:       "a: b = 1" in "({a: b = 1} = x)"
type Element interface{ isElement() }

func (BindingElement) isElement() {}
func (Expr) isElement()           {}
func (Property) isElement()       {}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system. A target is what an element binds to. It's either a
// declarative "Binding" or an assignable "Expr". Patterns of both forms are
// also targets.
type Target interface{ isTarget() }

func (Binding) isTarget() {}
func (Expr) isTarget()    {}
