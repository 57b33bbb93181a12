package js_ast

import (
	"github.com/tslower/tslower/internal/ast"
	"github.com/tslower/tslower/internal/logger"
)

type EmitFlags uint16

const (
	// The node is compiler-generated plumbing. Don't emit source mappings for
	// anything nested inside it.
	EmitFlagNoNestedSourceMaps EmitFlags = 1 << iota

	// Refer to the declaration by its internal name only
	EmitFlagInternalName

	// Refer to the declaration by its local name only
	EmitFlagLocalName

	// Refer to the declaration by its export name only
	EmitFlagExportName

	// Print the node on a new line
	EmitFlagStartsOnNewLine
)

func (flags EmitFlags) Has(flag EmitFlags) bool {
	return (flags & flag) != 0
}

type NodeMeta struct {
	Range logger.Range

	// The node this one was derived from, if any. This is an index into the same
	// table and never keeps the original node alive on its own.
	Original ast.Index32

	Flags EmitFlags

	// Purely synthetic nodes have no position in the source text
	HasRange bool
}

// Every node of one tree gets a slot in this table when it's created. Nothing
// in here is safe to use from multiple goroutines at once. Each tree owns its
// own table.
type NodeTable struct {
	metas []NodeMeta
}

func (table *NodeTable) Alloc() ast.Index32 {
	table.metas = append(table.metas, NodeMeta{})
	return ast.MakeIndex32(uint32(len(table.metas) - 1))
}

func (table *NodeTable) Len() int {
	return len(table.metas)
}

func (table *NodeTable) slot(node ast.Index32) *NodeMeta {
	if !node.IsValid() {
		panic("Internal error: node has no slot in the node table")
	}
	return &table.metas[node.GetIndex()]
}

func (table *NodeTable) Meta(node ast.Index32) NodeMeta {
	return *table.slot(node)
}

// This is used when building a tree from source text
func (table *NodeTable) SetRange(node ast.Index32, r logger.Range) {
	meta := table.slot(node)
	meta.Range = r
	meta.HasRange = true
}

// Copies the range of "source" onto "node", replacing any range "node" already
// had. A source without a range leaves "node" without one too.
func (table *NodeTable) SetTextRange(node ast.Index32, source ast.Index32) {
	from := table.Meta(source)
	meta := table.slot(node)
	meta.Range = from.Range
	meta.HasRange = from.HasRange
}

// Records that "node" was derived from "original". Emit flags are not carried
// over.
func (table *NodeTable) SetOriginalNode(node ast.Index32, original ast.Index32) {
	if !original.IsValid() {
		panic("Internal error: missing original node")
	}
	table.slot(node).Original = original
}

func (table *NodeTable) AddEmitFlags(node ast.Index32, flags EmitFlags) {
	table.slot(node).Flags |= flags
}

func (table *NodeTable) EmitFlags(node ast.Index32) EmitFlags {
	return table.slot(node).Flags
}

func (table *NodeTable) Range(node ast.Index32) (logger.Range, bool) {
	meta := table.slot(node)
	return meta.Range, meta.HasRange
}

// Follows origin links back to the node from the parsed tree. A node that was
// never derived from anything is its own original.
func (table *NodeTable) GetOriginalNode(node ast.Index32) ast.Index32 {
	for {
		original := table.slot(node).Original
		if !original.IsValid() {
			return node
		}
		node = original
	}
}

func (table *NodeTable) StartsOnNewLine(node ast.Index32) bool {
	return table.slot(node).Flags.Has(EmitFlagStartsOnNewLine)
}
