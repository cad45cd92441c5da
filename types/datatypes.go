// Package types defines the shared, mutable type graph that inference
// works over: type nodes, pack nodes, the arena that allocates them,
// and helpers to resolve and render them.
package types

import (
	"fmt"
	"maps"
	"slices"
)

// lastNodeID hands out graph-wide node identities. Ids order cycle-guard
// pairs and name nodes in rendered output. The graph is single-threaded,
// so a plain counter is enough.
var lastNodeID uint64

func nextNodeID() uint64 {
	lastNodeID++
	return lastNodeID
}

// TypeId is the identity of one type node. Two TypeIds denote the same
// node exactly when the pointers are equal.
type TypeId = *Type

// Type is a node in the type graph. Its shape may be swapped wholesale
// (binding, commits) but the node itself never moves, so TypeIds held
// elsewhere stay valid across mutation.
type Type struct {
	shape      Shape
	persistent bool
	id         uint64
}

// MakeType wraps sh in a node value that is not registered in any arena.
// Arena.AddType is the normal allocation path; MakeType stages values
// that never join the graph.
func MakeType(sh Shape) Type {
	return Type{shape: sh}
}

func (t *Type) Shape() Shape     { return t.shape }
func (t *Type) ID() uint64       { return t.id }
func (t *Type) Persistent() bool { return t.persistent }

// Hash implements the go-set hasher contract.
func (t *Type) Hash() uint64 { return t.id }

// Clone returns a value holding a copy of t's shape. The variant payload
// is copied, the nodes it references are shared.
func (t *Type) Clone() Type {
	return Type{shape: cloneShape(t.shape), persistent: t.persistent, id: t.id}
}

// Reassign swaps t's shape for the one held by from. Identity and
// persistence are untouched.
func (t *Type) Reassign(from Type) {
	if t.persistent {
		panic(fmt.Sprintf("reassign of persistent type t%d", t.id))
	}
	t.shape = from.shape
}

// Shape is the tagged payload a type node holds: exactly one of the
// variant structs below. The set is sealed, so switches over it can be
// exhaustive.
type Shape interface {
	isShape()
}

// PrimitiveKind enumerates the irreducible runtime types.
type PrimitiveKind int

const (
	NilKind PrimitiveKind = iota
	BooleanKind
	NumberKind
	StringKind
	ThreadKind
)

func (k PrimitiveKind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BooleanKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ThreadKind:
		return "thread"
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int(k))
}

// PrimitiveType is an irreducible type such as number or string.
type PrimitiveType struct {
	Kind PrimitiveKind
}

// FreeType is an unsolved unification variable.
type FreeType struct {
	Level TypeLevel
	Scope *Scope
}

// GenericType is a variable quantified by some signature.
type GenericType struct {
	Name  string
	Level TypeLevel
	Scope *Scope
}

// BoundType is an alias link: the node now stands for BoundTo.
type BoundType struct {
	BoundTo TypeId
}

// TableState tracks how much of a table's shape is still negotiable.
type TableState int

const (
	TableUnsealed TableState = iota
	TableSealed
	TableFree
	TableGeneric
)

func (s TableState) String() string {
	switch s {
	case TableUnsealed:
		return "unsealed"
	case TableSealed:
		return "sealed"
	case TableFree:
		return "free"
	case TableGeneric:
		return "generic"
	}
	return fmt.Sprintf("TableState(%d)", int(s))
}

// TableIndexer types the keys and values a table accepts beyond its
// named properties.
type TableIndexer struct {
	IndexType       TypeId
	IndexResultType TypeId
}

// TableType is a record of named properties plus an optional indexer.
// Free tables carry the level they were created at.
type TableType struct {
	Props   map[string]TypeId
	Indexer *TableIndexer
	State   TableState
	Level   TypeLevel
	Scope   *Scope
}

// FunctionType relates an argument pack to a return pack.
type FunctionType struct {
	Level        TypeLevel
	Scope        *Scope
	ArgPack      TypePackId
	RetPack      TypePackId
	Generics     []TypeId
	GenericPacks []TypePackId
}

// AnyType is the dynamic top type.
type AnyType struct{}

// ErrorType marks a node the checker gave up on.
type ErrorType struct{}

func (*PrimitiveType) isShape() {}
func (*FreeType) isShape()      {}
func (*GenericType) isShape()   {}
func (*BoundType) isShape()     {}
func (*TableType) isShape()     {}
func (*FunctionType) isShape()  {}
func (*AnyType) isShape()       {}
func (*ErrorType) isShape()     {}

// cloneShape copies one variant payload. Container fields are copied one
// level deep so edits to the copy cannot leak into the source; the node
// references inside stay shared.
func cloneShape(sh Shape) Shape {
	switch v := sh.(type) {
	case *PrimitiveType:
		c := *v
		return &c
	case *FreeType:
		c := *v
		return &c
	case *GenericType:
		c := *v
		return &c
	case *BoundType:
		c := *v
		return &c
	case *TableType:
		c := *v
		c.Props = maps.Clone(v.Props)
		if v.Indexer != nil {
			ix := *v.Indexer
			c.Indexer = &ix
		}
		return &c
	case *FunctionType:
		c := *v
		c.Generics = slices.Clone(v.Generics)
		c.GenericPacks = slices.Clone(v.GenericPacks)
		return &c
	case *AnyType:
		return &AnyType{}
	case *ErrorType:
		return &ErrorType{}
	default:
		panic(fmt.Sprintf("unhandled shape %T", sh))
	}
}

// Get returns ty's shape as *T when it matches, nil when it does not.
// It panics when the node is an alias link, unless *T is BoundType
// itself: resolve with Follow before inspecting a node's own shape.
func Get[T any](ty TypeId) *T {
	return GetMutable[T](ty)
}

// GetMutable is Get with intent to write through the result.
func GetMutable[T any](ty TypeId) *T {
	if ty == nil {
		panic("GetMutable on a nil type")
	}
	if _, wantBound := any((*T)(nil)).(*BoundType); !wantBound {
		if b, isBound := ty.shape.(*BoundType); isBound {
			panic(fmt.Sprintf("getMutable on t%d, which is bound to t%d; Follow it first", ty.id, b.BoundTo.id))
		}
	}
	sh, _ := any(ty.shape).(*T)
	return sh
}

// Is reports whether ty's shape currently matches *T. Unlike Get it
// answers false for alias links instead of panicking.
func Is[T any](ty TypeId) bool {
	if ty == nil {
		return false
	}
	_, ok := any(ty.shape).(*T)
	return ok
}
