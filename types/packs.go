package types

import (
	"fmt"
	"slices"
)

// TypePackId is the identity of one pack node, with the same pointer
// identity rules as TypeId.
type TypePackId = *TypePack

// TypePack is a node in the graph of argument and return sequences.
type TypePack struct {
	shape      PackShape
	persistent bool
	id         uint64
}

// MakeTypePack mirrors MakeType for pack nodes.
func MakeTypePack(sh PackShape) TypePack {
	return TypePack{shape: sh}
}

func (tp *TypePack) Shape() PackShape { return tp.shape }
func (tp *TypePack) ID() uint64       { return tp.id }
func (tp *TypePack) Persistent() bool { return tp.persistent }

// Hash implements the go-set hasher contract.
func (tp *TypePack) Hash() uint64 { return tp.id }

func (tp *TypePack) Clone() TypePack {
	return TypePack{shape: clonePackShape(tp.shape), persistent: tp.persistent, id: tp.id}
}

func (tp *TypePack) Reassign(from TypePack) {
	if tp.persistent {
		panic(fmt.Sprintf("reassign of persistent pack tp%d", tp.id))
	}
	tp.shape = from.shape
}

// PackShape is the sealed variant payload of a pack node.
type PackShape interface {
	isPackShape()
}

// ListPack is a concrete sequence of types, optionally continued by a
// tail pack.
type ListPack struct {
	Head []TypeId
	Tail TypePackId
}

// FreePack is an unsolved pack variable.
type FreePack struct {
	Level TypeLevel
	Scope *Scope
}

// GenericPack is a pack variable quantified by some signature.
type GenericPack struct {
	Name  string
	Level TypeLevel
	Scope *Scope
}

// BoundPack is an alias link between pack nodes.
type BoundPack struct {
	BoundTo TypePackId
}

// VariadicPack repeats one element type indefinitely.
type VariadicPack struct {
	Ty TypeId
}

// ErrorPack marks a pack the checker gave up on.
type ErrorPack struct{}

func (*ListPack) isPackShape()     {}
func (*FreePack) isPackShape()     {}
func (*GenericPack) isPackShape()  {}
func (*BoundPack) isPackShape()    {}
func (*VariadicPack) isPackShape() {}
func (*ErrorPack) isPackShape()    {}

func clonePackShape(sh PackShape) PackShape {
	switch v := sh.(type) {
	case *ListPack:
		c := *v
		c.Head = slices.Clone(v.Head)
		return &c
	case *FreePack:
		c := *v
		return &c
	case *GenericPack:
		c := *v
		return &c
	case *BoundPack:
		c := *v
		return &c
	case *VariadicPack:
		c := *v
		return &c
	case *ErrorPack:
		return &ErrorPack{}
	default:
		panic(fmt.Sprintf("unhandled pack shape %T", sh))
	}
}

// GetPack mirrors Get for pack nodes.
func GetPack[T any](tp TypePackId) *T {
	return GetMutablePack[T](tp)
}

func GetMutablePack[T any](tp TypePackId) *T {
	if tp == nil {
		panic("GetMutablePack on a nil pack")
	}
	if _, wantBound := any((*T)(nil)).(*BoundPack); !wantBound {
		if b, isBound := tp.shape.(*BoundPack); isBound {
			panic(fmt.Sprintf("getMutable on tp%d, which is bound to tp%d; FollowPack it first", tp.id, b.BoundTo.id))
		}
	}
	sh, _ := any(tp.shape).(*T)
	return sh
}

func IsPack[T any](tp TypePackId) bool {
	if tp == nil {
		return false
	}
	_, ok := any(tp.shape).(*T)
	return ok
}
