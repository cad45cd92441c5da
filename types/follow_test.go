package types

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFollowChain(t *testing.T) {
	arena := &Arena{}
	number := Builtins().NumberType
	b := arena.AddType(&BoundType{BoundTo: number})
	a := arena.AddType(&BoundType{BoundTo: b})

	assert.Same(t, number, Follow(a))
	assert.Same(t, number, Follow(b))
	assert.Same(t, number, Follow(number), "unbound nodes follow to themselves")
}

func TestFollowPackChain(t *testing.T) {
	arena := &Arena{}
	list := arena.AddTypePack(&ListPack{Head: []TypeId{Builtins().NumberType}})
	b := arena.AddTypePack(&BoundPack{BoundTo: list})
	a := arena.AddTypePack(&BoundPack{BoundTo: b})

	assert.Same(t, list, FollowPack(a))
	assert.Same(t, list, FollowPack(list))
}

func TestFollowCyclePanics(t *testing.T) {
	arena := &Arena{}
	a := arena.FreshType(TypeLevel{})
	b := arena.FreshType(TypeLevel{})
	a.Reassign(MakeType(&BoundType{BoundTo: b}))
	b.Reassign(MakeType(&BoundType{BoundTo: a}))

	assert.Panics(t, func() { Follow(a) })

	self := arena.FreshType(TypeLevel{})
	self.Reassign(MakeType(&BoundType{BoundTo: self}))
	assert.Panics(t, func() { Follow(self) })
}

func TestFollowLongChainTerminates(t *testing.T) {
	arena := &Arena{}
	end := Builtins().StringType
	cur := end
	for i := 0; i < 17; i++ {
		cur = arena.AddType(&BoundType{BoundTo: cur})
	}
	assert.Same(t, end, Follow(cur))
}

func TestFollowMapped(t *testing.T) {
	arena := &Arena{}
	number := Builtins().NumberType
	free := arena.FreshType(TypeLevel{})

	// a mapper that pretends free was already solved
	mapped := FollowMapped(free, func(ty TypeId) Shape {
		if ty == free {
			return &BoundType{BoundTo: number}
		}
		return ty.Shape()
	})
	assert.Same(t, number, mapped)
	assert.Same(t, free, Follow(free), "the plain view is unaffected")
}
