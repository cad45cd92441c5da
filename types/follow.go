package types

// Follow resolves alias links until it reaches a node that is not
// bound. It panics on a cycle of alias links: the graph may be cyclic
// through containers, never through bindings.
func Follow(ty TypeId) TypeId {
	return FollowMapped(ty, func(t TypeId) Shape { return t.shape })
}

// FollowMapped is Follow with every node viewed through mapper first.
// The transaction log uses it to resolve links through pending states.
func FollowMapped(ty TypeId, mapper func(TypeId) Shape) TypeId {
	return followChain(ty, func(t TypeId) (TypeId, bool) {
		if b, ok := mapper(t).(*BoundType); ok {
			return b.BoundTo, true
		}
		return nil, false
	})
}

// FollowPack resolves alias links between pack nodes.
func FollowPack(tp TypePackId) TypePackId {
	return FollowPackMapped(tp, func(t TypePackId) PackShape { return t.shape })
}

// FollowPackMapped is FollowPack with every node viewed through mapper
// first.
func FollowPackMapped(tp TypePackId, mapper func(TypePackId) PackShape) TypePackId {
	return followChain(tp, func(t TypePackId) (TypePackId, bool) {
		if b, ok := mapper(t).(*BoundPack); ok {
			return b.BoundTo, true
		}
		return nil, false
	})
}

// followChain walks the alias chain with a second cursor at double
// stride. Once the fast cursor falls off the end the chain is known
// finite and the cycle check stops.
func followChain[T comparable](start T, advance func(T) (T, bool)) T {
	t := start

	fast, ok := advance(start)
	if !ok {
		return start
	}
	checking := true

	for {
		next, ok := advance(t)
		if !ok {
			return t
		}
		t = next

		if checking {
			f1, ok := advance(fast)
			if !ok {
				checking = false
				continue
			}
			f2, ok := advance(f1)
			if !ok {
				checking = false
				continue
			}
			fast = f2
			if t == fast {
				panic("follow detected a cycle of bound nodes")
			}
		}
	}
}
