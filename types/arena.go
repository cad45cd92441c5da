package types

import (
	"iter"
	"slices"
)

// Arena allocates graph nodes. Nodes live for the life of the arena;
// the transaction log mutates them in place and never frees them.
type Arena struct {
	types []TypeId
	packs []TypePackId
}

// AddType allocates a fresh node holding sh.
func (a *Arena) AddType(sh Shape) TypeId {
	ty := &Type{shape: sh, id: nextNodeID()}
	a.types = append(a.types, ty)
	return ty
}

// AddTypePack allocates a fresh pack node holding sh.
func (a *Arena) AddTypePack(sh PackShape) TypePackId {
	tp := &TypePack{shape: sh, id: nextNodeID()}
	a.packs = append(a.packs, tp)
	return tp
}

// FreshType allocates an unsolved type variable at level.
func (a *Arena) FreshType(level TypeLevel) TypeId {
	return a.AddType(&FreeType{Level: level})
}

// FreshTypeInScope allocates an unsolved type variable owned by scope.
func (a *Arena) FreshTypeInScope(level TypeLevel, scope *Scope) TypeId {
	return a.AddType(&FreeType{Level: level, Scope: scope})
}

// FreshTypePack allocates an unsolved pack variable at level.
func (a *Arena) FreshTypePack(level TypeLevel) TypePackId {
	return a.AddTypePack(&FreePack{Level: level})
}

// FreshTypePackInScope allocates an unsolved pack variable owned by scope.
func (a *Arena) FreshTypePackInScope(level TypeLevel, scope *Scope) TypePackId {
	return a.AddTypePack(&FreePack{Level: level, Scope: scope})
}

func (a *Arena) TypeCount() int { return len(a.types) }
func (a *Arena) PackCount() int { return len(a.packs) }

// Types iterates the arena's type nodes in allocation order.
func (a *Arena) Types() iter.Seq[TypeId] {
	return slices.Values(a.types)
}

// Packs iterates the arena's pack nodes in allocation order.
func (a *Arena) Packs() iter.Seq[TypePackId] {
	return slices.Values(a.packs)
}
