package txn

import (
	"fmt"
	"github.com/theoparis/luau/types"
)

// Queue ensures ty has a pending entry in this log's own map and
// returns it. A new entry starts from the node's effective shape as
// seen through the log, so repeated edits stack instead of resetting.
// Ancestor maps are never written. Panics for persistent types.
func (l *Log) Queue(ty types.TypeId) *PendingType {
	l.assertMutable()
	if ty.Persistent() {
		panic(fmt.Sprintf("queued an edit against persistent type %s", types.ToString(ty)))
	}
	if p, ok := l.typeChanges[ty]; ok {
		return p
	}
	var p *PendingType
	if prior := l.Pending(ty); prior != nil {
		p = &PendingType{Pending: prior.Pending.Clone()}
	} else {
		p = &PendingType{Pending: ty.Clone()}
	}
	if l.typeChanges == nil {
		l.typeChanges = make(map[types.TypeId]*PendingType)
	}
	l.typeChanges[ty] = p
	return p
}

// QueuePack mirrors Queue for pack nodes.
func (l *Log) QueuePack(tp types.TypePackId) *PendingTypePack {
	l.assertMutable()
	if tp.Persistent() {
		panic(fmt.Sprintf("queued an edit against persistent pack %s", types.ToStringPack(tp)))
	}
	if p, ok := l.packChanges[tp]; ok {
		return p
	}
	var p *PendingTypePack
	if prior := l.PendingPack(tp); prior != nil {
		p = &PendingTypePack{Pending: prior.Pending.Clone()}
	} else {
		p = &PendingTypePack{Pending: tp.Clone()}
	}
	if l.packChanges == nil {
		l.packChanges = make(map[types.TypePackId]*PendingTypePack)
	}
	l.packChanges[tp] = p
	return p
}

// Replace queues ty and swaps its pending state for sh wholesale.
func (l *Log) Replace(ty types.TypeId, sh types.Shape) *PendingType {
	p := l.Queue(ty)
	p.Pending.Reassign(types.MakeType(sh))
	return p
}

// ReplacePack mirrors Replace for pack nodes.
func (l *Log) ReplacePack(tp types.TypePackId, sh types.PackShape) *PendingTypePack {
	p := l.QueuePack(tp)
	p.Pending.Reassign(types.MakeTypePack(sh))
	return p
}

// BindTable points table ty at target, so that once committed the node
// reads as an alias of target. With a nil target the pending entry
// instead holds ty's current table shape, unbound. Panics unless ty
// reads as a table through this log.
func (l *Log) BindTable(ty types.TypeId, target types.TypeId) *PendingType {
	if Get[types.TableType](l, ty) == nil {
		panic(fmt.Sprintf("bindTable on %s, which is not a table", types.ToString(ty)))
	}
	if target != nil {
		return l.Replace(ty, &types.BoundType{BoundTo: target})
	}
	return l.Queue(ty)
}

// ChangeLevel stamps a new level onto ty's pending shape. Free types,
// free or generic tables, and functions carry levels; any other shape
// is a contract violation.
func (l *Log) ChangeLevel(ty types.TypeId, newLevel types.TypeLevel) *PendingType {
	p := l.Queue(ty)
	switch v := p.Pending.Shape().(type) {
	case *types.FreeType:
		v.Level = newLevel
	case *types.TableType:
		if v.State != types.TableFree && v.State != types.TableGeneric {
			panic(fmt.Sprintf("changeLevel on a %s table", v.State))
		}
		v.Level = newLevel
	case *types.FunctionType:
		v.Level = newLevel
	default:
		panic(fmt.Sprintf("changeLevel on %s, which cannot carry a level", p))
	}
	return p
}

// ChangeLevelPack stamps a new level onto free pack tp.
func (l *Log) ChangeLevelPack(tp types.TypePackId, newLevel types.TypeLevel) *PendingTypePack {
	p := l.QueuePack(tp)
	v, ok := p.Pending.Shape().(*types.FreePack)
	if !ok {
		panic(fmt.Sprintf("changeLevel on %s, which is not a free pack", p))
	}
	v.Level = newLevel
	return p
}

// ChangeScope stamps a new owning scope onto ty's pending shape, under
// the same shape rules as ChangeLevel. scope must not be nil.
func (l *Log) ChangeScope(ty types.TypeId, scope *types.Scope) *PendingType {
	if scope == nil {
		panic("changeScope to a nil scope")
	}
	p := l.Queue(ty)
	switch v := p.Pending.Shape().(type) {
	case *types.FreeType:
		v.Scope = scope
	case *types.TableType:
		if v.State != types.TableFree && v.State != types.TableGeneric {
			panic(fmt.Sprintf("changeScope on a %s table", v.State))
		}
		v.Scope = scope
	case *types.FunctionType:
		v.Scope = scope
	default:
		panic(fmt.Sprintf("changeScope on %s, which cannot carry a scope", p))
	}
	return p
}

// ChangeScopePack stamps a new owning scope onto free pack tp.
func (l *Log) ChangeScopePack(tp types.TypePackId, scope *types.Scope) *PendingTypePack {
	if scope == nil {
		panic("changeScope to a nil scope")
	}
	p := l.QueuePack(tp)
	v, ok := p.Pending.Shape().(*types.FreePack)
	if !ok {
		panic(fmt.Sprintf("changeScope on %s, which is not a free pack", p))
	}
	v.Scope = scope
	return p
}

// ChangeIndexer swaps the indexer on table ty's pending shape; nil
// removes it. Panics when ty does not hold a table.
func (l *Log) ChangeIndexer(ty types.TypeId, indexer *types.TableIndexer) *PendingType {
	if indexer != nil {
		ix := *indexer
		indexer = &ix
	}
	p := l.Queue(ty)
	v, ok := p.Pending.Shape().(*types.TableType)
	if !ok {
		panic(fmt.Sprintf("changeIndexer on %s, which is not a table", p))
	}
	v.Indexer = indexer
	return p
}
