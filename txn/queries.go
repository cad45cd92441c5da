package txn

import "github.com/theoparis/luau/types"

// Pending returns the entry for ty from this log, or from the nearest
// ancestor holding one, or nil. Mutate the result only when it came
// from the log you queued it on; writing through an ancestor's entry
// defeats the isolation a child log exists for.
func (l *Log) Pending(ty types.TypeId) *PendingType {
	for cur := l; cur != nil; cur = cur.parent {
		if p, ok := cur.typeChanges[ty]; ok {
			return p
		}
	}
	return nil
}

// PendingPack mirrors Pending for pack nodes.
func (l *Log) PendingPack(tp types.TypePackId) *PendingTypePack {
	for cur := l; cur != nil; cur = cur.parent {
		if p, ok := cur.packChanges[tp]; ok {
			return p
		}
	}
	return nil
}

// shape is the effective view of one node: pending state when the log
// family holds one, the committed shape otherwise.
func (l *Log) shape(ty types.TypeId) types.Shape {
	if p := l.Pending(ty); p != nil {
		return p.Pending.Shape()
	}
	return ty.Shape()
}

func (l *Log) packShape(tp types.TypePackId) types.PackShape {
	if p := l.PendingPack(tp); p != nil {
		return p.Pending.Shape()
	}
	return tp.Shape()
}

// Follow resolves alias links with every node viewed through the log's
// pending state, one hop at a time.
func (l *Log) Follow(ty types.TypeId) types.TypeId {
	return types.FollowMapped(ty, l.shape)
}

// FollowPack mirrors Follow for pack nodes.
func (l *Log) FollowPack(tp types.TypePackId) types.TypePackId {
	return types.FollowPackMapped(tp, l.packShape)
}

// Level reports the quantification level ty carries, viewed through
// the log. Free types, free or generic tables, and functions carry
// one; for everything else ok is false.
func (l *Log) Level(ty types.TypeId) (level types.TypeLevel, ok bool) {
	if v := Get[types.FreeType](l, ty); v != nil {
		return v.Level, true
	}
	if v := Get[types.TableType](l, ty); v != nil && (v.State == types.TableFree || v.State == types.TableGeneric) {
		return v.Level, true
	}
	if v := Get[types.FunctionType](l, ty); v != nil {
		return v.Level, true
	}
	return types.TypeLevel{}, false
}

// GetMutable returns ty's shape as *T, preferring the log family's
// pending state over the committed one, or nil on a shape mismatch.
// It panics when the effective shape is an alias link, unless *T is
// BoundType itself: resolve with Follow before inspecting a node.
func GetMutable[T any](l *Log, ty types.TypeId) *T {
	if p := l.Pending(ty); p != nil {
		return types.GetMutable[T](&p.Pending)
	}
	return types.GetMutable[T](ty)
}

// Get is GetMutable without intent to write; prefer it for reads.
func Get[T any](l *Log, ty types.TypeId) *T {
	return GetMutable[T](l, ty)
}

// Is reports whether ty's effective shape matches *T. It tolerates
// alias links, answering false instead of panicking.
func Is[T any](l *Log, ty types.TypeId) bool {
	if p := l.Pending(ty); p != nil {
		return types.Is[T](&p.Pending)
	}
	return types.Is[T](ty)
}

// GetMutablePack mirrors GetMutable for pack nodes.
func GetMutablePack[T any](l *Log, tp types.TypePackId) *T {
	if p := l.PendingPack(tp); p != nil {
		return types.GetMutablePack[T](&p.Pending)
	}
	return types.GetMutablePack[T](tp)
}

// GetPack mirrors Get for pack nodes.
func GetPack[T any](l *Log, tp types.TypePackId) *T {
	return GetMutablePack[T](l, tp)
}

// IsPack mirrors Is for pack nodes.
func IsPack[T any](l *Log, tp types.TypePackId) bool {
	if p := l.PendingPack(tp); p != nil {
		return types.IsPack[T](&p.Pending)
	}
	return types.IsPack[T](tp)
}
