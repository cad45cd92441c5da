package txn

import (
	"github.com/stretchr/testify/assert"
	"github.com/theoparis/luau/types"
	"testing"
)

func freshTable(arena *types.Arena) types.TypeId {
	return arena.AddType(&types.TableType{
		Props: map[string]types.TypeId{},
		State: types.TableUnsealed,
	})
}

func TestEditsInvisibleUntilCommit(t *testing.T) {
	arena := &types.Arena{}
	number := types.Builtins().NumberType
	free := arena.FreshType(types.TypeLevel{Level: 1})

	l := NewLog()
	l.Replace(free, &types.BoundType{BoundTo: number})

	assert.True(t, types.Is[types.FreeType](free), "committed graph must be untouched")
	assert.True(t, Is[types.BoundType](l, free))
	assert.Same(t, number, l.Follow(free))
	assert.Same(t, free, types.Follow(free))

	l.Commit()

	assert.True(t, types.Is[types.BoundType](free))
	assert.Same(t, number, types.Follow(free))
	assert.True(t, l.Empty())
}

func TestClearAbandonsEdits(t *testing.T) {
	arena := &types.Arena{}
	free := arena.FreshType(types.TypeLevel{Level: 1})

	l := NewLog()
	l.Replace(free, &types.AnyType{})
	l.Clear()
	l.Commit()

	assert.True(t, types.Is[types.FreeType](free))
}

func TestCommitLandsAllEntriesWhole(t *testing.T) {
	arena := &types.Arena{}
	number := types.Builtins().NumberType
	x := arena.FreshType(types.TypeLevel{})
	y := arena.FreshType(types.TypeLevel{})

	l := NewLog()
	l.Replace(x, &types.BoundType{BoundTo: y})
	l.Replace(y, &types.BoundType{BoundTo: number})
	l.Commit()

	assert.Same(t, number, types.Follow(x))
	assert.Same(t, number, types.Follow(y))
}

func TestCommitOnEmptyLogIsNoOp(t *testing.T) {
	l := NewLog()
	l.Commit()
	l.Clear()
	l.Commit()
	assert.True(t, l.Empty())
}

func TestInverseUndoesCommit(t *testing.T) {
	arena := &types.Arena{}
	number := types.Builtins().NumberType
	free := arena.FreshType(types.TypeLevel{Level: 3})

	l := NewLog()
	l.Replace(free, &types.BoundType{BoundTo: number})

	undo := l.Inverse()
	l.Commit()
	assert.True(t, types.Is[types.BoundType](free))

	undo.Commit()
	freeShape := types.Get[types.FreeType](free)
	if assert.NotNil(t, freeShape, "the inverse must restore the pre-commit shape") {
		assert.Equal(t, types.TypeLevel{Level: 3}, freeShape.Level)
	}
}

func TestInverseSharesSeenStack(t *testing.T) {
	arena := &types.Arena{}
	a := arena.FreshType(types.TypeLevel{})
	b := arena.FreshType(types.TypeLevel{})

	l := NewLog()
	l.Replace(a, &types.AnyType{})
	inv := l.Inverse()
	assert.Same(t, l.sharedSeen, inv.sharedSeen)

	l.PushSeen(a, b)
	assert.True(t, inv.HaveSeen(a, b))
	inv.PopSeen(a, b)
	assert.False(t, l.HaveSeen(a, b))
}

func TestConcatPrefersDonorEntries(t *testing.T) {
	arena := &types.Arena{}
	b := types.Builtins()
	free := arena.FreshType(types.TypeLevel{})

	parent := NewLog()
	child := NewChildLog(parent)
	parent.Replace(free, &types.BoundType{BoundTo: b.NumberType})
	child.Replace(free, &types.BoundType{BoundTo: b.StringType})

	parent.Concat(child)

	assert.True(t, child.Empty(), "concat consumes the donor")
	assert.Same(t, b.StringType, parent.Follow(free))

	parent.Commit()
	assert.Same(t, b.StringType, types.Follow(free))
}

func TestConcatMovesPackEntries(t *testing.T) {
	arena := &types.Arena{}
	fp := arena.FreshTypePack(types.TypeLevel{})

	donor := NewLog()
	donor.ReplacePack(fp, &types.ErrorPack{})

	l := NewLog()
	l.Concat(donor)

	assert.True(t, donor.Empty())
	assert.True(t, IsPack[types.ErrorPack](l, fp))
	assert.True(t, types.IsPack[types.FreePack](fp), "nothing committed yet")
}

func TestChangesListsOwnEntries(t *testing.T) {
	arena := &types.Arena{}
	b := types.Builtins()
	x := arena.FreshType(types.TypeLevel{})
	fp := arena.FreshTypePack(types.TypeLevel{})

	l := NewLog()
	l.Replace(x, &types.BoundType{BoundTo: b.NumberType})
	l.ReplacePack(fp, &types.ErrorPack{})

	var tys []types.TypeId
	for ty, p := range l.Changes() {
		tys = append(tys, ty)
		assert.Same(t, l.Pending(ty), p)
	}
	assert.Equal(t, []types.TypeId{x}, tys)

	var tps []types.TypePackId
	for tp, p := range l.PackChanges() {
		tps = append(tps, tp)
		assert.Same(t, l.PendingPack(tp), p)
	}
	assert.Equal(t, []types.TypePackId{fp}, tps)
}

func TestEmptyLogRejectsMutation(t *testing.T) {
	arena := &types.Arena{}
	free := arena.FreshType(types.TypeLevel{})

	assert.Panics(t, func() { Empty().Queue(free) })
	assert.Panics(t, func() { Empty().Concat(NewLog()) })
	assert.Panics(t, func() { Empty().PushSeen(free, free) })

	// reads fall through to the committed graph
	assert.Nil(t, Empty().Pending(free))
	assert.True(t, Is[types.FreeType](Empty(), free))
	assert.Same(t, free, Empty().Follow(free))
	assert.False(t, Empty().HaveSeen(free, free))
	assert.True(t, Empty().Empty())
}

func TestChildReadsThroughParent(t *testing.T) {
	arena := &types.Arena{}
	number := types.Builtins().NumberType
	free := arena.FreshType(types.TypeLevel{})

	parent := NewLog()
	parent.Replace(free, &types.BoundType{BoundTo: number})
	child := NewChildLog(parent)

	assert.NotNil(t, child.Pending(free))
	assert.True(t, Is[types.BoundType](child, free))
	assert.Same(t, number, child.Follow(free))

	assert.True(t, child.Empty(), "the entry belongs to parent, not child")
	for range child.Changes() {
		t.Fatal("child must not report ancestor entries as its own")
	}
}

func TestChildPrefersOwnEntry(t *testing.T) {
	arena := &types.Arena{}
	b := types.Builtins()
	free := arena.FreshType(types.TypeLevel{})

	parent := NewLog()
	parent.Replace(free, &types.BoundType{BoundTo: b.NumberType})
	child := NewChildLog(parent)
	child.Replace(free, &types.BoundType{BoundTo: b.StringType})

	assert.Same(t, b.StringType, child.Follow(free))
	assert.Same(t, b.NumberType, parent.Follow(free), "parent still sees its own entry")
}

func TestChildCommitSkipsParentEntries(t *testing.T) {
	arena := &types.Arena{}
	b := types.Builtins()
	freeA := arena.FreshType(types.TypeLevel{})
	freeB := arena.FreshType(types.TypeLevel{})

	parent := NewLog()
	parent.Replace(freeA, &types.BoundType{BoundTo: b.NumberType})
	child := NewChildLog(parent)
	child.Replace(freeB, &types.BoundType{BoundTo: b.StringType})

	child.Commit()

	assert.True(t, types.Is[types.BoundType](freeB))
	assert.True(t, types.Is[types.FreeType](freeA), "parent entries must not ride along with a child commit")
	assert.False(t, parent.Empty())
}

func TestNewChildLogOfNilIsRoot(t *testing.T) {
	l := NewChildLog(nil)
	assert.Nil(t, l.parent)
	assert.NotNil(t, l.sharedSeen)
}

func TestSelfConcatIsANoOp(t *testing.T) {
	arena := &types.Arena{}
	free := arena.FreshType(types.TypeLevel{})

	l := NewLog()
	l.Replace(free, &types.AnyType{})
	l.Concat(l)

	assert.False(t, l.Empty())
	assert.True(t, Is[types.AnyType](l, free))
}
