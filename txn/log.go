package txn

import (
	"github.com/theoparis/luau/internal/log"
	"github.com/theoparis/luau/types"
	"iter"
	"maps"
)

var logger = log.DefaultLogger.With("section", "txn")

// Log is a set of pending shape changes keyed by node identity, layered
// over the committed graph and optionally over a parent log. Queries
// prefer pending state over committed state; edits stay invisible to
// other readers until Commit. Dropping the log or calling Clear
// abandons the lot.
type Log struct {
	typeChanges map[types.TypeId]*PendingType
	packChanges map[types.TypePackId]*PendingTypePack

	parent *Log

	// sharedSeen points at the stack every log in this family pushes
	// cycle-guard pairs onto; for a root log it is &ownedSeen.
	sharedSeen *[]seenPair
	ownedSeen  []seenPair
}

// NewLog returns a root log with its own cycle-guard stack.
func NewLog() *Log {
	l := &Log{}
	l.sharedSeen = &l.ownedSeen
	return l
}

// NewChildLog returns a log that reads through parent for state it has
// not touched itself and shares parent's cycle-guard stack. Commit
// still writes to the graph, never to parent; fold a child into its
// parent with Concat.
func NewChildLog(parent *Log) *Log {
	if parent == nil {
		return NewLog()
	}
	return &Log{parent: parent, sharedSeen: parent.sharedSeen}
}

var emptyLog = NewLog()

// Empty returns the shared, permanently empty log. Passing it where a
// log is required means "read the committed graph as is"; mutating it
// panics.
func Empty() *Log {
	return emptyLog
}

func (l *Log) assertMutable() {
	if l == emptyLog {
		panic("mutation of the shared empty log")
	}
}

// Empty reports whether the log holds no pending entries of its own.
func (l *Log) Empty() bool {
	return len(l.typeChanges) == 0 && len(l.packChanges) == 0
}

// Commit applies every pending entry to its live node and empties the
// log. Entries land whole, in no particular order; entries for the
// same node cannot exist twice, so order never matters.
func (l *Log) Commit() {
	if !l.Empty() {
		logger.Debug("commit", "types", len(l.typeChanges), "packs", len(l.packChanges))
	}
	for ty, p := range l.typeChanges {
		ty.Reassign(p.Pending)
	}
	for tp, p := range l.packChanges {
		tp.Reassign(p.Pending)
	}
	l.Clear()
}

// Clear drops every pending entry without touching the graph.
func (l *Log) Clear() {
	l.typeChanges = nil
	l.packChanges = nil
}

// Concat moves every entry of rhs into l. Where both logs hold an entry
// for the same node, the entry from rhs wins. rhs is left empty.
func (l *Log) Concat(rhs *Log) {
	l.assertMutable()
	if rhs == l || rhs.Empty() {
		return
	}
	logger.Debug("concat", "types", len(rhs.typeChanges), "packs", len(rhs.packChanges))
	if len(rhs.typeChanges) > 0 {
		if l.typeChanges == nil {
			l.typeChanges = make(map[types.TypeId]*PendingType, len(rhs.typeChanges))
		}
		maps.Copy(l.typeChanges, rhs.typeChanges)
	}
	if len(rhs.packChanges) > 0 {
		if l.packChanges == nil {
			l.packChanges = make(map[types.TypePackId]*PendingTypePack, len(rhs.packChanges))
		}
		maps.Copy(l.packChanges, rhs.packChanges)
	}
	rhs.Clear()
}

// Inverse returns a fresh log whose entries snapshot the current
// committed state of every node l has pending changes for. Take it
// before committing l: committing the inverse afterwards undoes the
// commit, provided nothing else wrote those nodes in between. The
// inverse shares l's cycle-guard stack.
func (l *Log) Inverse() *Log {
	inv := &Log{sharedSeen: l.sharedSeen}
	if len(l.typeChanges) > 0 {
		inv.typeChanges = make(map[types.TypeId]*PendingType, len(l.typeChanges))
		for ty := range l.typeChanges {
			inv.typeChanges[ty] = &PendingType{Pending: ty.Clone()}
		}
	}
	if len(l.packChanges) > 0 {
		inv.packChanges = make(map[types.TypePackId]*PendingTypePack, len(l.packChanges))
		for tp := range l.packChanges {
			inv.packChanges[tp] = &PendingTypePack{Pending: tp.Clone()}
		}
	}
	return inv
}

// Changes iterates this log's own pending type entries, in no
// particular order. Ancestor entries are not included; fold them in
// explicitly with Concat if you want them.
func (l *Log) Changes() iter.Seq2[types.TypeId, *PendingType] {
	return maps.All(l.typeChanges)
}

// PackChanges mirrors Changes for pack entries.
func (l *Log) PackChanges() iter.Seq2[types.TypePackId, *PendingTypePack] {
	return maps.All(l.packChanges)
}
