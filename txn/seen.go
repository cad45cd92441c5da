package txn

import (
	"fmt"
	"github.com/theoparis/luau/types"
	"slices"
)

// typeOrPackId keys the cycle guard with either node kind. The two
// pointer types never compare equal to one another, so a type pair and
// a pack pair can never collide even when ids do.
type typeOrPackId interface {
	ID() uint64
}

type seenPair struct {
	first  typeOrPackId
	second typeOrPackId
}

// canonicalPair orders a pair by node id so that (a, b) and (b, a)
// name the same entry.
func canonicalPair(lhs, rhs typeOrPackId) seenPair {
	if lhs.ID() > rhs.ID() {
		return seenPair{first: rhs, second: lhs}
	}
	return seenPair{first: lhs, second: rhs}
}

// HaveSeen reports whether the pair is in flight on this log family's
// cycle-guard stack or on an ancestor family's.
func (l *Log) HaveSeen(lhs, rhs types.TypeId) bool {
	return l.haveSeen(lhs, rhs)
}

// HaveSeenPack is HaveSeen for pack nodes.
func (l *Log) HaveSeenPack(lhs, rhs types.TypePackId) bool {
	return l.haveSeen(lhs, rhs)
}

// PushSeen marks the pair in flight. Every push must be matched by a
// PopSeen of the same pair, innermost first.
func (l *Log) PushSeen(lhs, rhs types.TypeId) {
	l.pushSeen(lhs, rhs)
}

// PushSeenPack is PushSeen for pack nodes.
func (l *Log) PushSeenPack(lhs, rhs types.TypePackId) {
	l.pushSeen(lhs, rhs)
}

// PopSeen unmarks the most recently pushed pair, which must equal the
// pair given; unbalanced use panics.
func (l *Log) PopSeen(lhs, rhs types.TypeId) {
	l.popSeen(lhs, rhs)
}

// PopSeenPack is PopSeen for pack nodes.
func (l *Log) PopSeenPack(lhs, rhs types.TypePackId) {
	l.popSeen(lhs, rhs)
}

func (l *Log) haveSeen(lhs, rhs typeOrPackId) bool {
	pair := canonicalPair(lhs, rhs)
	if slices.Contains(*l.sharedSeen, pair) {
		return true
	}
	if l.parent != nil {
		return l.parent.haveSeen(lhs, rhs)
	}
	return false
}

func (l *Log) pushSeen(lhs, rhs typeOrPackId) {
	l.assertMutable()
	pair := canonicalPair(lhs, rhs)
	*l.sharedSeen = append(*l.sharedSeen, pair)
}

func (l *Log) popSeen(lhs, rhs typeOrPackId) {
	pair := canonicalPair(lhs, rhs)
	seen := *l.sharedSeen
	if len(seen) == 0 || seen[len(seen)-1] != pair {
		panic(fmt.Sprintf("popSeen out of order: pair (%d, %d) is not on top of the stack",
			pair.first.ID(), pair.second.ID()))
	}
	*l.sharedSeen = seen[:len(seen)-1]
}
