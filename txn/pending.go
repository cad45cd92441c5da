// Package txn implements a transaction log of pending edits against
// the shared type graph. Speculative inference queues shape changes
// here and reads its own writes back through the log; a finished
// attempt commits them to the graph in one pass or throws them away.
package txn

import "github.com/theoparis/luau/types"

// PendingType is the not-yet-committed state proposed for one type
// node. It holds a full node value: commit copies the shape onto the
// live node wholesale.
//
// Pending values live only until their log commits or clears; do not
// retain them across either.
type PendingType struct {
	Pending types.Type
}

func (p *PendingType) String() string {
	return types.ToString(&p.Pending)
}

// Dump renders the pending state and everything it reaches in long
// form.
func (p *PendingType) Dump() string {
	return types.Dump(&p.Pending)
}

// PendingTypePack is PendingType for pack nodes.
type PendingTypePack struct {
	Pending types.TypePack
}

func (p *PendingTypePack) String() string {
	return types.ToStringPack(&p.Pending)
}

func (p *PendingTypePack) Dump() string {
	return types.DumpPack(&p.Pending)
}
