package types

import (
	"fmt"
	set "github.com/hashicorp/go-set/v3"
	"maps"
	"slices"
	"strings"
)

// ToString renders ty compactly, following alias links and cutting
// cycles with t<id> references.
func ToString(ty TypeId) string {
	s := newStringifier()
	s.writeType(ty)
	return s.sb.String()
}

// ToStringPack renders tp the way ToString renders types.
func ToStringPack(tp TypePackId) string {
	s := newStringifier()
	s.writePack(tp)
	return s.sb.String()
}

type stringifier struct {
	sb            strings.Builder
	visiting      *set.HashSet[TypeId, uint64]
	visitingPacks *set.HashSet[TypePackId, uint64]
}

func newStringifier() *stringifier {
	return &stringifier{
		visiting:      set.NewHashSet[TypeId, uint64](8),
		visitingPacks: set.NewHashSet[TypePackId, uint64](8),
	}
}

func (s *stringifier) writeType(ty TypeId) {
	ty = Follow(ty)
	if s.visiting.Contains(ty) {
		fmt.Fprintf(&s.sb, "t%d", ty.id)
		return
	}
	s.visiting.Insert(ty)
	defer s.visiting.Remove(ty)

	switch v := ty.shape.(type) {
	case *PrimitiveType:
		s.sb.WriteString(v.Kind.String())
	case *FreeType:
		fmt.Fprintf(&s.sb, "'t%d", ty.id)
	case *GenericType:
		if v.Name != "" {
			s.sb.WriteString(v.Name)
		} else {
			fmt.Fprintf(&s.sb, "g%d", ty.id)
		}
	case *BoundType:
		s.writeType(v.BoundTo)
	case *TableType:
		s.writeTable(v)
	case *FunctionType:
		s.sb.WriteString("(")
		s.writePack(v.ArgPack)
		s.sb.WriteString(") -> ")
		s.writeReturnPack(v.RetPack)
	case *AnyType:
		s.sb.WriteString("any")
	case *ErrorType:
		s.sb.WriteString("*error-type*")
	default:
		panic(fmt.Sprintf("unhandled shape %T", v))
	}
}

func (s *stringifier) writeTable(v *TableType) {
	left, right := "{", "}"
	switch v.State {
	case TableUnsealed:
		left, right = "{|", "|}"
	case TableFree:
		left, right = "{-", "-}"
	}
	s.sb.WriteString(left)
	first := true
	for _, name := range slices.Sorted(maps.Keys(v.Props)) {
		if !first {
			s.sb.WriteString(",")
		}
		first = false
		fmt.Fprintf(&s.sb, " %s: ", name)
		s.writeType(v.Props[name])
	}
	if v.Indexer != nil {
		if !first {
			s.sb.WriteString(",")
		}
		first = false
		s.sb.WriteString(" [")
		s.writeType(v.Indexer.IndexType)
		s.sb.WriteString("]: ")
		s.writeType(v.Indexer.IndexResultType)
	}
	if !first {
		s.sb.WriteString(" ")
	}
	s.sb.WriteString(right)
}

func (s *stringifier) writePack(tp TypePackId) {
	tp = FollowPack(tp)
	if s.visitingPacks.Contains(tp) {
		fmt.Fprintf(&s.sb, "tp%d", tp.id)
		return
	}
	s.visitingPacks.Insert(tp)
	defer s.visitingPacks.Remove(tp)

	switch v := tp.shape.(type) {
	case *ListPack:
		first := true
		for _, ty := range v.Head {
			if !first {
				s.sb.WriteString(", ")
			}
			first = false
			s.writeType(ty)
		}
		if v.Tail != nil {
			if tail := FollowPack(v.Tail); !isEmptyListPack(tail) {
				if !first {
					s.sb.WriteString(", ")
				}
				s.writePack(tail)
			}
		}
	case *FreePack:
		fmt.Fprintf(&s.sb, "'tp%d...", tp.id)
	case *GenericPack:
		if v.Name != "" {
			s.sb.WriteString(v.Name + "...")
		} else {
			fmt.Fprintf(&s.sb, "gp%d...", tp.id)
		}
	case *BoundPack:
		s.writePack(v.BoundTo)
	case *VariadicPack:
		s.sb.WriteString("...")
		s.writeType(v.Ty)
	case *ErrorPack:
		s.sb.WriteString("*error-pack*")
	default:
		panic(fmt.Sprintf("unhandled pack shape %T", v))
	}
}

// writeReturnPack prints a single return type bare and everything else
// parenthesised.
func (s *stringifier) writeReturnPack(tp TypePackId) {
	r := FollowPack(tp)
	if lp, ok := r.shape.(*ListPack); ok && len(lp.Head) == 1 && lp.Tail == nil {
		s.writeType(lp.Head[0])
		return
	}
	s.sb.WriteString("(")
	s.writePack(r)
	s.sb.WriteString(")")
}

func isEmptyListPack(tp TypePackId) bool {
	lp, ok := tp.shape.(*ListPack)
	return ok && len(lp.Head) == 0 && lp.Tail == nil
}

// Dump renders ty and every node reachable from it, one node per line,
// shapes kept shallow with t<id> references. Meant for debugging and
// the dump subcommand.
func Dump(ty TypeId) string {
	d := newDumper()
	d.refType(ty)
	return d.run()
}

// DumpPack is Dump rooted at a pack node.
func DumpPack(tp TypePackId) string {
	d := newDumper()
	d.refPack(tp)
	return d.run()
}

type dumper struct {
	sb        strings.Builder
	seenTypes *set.HashSet[TypeId, uint64]
	seenPacks *set.HashSet[TypePackId, uint64]
	typeQueue []TypeId
	packQueue []TypePackId
}

func newDumper() *dumper {
	return &dumper{
		seenTypes: set.NewHashSet[TypeId, uint64](8),
		seenPacks: set.NewHashSet[TypePackId, uint64](8),
	}
}

func (d *dumper) refType(ty TypeId) string {
	if !d.seenTypes.Contains(ty) {
		d.seenTypes.Insert(ty)
		d.typeQueue = append(d.typeQueue, ty)
	}
	return fmt.Sprintf("t%d", ty.id)
}

func (d *dumper) refPack(tp TypePackId) string {
	if !d.seenPacks.Contains(tp) {
		d.seenPacks.Insert(tp)
		d.packQueue = append(d.packQueue, tp)
	}
	return fmt.Sprintf("tp%d", tp.id)
}

func (d *dumper) run() string {
	for len(d.typeQueue) > 0 || len(d.packQueue) > 0 {
		for len(d.typeQueue) > 0 {
			ty := d.typeQueue[0]
			d.typeQueue = d.typeQueue[1:]
			d.typeLine(ty)
		}
		for len(d.packQueue) > 0 {
			tp := d.packQueue[0]
			d.packQueue = d.packQueue[1:]
			d.packLine(tp)
		}
	}
	return d.sb.String()
}

func (d *dumper) typeLine(ty TypeId) {
	fmt.Fprintf(&d.sb, "t%d = ", ty.id)
	switch v := ty.shape.(type) {
	case *PrimitiveType:
		d.sb.WriteString(v.Kind.String())
	case *FreeType:
		fmt.Fprintf(&d.sb, "free(level %s)", v.Level)
	case *GenericType:
		if v.Name != "" {
			fmt.Fprintf(&d.sb, "generic %s", v.Name)
		} else {
			d.sb.WriteString("generic")
		}
	case *BoundType:
		fmt.Fprintf(&d.sb, "bound -> %s", d.refType(v.BoundTo))
	case *TableType:
		fmt.Fprintf(&d.sb, "table{state: %s", v.State)
		if v.State == TableFree || v.State == TableGeneric {
			fmt.Fprintf(&d.sb, ", level: %s", v.Level)
		}
		if len(v.Props) > 0 {
			d.sb.WriteString(", props: {")
			for i, name := range slices.Sorted(maps.Keys(v.Props)) {
				if i > 0 {
					d.sb.WriteString(", ")
				}
				fmt.Fprintf(&d.sb, "%s: %s", name, d.refType(v.Props[name]))
			}
			d.sb.WriteString("}")
		}
		if v.Indexer != nil {
			fmt.Fprintf(&d.sb, ", indexer: [%s]: %s",
				d.refType(v.Indexer.IndexType), d.refType(v.Indexer.IndexResultType))
		}
		d.sb.WriteString("}")
	case *FunctionType:
		fmt.Fprintf(&d.sb, "fn(args: %s, ret: %s, level: %s)",
			d.refPack(v.ArgPack), d.refPack(v.RetPack), v.Level)
	case *AnyType:
		d.sb.WriteString("any")
	case *ErrorType:
		d.sb.WriteString("*error-type*")
	default:
		panic(fmt.Sprintf("unhandled shape %T", v))
	}
	d.sb.WriteString("\n")
}

func (d *dumper) packLine(tp TypePackId) {
	fmt.Fprintf(&d.sb, "tp%d = ", tp.id)
	switch v := tp.shape.(type) {
	case *ListPack:
		d.sb.WriteString("pack[")
		for i, ty := range v.Head {
			if i > 0 {
				d.sb.WriteString(", ")
			}
			d.sb.WriteString(d.refType(ty))
		}
		if v.Tail != nil {
			fmt.Fprintf(&d.sb, " | %s", d.refPack(v.Tail))
		}
		d.sb.WriteString("]")
	case *FreePack:
		fmt.Fprintf(&d.sb, "free-pack(level %s)", v.Level)
	case *GenericPack:
		if v.Name != "" {
			fmt.Fprintf(&d.sb, "generic-pack %s", v.Name)
		} else {
			d.sb.WriteString("generic-pack")
		}
	case *BoundPack:
		fmt.Fprintf(&d.sb, "bound -> %s", d.refPack(v.BoundTo))
	case *VariadicPack:
		fmt.Fprintf(&d.sb, "variadic %s", d.refType(v.Ty))
	case *ErrorPack:
		d.sb.WriteString("*error-pack*")
	default:
		panic(fmt.Sprintf("unhandled pack shape %T", v))
	}
	d.sb.WriteString("\n")
}
