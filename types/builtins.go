package types

// BuiltinTypes holds the singleton nodes every checker run shares.
// They are persistent: the transaction log refuses edits against them,
// so aliasing them across modules is safe.
type BuiltinTypes struct {
	NumberType    TypeId
	StringType    TypeId
	BooleanType   TypeId
	NilType       TypeId
	ThreadType    TypeId
	AnyType       TypeId
	ErrorType     TypeId
	AnyTypePack   TypePackId
	ErrorTypePack TypePackId
}

var builtins = newBuiltinTypes()

// Builtins returns the shared singleton table.
func Builtins() *BuiltinTypes {
	return builtins
}

func newBuiltinTypes() *BuiltinTypes {
	var arena Arena
	b := &BuiltinTypes{}
	b.NumberType = arena.AddType(&PrimitiveType{Kind: NumberKind})
	b.StringType = arena.AddType(&PrimitiveType{Kind: StringKind})
	b.BooleanType = arena.AddType(&PrimitiveType{Kind: BooleanKind})
	b.NilType = arena.AddType(&PrimitiveType{Kind: NilKind})
	b.ThreadType = arena.AddType(&PrimitiveType{Kind: ThreadKind})
	b.AnyType = arena.AddType(&AnyType{})
	b.ErrorType = arena.AddType(&ErrorType{})
	b.AnyTypePack = arena.AddTypePack(&VariadicPack{Ty: b.AnyType})
	b.ErrorTypePack = arena.AddTypePack(&ErrorPack{})
	for ty := range arena.Types() {
		ty.persistent = true
	}
	for tp := range arena.Packs() {
		tp.persistent = true
	}
	return b
}
