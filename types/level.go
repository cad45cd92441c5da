package types

import "fmt"

// TypeLevel orders quantification scopes: smaller levels belong to
// enclosing scopes, larger levels to nested ones. SubLevel tells apart
// sibling scopes opened while the same level is still live.
type TypeLevel struct {
	Level    int
	SubLevel int
}

// Subsumes reports whether l belongs to an equal or larger scope than rhs.
func (l TypeLevel) Subsumes(rhs TypeLevel) bool {
	if l.Level < rhs.Level {
		return true
	}
	if l.Level > rhs.Level {
		return false
	}
	return l.SubLevel == rhs.SubLevel
}

// SubsumesStrict reports whether l belongs to a strictly larger scope
// than rhs.
func (l TypeLevel) SubsumesStrict(rhs TypeLevel) bool {
	return l.Level < rhs.Level || (l.Level == rhs.Level && l.SubLevel < rhs.SubLevel)
}

// Increment returns the level of a scope nested directly inside l.
func (l TypeLevel) Increment() TypeLevel {
	return TypeLevel{Level: l.Level + 1}
}

// MinLevel returns whichever of a and b belongs to the larger scope.
func MinLevel(a, b TypeLevel) TypeLevel {
	if a.Subsumes(b) {
		return a
	}
	return b
}

// MaxLevel returns whichever of a and b belongs to the smaller scope.
func MaxLevel(a, b TypeLevel) TypeLevel {
	if a.Subsumes(b) {
		return b
	}
	return a
}

func (l TypeLevel) String() string {
	return fmt.Sprintf("(%d, %d)", l.Level, l.SubLevel)
}
