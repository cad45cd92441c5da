package types

import "github.com/benbjohnson/immutable"

// Scope is the lexical region a free type or pack belongs to. Bindings
// are persistent maps so child scopes can be forked without copying.
type Scope struct {
	parent   *Scope
	bindings *immutable.Map[string, TypeId]
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: immutable.NewMap[string, TypeId](nil),
	}
}

func (s *Scope) Parent() *Scope { return s.parent }

// Bind records name in this scope, shadowing any binding of the same
// name in an ancestor.
func (s *Scope) Bind(name string, ty TypeId) {
	s.bindings = s.bindings.Set(name, ty)
}

// Lookup resolves name here or in the closest ancestor that binds it.
func (s *Scope) Lookup(name string) (TypeId, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if ty, ok := sc.bindings.Get(name); ok {
			return ty, true
		}
	}
	return nil, false
}

// LookupLocal resolves name in this scope only.
func (s *Scope) LookupLocal(name string) (TypeId, bool) {
	return s.bindings.Get(name)
}

func (s *Scope) Len() int {
	return s.bindings.Len()
}
