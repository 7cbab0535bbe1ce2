package kernel

import "github.com/veracruz-project/supervisionary/handle"

// typeFormerTable maps a TypeFormer handle to its declared arity. Entries
// are appended on registration and never mutated.
type typeFormerTable struct {
	arity map[handle.Handle]uint64
}

func newTypeFormerTable() typeFormerTable {
	return typeFormerTable{arity: make(map[handle.Handle]uint64)}
}

// register appends a fresh TypeFormer handle with the given arity.
func (s *State) registerTypeFormer(arity uint64) handle.Handle {
	h := s.alloc.Issue(handle.KindTypeFormer)
	s.typeFormers.arity[h] = arity
	return h
}

// ResolveTypeFormer returns the arity of h, or NoSuchTypeFormerRegistered.
func (s *State) ResolveTypeFormer(h handle.Handle) (uint64, ErrorCode) {
	a, ok := s.typeFormers.arity[h]
	if !ok {
		return 0, NoSuchTypeFormerRegistered
	}
	return a, Success
}

// IsTypeFormerRegistered is a total Boolean predicate.
func (s *State) IsTypeFormerRegistered(h handle.Handle) bool {
	_, ok := s.typeFormers.arity[h]
	return ok
}

// RegisterTypeFormer registers a fresh type former of the given arity.
func (s *State) RegisterTypeFormer(arity uint64) handle.Handle {
	return s.registerTypeFormer(arity)
}
