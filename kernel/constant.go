package kernel

import "github.com/veracruz-project/supervisionary/handle"

// constantTable maps a Constant handle to the handle of its declared type.
// Unlike types and terms, constants are not interned by structure: each
// registration call always mints a fresh handle, even if an identical
// declared type was used before, matching the one-name-per-declaration model
// a constant-table entry represents.
type constantTable struct {
	declaredType map[handle.Handle]handle.Handle
}

func newConstantTable() constantTable {
	return constantTable{declaredType: make(map[handle.Handle]handle.Handle)}
}

// registerConstant declares a fresh constant whose type is tau.
func (s *State) registerConstant(tau handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsTypeRegistered(tau) {
		return handle.Handle{}, NoSuchTypeRegistered
	}
	h := s.alloc.Issue(handle.KindConstant)
	s.constants.declaredType[h] = tau
	return h, Success
}

// RegisterConstant is the public declare(tau) operation.
func (s *State) RegisterConstant(tau handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerConstant(tau)
}

// ResolveConstant returns the declared type of the constant named by h.
func (s *State) ResolveConstant(h handle.Handle) (handle.Handle, ErrorCode) {
	tau, ok := s.constants.declaredType[h]
	if !ok {
		return handle.Handle{}, NoSuchConstantRegistered
	}
	return tau, Success
}

// IsConstantRegistered is a total Boolean predicate.
func (s *State) IsConstantRegistered(h handle.Handle) bool {
	_, ok := s.constants.declaredType[h]
	return ok
}
