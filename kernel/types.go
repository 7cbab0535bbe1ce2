package kernel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veracruz-project/supervisionary/handle"
)

// TypeVariant tags which shape a Type takes.
type TypeVariant uint8

const (
	TypeVariantVariable TypeVariant = iota
	TypeVariantCombination
)

// Type is one of the two HOL type shapes: a named variable, or a
// type-former fully applied to a sequence of argument types.
type Type struct {
	Variant TypeVariant

	// Populated when Variant == TypeVariantVariable.
	Name Name

	// Populated when Variant == TypeVariantCombination.
	Former    handle.Handle
	Arguments []handle.Handle
}

func typeVariable(name Name) Type {
	return Type{Variant: TypeVariantVariable, Name: name}
}

func typeCombination(former handle.Handle, args []handle.Handle) Type {
	return Type{Variant: TypeVariantCombination, Former: former, Arguments: append([]handle.Handle(nil), args...)}
}

// key returns the structural interning key for tau: types are maximally
// shared, so two structurally-equal Type values always map to the same
// handle. Variable sharing is by name; Combination sharing is by former plus
// the exact argument handle sequence (child handles, not recursively
// expanded structure — since children are already interned, handle equality
// is sufficient).
func (t Type) key() string {
	var b strings.Builder
	switch t.Variant {
	case TypeVariantVariable:
		fmt.Fprintf(&b, "v:%d", t.Name)
	case TypeVariantCombination:
		fmt.Fprintf(&b, "c:%d", t.Former.Value)
		for _, a := range t.Arguments {
			fmt.Fprintf(&b, ",%d", a.Value)
		}
	}
	return b.String()
}

// typeTable is the interned table of Type values, addressed by handle.
type typeTable struct {
	byHandle map[handle.Handle]Type
	byKey    map[string]handle.Handle
}

func newTypeTable() typeTable {
	return typeTable{
		byHandle: make(map[handle.Handle]Type),
		byKey:    make(map[string]handle.Handle),
	}
}

// admitType interns tau, returning its (possibly pre-existing) handle. The
// caller must have already checked well-formedness (every child handle
// registered, arity correct).
func (s *State) admitType(tau Type) handle.Handle {
	k := tau.key()
	if h, ok := s.types.byKey[k]; ok {
		return h
	}
	h := s.alloc.Issue(handle.KindType)
	s.types.byHandle[h] = tau
	s.types.byKey[k] = h
	return h
}

// ResolveType returns the Type named by h, if registered.
func (s *State) ResolveType(h handle.Handle) (Type, bool) {
	t, ok := s.types.byHandle[h]
	return t, ok
}

// IsTypeRegistered reports whether h names a registered type.
func (s *State) IsTypeRegistered(h handle.Handle) bool {
	_, ok := s.types.byHandle[h]
	return ok
}

// RegisterTypeVariable is register-variable(name); idempotent on name.
func (s *State) RegisterTypeVariable(name Name) handle.Handle {
	return s.admitType(typeVariable(name))
}

// RegisterTypeCombination is register-combination(former, args).
func (s *State) RegisterTypeCombination(former handle.Handle, args []handle.Handle) (handle.Handle, ErrorCode) {
	arity, code := s.ResolveTypeFormer(former)
	if code != Success {
		return handle.Handle{}, code
	}
	for _, a := range args {
		if !s.IsTypeRegistered(a) {
			return handle.Handle{}, NoSuchTypeRegistered
		}
	}
	if uint64(len(args)) != arity {
		return handle.Handle{}, MismatchedArity
	}
	return s.admitType(typeCombination(former, args)), Success
}

// RegisterFunctionType is the register-function(dom, rng) convenience.
func (s *State) RegisterFunctionType(dom, rng handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsTypeRegistered(dom) || !s.IsTypeRegistered(rng) {
		return handle.Handle{}, NoSuchTypeRegistered
	}
	return s.admitType(typeCombination(handle.TypeFormerArrow, []handle.Handle{dom, rng})), Success
}

// SplitTypeVariable decomposes a type-variable type into its Name.
func (s *State) SplitTypeVariable(h handle.Handle) (Name, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return 0, NoSuchTypeRegistered
	}
	if tau.Variant != TypeVariantVariable {
		return 0, NotATypeVariable
	}
	return tau.Name, Success
}

// SplitTypeCombination decomposes a combination type into its former and
// argument handles.
func (s *State) SplitTypeCombination(h handle.Handle) (handle.Handle, []handle.Handle, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return handle.Handle{}, nil, NoSuchTypeRegistered
	}
	if tau.Variant != TypeVariantCombination {
		return handle.Handle{}, nil, NotATypeCombination
	}
	return tau.Former, tau.Arguments, Success
}

// SplitFunctionType decomposes a function type into (domain, range).
func (s *State) SplitFunctionType(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	former, args, code := s.SplitTypeCombination(h)
	if code != Success {
		if code == NotATypeCombination {
			return handle.Handle{}, handle.Handle{}, NotAFunctionType
		}
		return handle.Handle{}, handle.Handle{}, code
	}
	if former != handle.TypeFormerArrow || len(args) != 2 {
		return handle.Handle{}, handle.Handle{}, NotAFunctionType
	}
	return args[0], args[1], Success
}

// IsTypeVariableShape, IsTypeCombinationShape, IsFunctionTypeShape are the
// test-* shape predicates.
func (s *State) IsTypeVariableShape(h handle.Handle) (bool, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return false, NoSuchTypeRegistered
	}
	return tau.Variant == TypeVariantVariable, Success
}

func (s *State) IsTypeCombinationShape(h handle.Handle) (bool, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return false, NoSuchTypeRegistered
	}
	return tau.Variant == TypeVariantCombination, Success
}

func (s *State) IsFunctionTypeShape(h handle.Handle) (bool, ErrorCode) {
	_, _, code := s.SplitFunctionType(h)
	if code == Success {
		return true, Success
	}
	if code == NotAFunctionType {
		return false, Success
	}
	return false, code
}

// TypeSize returns the total node count of the type named by h.
func (s *State) TypeSize(h handle.Handle) (uint64, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return 0, NoSuchTypeRegistered
	}
	switch tau.Variant {
	case TypeVariantVariable:
		return 1, Success
	case TypeVariantCombination:
		total := uint64(1)
		for _, a := range tau.Arguments {
			sz, code := s.TypeSize(a)
			if code != Success {
				trapDanglingHandle()
			}
			total += sz
		}
		return total, Success
	}
	trapDanglingHandle()
	return 0, Success
}

// TypeVariables returns the deduplicated set of type-variable names
// occurring in the type named by h.
func (s *State) TypeVariables(h handle.Handle) ([]Name, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return nil, NoSuchTypeRegistered
	}
	seen := make(map[Name]struct{})
	var out []Name
	var walk func(Type)
	walk = func(t Type) {
		switch t.Variant {
		case TypeVariantVariable:
			if _, ok := seen[t.Name]; !ok {
				seen[t.Name] = struct{}{}
				out = append(out, t.Name)
			}
		case TypeVariantCombination:
			for _, a := range t.Arguments {
				child, ok := s.ResolveType(a)
				if !ok {
					trapDanglingHandle()
				}
				walk(child)
			}
		}
	}
	walk(tau)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, Success
}

// TypeSubstitution is a simultaneous, parallel map from type-variable Name
// to a replacement Type handle. Parallel application means there is no
// capture to worry about: types carry no binders.
type TypeSubstitution map[Name]handle.Handle

// SubstituteType applies sigma to the type named by h, returning the
// (interned) handle of the result.
func (s *State) SubstituteType(h handle.Handle, sigma TypeSubstitution) (handle.Handle, ErrorCode) {
	tau, ok := s.ResolveType(h)
	if !ok {
		return handle.Handle{}, NoSuchTypeRegistered
	}
	for _, replacement := range sigma {
		if !s.IsTypeRegistered(replacement) {
			return handle.Handle{}, NoSuchTypeRegistered
		}
	}
	return s.substituteTypeInner(tau, sigma), Success
}

func (s *State) substituteTypeInner(tau Type, sigma TypeSubstitution) handle.Handle {
	switch tau.Variant {
	case TypeVariantVariable:
		if replacement, ok := sigma[tau.Name]; ok {
			return replacement
		}
		return s.admitType(tau)
	case TypeVariantCombination:
		args := make([]handle.Handle, len(tau.Arguments))
		for i, a := range tau.Arguments {
			child, ok := s.ResolveType(a)
			if !ok {
				trapDanglingHandle()
			}
			args[i] = s.substituteTypeInner(child, sigma)
		}
		return s.admitType(typeCombination(tau.Former, args))
	}
	trapDanglingHandle()
	return handle.Handle{}
}
