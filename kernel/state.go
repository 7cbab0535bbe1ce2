package kernel

import "github.com/veracruz-project/supervisionary/handle"

// State is the runtime state of the kernel: the handle allocator plus the
// five object tables (type-formers, types, constants, terms, theorems) that
// the host-call dispatcher manipulates on a guest's behalf. A State is not
// safe for concurrent use; a session (package session) owns exactly one and
// serializes access to it behind the guest's single thread of execution.
type State struct {
	alloc       *handle.Allocator
	typeFormers typeFormerTable
	types       typeTable
	constants   constantTable
	terms       termTable
	theorems    theoremTable
}

// NewState builds a runtime state with the primitive prefix (handles 0-27:
// the Prop and arrow type-formers; the alpha/beta/Prop/predicate/connective/
// quantifier types; the nine logical constants; and the nine constants
// lifted to terms at their declared type) already installed, matching the
// pre-allocated handle assignment in package handle.
func NewState() *State {
	s := &State{
		alloc:       handle.NewAllocator(),
		typeFormers: newTypeFormerTable(),
		types:       newTypeTable(),
		constants:   newConstantTable(),
		terms:       newTermTable(),
		theorems:    newTheoremTable(),
	}

	s.installTypeFormers()
	s.installTypes()
	s.installConstants()
	s.installTerms()

	return s
}

func (s *State) installTypeFormers() {
	s.typeFormers.arity[handle.TypeFormerProp] = 0
	s.typeFormers.arity[handle.TypeFormerArrow] = 2
}

func (s *State) installTypes() {
	put := func(h handle.Handle, tau Type) {
		s.types.byHandle[h] = tau
		s.types.byKey[tau.key()] = h
	}

	put(handle.TypeAlpha, typeVariable(0))
	put(handle.TypeBeta, typeVariable(1))
	put(handle.TypeProp, typeCombination(handle.TypeFormerProp, nil))
	put(handle.TypeUnaryConnective, typeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeProp, handle.TypeProp}))
	put(handle.TypeBinaryConnective, typeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeProp, handle.TypeUnaryConnective}))
	put(handle.TypeUnaryPredicate, typeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeAlpha, handle.TypeProp}))
	put(handle.TypeBinaryPredicate, typeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeAlpha, handle.TypeUnaryPredicate}))
	put(handle.TypePolymorphicQuant, typeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeUnaryPredicate, handle.TypeProp}))
}

func (s *State) installConstants() {
	put := func(h, tau handle.Handle) { s.constants.declaredType[h] = tau }

	put(handle.ConstantTrue, handle.TypeProp)
	put(handle.ConstantFalse, handle.TypeProp)
	put(handle.ConstantNegation, handle.TypeUnaryConnective)
	put(handle.ConstantConjunction, handle.TypeBinaryConnective)
	put(handle.ConstantDisjunction, handle.TypeBinaryConnective)
	put(handle.ConstantImplication, handle.TypeBinaryConnective)
	put(handle.ConstantForall, handle.TypePolymorphicQuant)
	put(handle.ConstantExists, handle.TypePolymorphicQuant)
	put(handle.ConstantEquality, handle.TypeBinaryPredicate)
}

func (s *State) installTerms() {
	put := func(h, constant handle.Handle) { s.terms.byHandle[h] = termConstant(constant) }

	put(handle.TermTrue, handle.ConstantTrue)
	put(handle.TermFalse, handle.ConstantFalse)
	put(handle.TermNegation, handle.ConstantNegation)
	put(handle.TermConjunction, handle.ConstantConjunction)
	put(handle.TermDisjunction, handle.ConstantDisjunction)
	put(handle.TermImplication, handle.ConstantImplication)
	put(handle.TermEquality, handle.ConstantEquality)
	put(handle.TermForall, handle.ConstantForall)
	put(handle.TermExists, handle.ConstantExists)
}
