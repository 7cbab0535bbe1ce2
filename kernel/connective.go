package kernel

import "github.com/veracruz-project/supervisionary/handle"

// This file builds the derived logical connectives and quantifiers out of
// the nine primitive constants and the bare Application/Lambda
// constructors: none of negation, conjunction, disjunction, implication,
// equality, forall, or exists adds any new term shape. Each is instead a
// canonical encoding that the split-*/test-* accessors below recognize and
// invert.

// nameAlpha is the name under which the "alpha" type-variable is registered
// (handle.TypeAlpha), used to instantiate polymorphic constants.
const nameAlpha Name = 0

// RegisterNegation constructs ¬p.
func (s *State) RegisterNegation(p handle.Handle) (handle.Handle, ErrorCode) {
	return s.RegisterApplication(handle.TermNegation, p)
}

// RegisterConjunction constructs p ∧ q.
func (s *State) RegisterConjunction(p, q handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerBinaryConnective(handle.TermConjunction, p, q)
}

// RegisterDisjunction constructs p ∨ q.
func (s *State) RegisterDisjunction(p, q handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerBinaryConnective(handle.TermDisjunction, p, q)
}

// RegisterImplication constructs p ⇒ q.
func (s *State) RegisterImplication(p, q handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerBinaryConnective(handle.TermImplication, p, q)
}

func (s *State) registerBinaryConnective(connective, p, q handle.Handle) (handle.Handle, ErrorCode) {
	partial, code := s.RegisterApplication(connective, p)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.RegisterApplication(partial, q)
}

// RegisterEquality constructs left = right, instantiating the polymorphic
// equality constant at the inferred type of left.
func (s *State) RegisterEquality(left, right handle.Handle) (handle.Handle, ErrorCode) {
	tau, code := s.InferType(left)
	if code != Success {
		return handle.Handle{}, code
	}
	eq, code := s.RegisterConstantAtConstrainedType(handle.ConstantEquality, TypeSubstitution{nameAlpha: tau})
	if code != Success {
		return handle.Handle{}, code
	}
	return s.registerBinaryConnective(eq, left, right)
}

// RegisterForall constructs ∀(name : tau). body, where body names the
// predicate's instantiated body term (not yet abstracted over name).
func (s *State) RegisterForall(name Name, tau, body handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerQuantifier(handle.ConstantForall, name, tau, body)
}

// RegisterExists constructs ∃(name : tau). body.
func (s *State) RegisterExists(name Name, tau, body handle.Handle) (handle.Handle, ErrorCode) {
	return s.registerQuantifier(handle.ConstantExists, name, tau, body)
}

func (s *State) registerQuantifier(constant handle.Handle, name Name, tau, body handle.Handle) (handle.Handle, ErrorCode) {
	predicate, code := s.RegisterLambda(name, tau, body)
	if code != Success {
		return handle.Handle{}, code
	}
	quantifier, code := s.RegisterConstantAtConstrainedType(constant, TypeSubstitution{nameAlpha: tau})
	if code != Success {
		return handle.Handle{}, code
	}
	return s.RegisterApplication(quantifier, predicate)
}

// SplitNegation decomposes ¬p into p.
func (s *State) SplitNegation(h handle.Handle) (handle.Handle, ErrorCode) {
	left, right, code := s.SplitApplication(h)
	if code != Success {
		if code == NotAnApplication {
			return handle.Handle{}, NotANegation
		}
		return handle.Handle{}, code
	}
	if !s.isConstantUseOf(left, handle.ConstantNegation) {
		return handle.Handle{}, NotANegation
	}
	return right, Success
}

func (s *State) splitBinaryConnective(h handle.Handle, constant handle.Handle, mismatch ErrorCode) (handle.Handle, handle.Handle, ErrorCode) {
	partial, right, code := s.SplitApplication(h)
	if code != Success {
		if code == NotAnApplication {
			return handle.Handle{}, handle.Handle{}, mismatch
		}
		return handle.Handle{}, handle.Handle{}, code
	}
	head, left, code := s.SplitApplication(partial)
	if code != Success {
		if code == NotAnApplication {
			return handle.Handle{}, handle.Handle{}, mismatch
		}
		return handle.Handle{}, handle.Handle{}, code
	}
	if !s.isConstantUseOf(head, constant) {
		return handle.Handle{}, handle.Handle{}, mismatch
	}
	return left, right, Success
}

// SplitConjunction decomposes p ∧ q into (p, q).
func (s *State) SplitConjunction(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	return s.splitBinaryConnective(h, handle.ConstantConjunction, NotAConjunction)
}

// SplitDisjunction decomposes p ∨ q into (p, q).
func (s *State) SplitDisjunction(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	return s.splitBinaryConnective(h, handle.ConstantDisjunction, NotADisjunction)
}

// SplitImplication decomposes p ⇒ q into (p, q).
func (s *State) SplitImplication(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	return s.splitBinaryConnective(h, handle.ConstantImplication, NotAnImplication)
}

// SplitEquality decomposes left = right into (left, right).
func (s *State) SplitEquality(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	return s.splitBinaryConnective(h, handle.ConstantEquality, NotAnEquality)
}

func (s *State) splitQuantifier(h handle.Handle, constant handle.Handle, mismatch ErrorCode) (Name, handle.Handle, handle.Handle, ErrorCode) {
	head, predicate, code := s.SplitApplication(h)
	if code != Success {
		if code == NotAnApplication {
			return 0, handle.Handle{}, handle.Handle{}, mismatch
		}
		return 0, handle.Handle{}, handle.Handle{}, code
	}
	if !s.isConstantUseOf(head, constant) {
		return 0, handle.Handle{}, handle.Handle{}, mismatch
	}
	name, tau, body, code := s.SplitLambda(predicate)
	if code != Success {
		if code == NotALambda {
			return 0, handle.Handle{}, handle.Handle{}, mismatch
		}
		return 0, handle.Handle{}, handle.Handle{}, code
	}
	return name, tau, body, Success
}

// SplitForall decomposes ∀(name : tau). body into (name, tau, body).
func (s *State) SplitForall(h handle.Handle) (Name, handle.Handle, handle.Handle, ErrorCode) {
	return s.splitQuantifier(h, handle.ConstantForall, NotAForall)
}

// SplitExists decomposes ∃(name : tau). body into (name, tau, body).
func (s *State) SplitExists(h handle.Handle) (Name, handle.Handle, handle.Handle, ErrorCode) {
	return s.splitQuantifier(h, handle.ConstantExists, NotAnExists)
}

func (s *State) isConstantUseOf(h, constant handle.Handle) bool {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		trapDanglingHandle()
	}
	return trm.Variant == TermVariantConstant && trm.ConstantHandle == constant
}

// shapeFromMismatch turns a split-* result into a total Boolean shape test:
// success means true, the split's own mismatch code means false, and any
// other error (a dangling or unregistered handle) propagates.
func shapeFromMismatch(code, mismatch ErrorCode) (bool, ErrorCode) {
	switch code {
	case Success:
		return true, Success
	case mismatch:
		return false, Success
	default:
		return false, code
	}
}

func (s *State) IsNegationShape(h handle.Handle) (bool, ErrorCode) {
	_, code := s.SplitNegation(h)
	return shapeFromMismatch(code, NotANegation)
}

func (s *State) IsConjunctionShape(h handle.Handle) (bool, ErrorCode) {
	_, _, code := s.SplitConjunction(h)
	return shapeFromMismatch(code, NotAConjunction)
}

func (s *State) IsDisjunctionShape(h handle.Handle) (bool, ErrorCode) {
	_, _, code := s.SplitDisjunction(h)
	return shapeFromMismatch(code, NotADisjunction)
}

func (s *State) IsImplicationShape(h handle.Handle) (bool, ErrorCode) {
	_, _, code := s.SplitImplication(h)
	return shapeFromMismatch(code, NotAnImplication)
}

func (s *State) IsEqualityShape(h handle.Handle) (bool, ErrorCode) {
	_, _, code := s.SplitEquality(h)
	return shapeFromMismatch(code, NotAnEquality)
}

func (s *State) IsForallShape(h handle.Handle) (bool, ErrorCode) {
	_, _, _, code := s.SplitForall(h)
	return shapeFromMismatch(code, NotAForall)
}

func (s *State) IsExistsShape(h handle.Handle) (bool, ErrorCode) {
	_, _, _, code := s.SplitExists(h)
	return shapeFromMismatch(code, NotAnExists)
}
