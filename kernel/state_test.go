package kernel

import (
	"testing"

	"github.com/veracruz-project/supervisionary/handle"
)

func TestNewState_InstallsPrimitivePrefix(t *testing.T) {
	s := NewState()

	if !s.IsTypeFormerRegistered(handle.TypeFormerProp) {
		t.Error("Prop type-former not pre-registered")
	}
	if !s.IsTypeFormerRegistered(handle.TypeFormerArrow) {
		t.Error("arrow type-former not pre-registered")
	}
	if !s.IsTypeRegistered(handle.TypeProp) {
		t.Error("Prop type not pre-registered")
	}
	if !s.IsConstantRegistered(handle.ConstantTrue) {
		t.Error("True constant not pre-registered")
	}
	if !s.IsTermRegistered(handle.TermTrue) {
		t.Error("True term not pre-registered")
	}
}

func TestRegisterTypeVariable_Interns(t *testing.T) {
	s := NewState()

	a := s.RegisterTypeVariable(0)
	b := s.RegisterTypeVariable(0)
	if a != b {
		t.Errorf("two registrations of the same type variable produced distinct handles: %v, %v", a, b)
	}

	c := s.RegisterTypeVariable(1)
	if c == a {
		t.Error("distinct type variable names were interned to the same handle")
	}
}

func TestRegisterTypeCombination_RejectsArityMismatch(t *testing.T) {
	s := NewState()

	_, code := s.RegisterTypeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeProp})
	if code != MismatchedArity {
		t.Errorf("expected MismatchedArity, got %v", code)
	}

	h, code := s.RegisterTypeCombination(handle.TypeFormerArrow, []handle.Handle{handle.TypeProp, handle.TypeProp})
	if code != Success {
		t.Fatalf("RegisterTypeCombination: %v", code)
	}
	if !s.IsTypeRegistered(h) {
		t.Error("registered combination type not marked registered")
	}
}

func TestRegisterVariable_InternsByNameAndType(t *testing.T) {
	s := NewState()

	x1, code := s.RegisterVariable(0, handle.TypeProp)
	if code != Success {
		t.Fatalf("RegisterVariable: %v", code)
	}
	x2, code := s.RegisterVariable(0, handle.TypeProp)
	if code != Success {
		t.Fatalf("RegisterVariable: %v", code)
	}
	if x1 != x2 {
		t.Errorf("same-name same-type variables were not interned: %v, %v", x1, x2)
	}

	y, code := s.RegisterVariable(1, handle.TypeProp)
	if code != Success {
		t.Fatalf("RegisterVariable: %v", code)
	}
	if y == x1 {
		t.Error("distinct variable names were interned to the same term")
	}
}

func TestLambdaAlphaEquivalence(t *testing.T) {
	s := NewState()

	// \x:Prop. x  and  \y:Prop. y  differ only in their bound name and
	// must be alpha-equivalent.
	x, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)
	lamX, code := s.RegisterLambda(0, handle.TypeProp, x)
	mustSuccess(t, code)

	y, code := s.RegisterVariable(1, handle.TypeProp)
	mustSuccess(t, code)
	lamY, code := s.RegisterLambda(1, handle.TypeProp, y)
	mustSuccess(t, code)

	equiv, code := s.IsAlphaEquivalent(lamX, lamY)
	mustSuccess(t, code)
	if !equiv {
		t.Error("\\x. x and \\y. y should be alpha-equivalent")
	}
}

func TestLambdaAlphaEquivalence_Interning(t *testing.T) {
	s := NewState()

	// Registering the same lambda shape twice, even under different bound
	// names, must intern to the same handle: registration itself performs
	// the alpha-equivalence check the original's linear scan specifies.
	x, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)
	lamX, code := s.RegisterLambda(0, handle.TypeProp, x)
	mustSuccess(t, code)

	y, code := s.RegisterVariable(1, handle.TypeProp)
	mustSuccess(t, code)
	lamY, code := s.RegisterLambda(1, handle.TypeProp, y)
	mustSuccess(t, code)

	if lamX != lamY {
		t.Errorf("registering an alpha-equivalent lambda under a different bound name produced a new handle: %v, %v", lamX, lamY)
	}
}

func TestFreeVariables(t *testing.T) {
	s := NewState()

	x, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)
	lam, code := s.RegisterLambda(0, handle.TypeProp, x)
	mustSuccess(t, code)

	free, code := s.FreeVariables(lam)
	mustSuccess(t, code)
	if len(free) != 0 {
		t.Errorf("\\x. x should have no free variables, got %v", free)
	}

	y, code := s.RegisterVariable(1, handle.TypeProp)
	mustSuccess(t, code)
	free, code = s.FreeVariables(y)
	mustSuccess(t, code)
	if len(free) != 1 || free[0] != 1 {
		t.Errorf("expected {1}, got %v", free)
	}
}

func TestSubstituteTerm_CaptureAvoiding(t *testing.T) {
	s := NewState()

	// \y:Prop. x  with  x := y  must rename the bound y to avoid capturing
	// the substituted-in free y.
	x, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)
	y, code := s.RegisterVariable(1, handle.TypeProp)
	mustSuccess(t, code)
	lam, code := s.RegisterLambda(1, handle.TypeProp, x)
	mustSuccess(t, code)

	result, code := s.SubstituteTerm(lam, TermSubstitution{0: y})
	mustSuccess(t, code)

	name, _, body, code := s.SplitLambda(result)
	mustSuccess(t, code)
	if name == 1 {
		t.Error("substitution captured the bound variable instead of renaming it")
	}

	bodyName, _, code := s.SplitVariable(body)
	mustSuccess(t, code)
	if bodyName != 1 {
		t.Errorf("expected substituted body to reference the original free variable (name 1), got %v", bodyName)
	}
}

func TestConjunctionIntroductionAndElimination(t *testing.T) {
	s := NewState()

	p, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)
	q, code := s.RegisterVariable(1, handle.TypeProp)
	mustSuccess(t, code)

	thmP, code := s.RegisterAssumption(p)
	mustSuccess(t, code)
	thmQ, code := s.RegisterAssumption(q)
	mustSuccess(t, code)

	conj, code := s.RegisterConjunctionIntroduction(thmP, thmQ)
	mustSuccess(t, code)

	conclusion, code := s.SplitConclusion(conj)
	mustSuccess(t, code)
	isConj, code := s.IsConjunctionShape(conclusion)
	mustSuccess(t, code)
	if !isConj {
		t.Error("conjunction introduction's conclusion is not shaped p /\\ q")
	}

	left, code := s.RegisterConjunctionLeftElimination(conj)
	mustSuccess(t, code)
	leftConclusion, code := s.SplitConclusion(left)
	mustSuccess(t, code)
	equiv, code := s.IsAlphaEquivalent(leftConclusion, p)
	mustSuccess(t, code)
	if !equiv {
		t.Error("conjunction-left-elimination did not recover p")
	}

	hyps, code := s.SplitHypotheses(conj)
	mustSuccess(t, code)
	if len(hyps) != 2 {
		t.Errorf("expected 2 hypotheses (p, q), got %d", len(hyps))
	}
}

func TestReflexivity(t *testing.T) {
	s := NewState()

	x, code := s.RegisterVariable(0, handle.TypeProp)
	mustSuccess(t, code)

	thm, code := s.RegisterReflexivity(x)
	mustSuccess(t, code)

	conclusion, code := s.SplitConclusion(thm)
	mustSuccess(t, code)
	isEq, code := s.IsEqualityShape(conclusion)
	mustSuccess(t, code)
	if !isEq {
		t.Error("reflexivity's conclusion is not shaped t = t")
	}

	left, right, code := s.SplitEquality(conclusion)
	mustSuccess(t, code)
	if left != x || right != x {
		t.Errorf("expected t = t for t = %v, got %v = %v", x, left, right)
	}

	hyps, code := s.SplitHypotheses(thm)
	mustSuccess(t, code)
	if len(hyps) != 0 {
		t.Errorf("reflexivity should have no hypotheses, got %v", hyps)
	}
}

func TestErrorCode_EncodeDecodeRoundTrip(t *testing.T) {
	for code := Success; code < errorCodeUpperBound; code++ {
		wire := code.Encode()
		decoded, ok := DecodeErrorCode(wire)
		if !ok {
			t.Fatalf("DecodeErrorCode(%d) reported not-ok for a valid code %v", wire, code)
		}
		if decoded != code {
			t.Errorf("round trip mismatch: %v -> %d -> %v", code, wire, decoded)
		}
	}

	if _, ok := DecodeErrorCode(-1); ok {
		t.Error("DecodeErrorCode(-1) should report not-ok")
	}
	if _, ok := DecodeErrorCode(int32(errorCodeUpperBound)); ok {
		t.Error("DecodeErrorCode(upperBound) should report not-ok")
	}
}

func mustSuccess(t *testing.T, code ErrorCode) {
	t.Helper()
	if code != Success {
		t.Fatalf("expected Success, got %v", code)
	}
}
