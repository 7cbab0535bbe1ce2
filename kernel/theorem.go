package kernel

import (
	"sort"

	"github.com/veracruz-project/supervisionary/handle"
)

// Theorem is a conclusion term together with the set of hypothesis terms it
// depends on. Kernel code never stores a proof object or a justification
// for how a Theorem was derived: the only functions that can ever construct
// one are the primitive inference rules below, so the mere existence of a
// handle pointing to a Theorem is itself the proof.
type Theorem struct {
	Hypotheses []handle.Handle
	Conclusion handle.Handle
}

type theoremTable struct {
	byHandle map[handle.Handle]Theorem
}

func newTheoremTable() theoremTable {
	return theoremTable{byHandle: make(map[handle.Handle]Theorem)}
}

// admitTheorem always mints a fresh handle: theorems are not interned, since
// sharing them buys nothing beyond what hypothesis/conclusion sharing
// already provides.
func (s *State) admitTheorem(hyps []handle.Handle, conclusion handle.Handle) handle.Handle {
	h := s.alloc.Issue(handle.KindTheorem)
	s.theorems.byHandle[h] = Theorem{Hypotheses: sortDedupHandles(hyps), Conclusion: conclusion}
	return h
}

// ResolveTheorem returns the Theorem named by h, if registered.
func (s *State) ResolveTheorem(h handle.Handle) (Theorem, bool) {
	t, ok := s.theorems.byHandle[h]
	return t, ok
}

// IsTheoremRegistered reports whether h names a registered theorem.
func (s *State) IsTheoremRegistered(h handle.Handle) bool {
	_, ok := s.theorems.byHandle[h]
	return ok
}

func (s *State) mustResolveTheorem(h handle.Handle) Theorem {
	t, ok := s.ResolveTheorem(h)
	if !ok {
		trapDanglingHandle()
	}
	return t
}

func sortDedupHandles(in []handle.Handle) []handle.Handle {
	cp := append([]handle.Handle(nil), in...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Value < cp[j].Value })
	out := cp[:0]
	for i, h := range cp {
		if i == 0 || h != cp[i-1] {
			out = append(out, h)
		}
	}
	return out
}

func unionHandles(a, b []handle.Handle) []handle.Handle {
	return sortDedupHandles(append(append([]handle.Handle(nil), a...), b...))
}

func removeHandle(set []handle.Handle, h handle.Handle) []handle.Handle {
	out := make([]handle.Handle, 0, len(set))
	for _, x := range set {
		if x != h {
			out = append(out, x)
		}
	}
	return out
}

// TheoremSize returns the number of hypotheses of the theorem named by h,
// plus one for its conclusion.
func (s *State) TheoremSize(h handle.Handle) (uint64, ErrorCode) {
	thm, ok := s.ResolveTheorem(h)
	if !ok {
		return 0, NoSuchTheoremRegistered
	}
	return uint64(len(thm.Hypotheses)) + 1, Success
}

// SplitConclusion returns the conclusion term handle of the theorem named
// by h.
func (s *State) SplitConclusion(h handle.Handle) (handle.Handle, ErrorCode) {
	thm, ok := s.ResolveTheorem(h)
	if !ok {
		return handle.Handle{}, NoSuchTheoremRegistered
	}
	return thm.Conclusion, Success
}

// SplitHypotheses returns the sorted, deduplicated hypothesis term handles
// of the theorem named by h.
func (s *State) SplitHypotheses(h handle.Handle) ([]handle.Handle, ErrorCode) {
	thm, ok := s.ResolveTheorem(h)
	if !ok {
		return nil, NoSuchTheoremRegistered
	}
	return append([]handle.Handle(nil), thm.Hypotheses...), Success
}

func (s *State) requireProposition(term handle.Handle) ErrorCode {
	ok, code := s.IsProposition(term)
	if code != Success {
		return code
	}
	if !ok {
		return NotAProposition
	}
	return Success
}

// RegisterAssumption is the Assumption axiom: for any proposition p, {p} |- p.
func (s *State) RegisterAssumption(p handle.Handle) (handle.Handle, ErrorCode) {
	if code := s.requireProposition(p); code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem([]handle.Handle{p}, p), Success
}

// RegisterWeaken adds an extra hypothesis to an already-proved theorem
// without changing its conclusion: Gamma |- p and q a proposition gives
// Gamma, q |- p.
func (s *State) RegisterWeaken(extra, thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	if code := s.requireProposition(extra); code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(append(append([]handle.Handle(nil), t.Hypotheses...), extra), t.Conclusion), Success
}

// RegisterReflexivity is the Reflexivity axiom: |- t = t, for any
// well-typed term t.
func (s *State) RegisterReflexivity(t handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsTermRegistered(t) {
		return handle.Handle{}, NoSuchTermRegistered
	}
	eq, code := s.RegisterEquality(t, t)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(nil, eq), Success
}

// RegisterSymmetry turns Gamma |- l = r into Gamma |- r = l.
func (s *State) RegisterSymmetry(thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	left, right, code := s.SplitEquality(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	eq, code := s.RegisterEquality(right, left)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, eq), Success
}

// RegisterTransitivity combines Gamma1 |- l = m and Gamma2 |- m' = r into
// Gamma1, Gamma2 |- l = r, provided m and m' are alpha-equivalent.
func (s *State) RegisterTransitivity(left, right handle.Handle) (handle.Handle, ErrorCode) {
	lt := s.mustResolveTheorem(left)
	rt := s.mustResolveTheorem(right)
	l, m0, code := s.SplitEquality(lt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	m1, r, code := s.SplitEquality(rt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	equiv, code := s.IsAlphaEquivalent(m0, m1)
	if code != Success {
		return handle.Handle{}, code
	}
	if !equiv {
		return handle.Handle{}, ShapeMismatch
	}
	eq, code := s.RegisterEquality(l, r)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(unionHandles(lt.Hypotheses, rt.Hypotheses), eq), Success
}

// RegisterCongruenceApplication combines Gamma1 |- f = g and Gamma2 |- x = y
// into Gamma1, Gamma2 |- f x = g y.
func (s *State) RegisterCongruenceApplication(fnThm, argThm handle.Handle) (handle.Handle, ErrorCode) {
	ft := s.mustResolveTheorem(fnThm)
	at := s.mustResolveTheorem(argThm)
	f, g, code := s.SplitEquality(ft.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	x, y, code := s.SplitEquality(at.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	left, code := s.RegisterApplication(f, x)
	if code != Success {
		return handle.Handle{}, code
	}
	right, code := s.RegisterApplication(g, y)
	if code != Success {
		return handle.Handle{}, code
	}
	eq, code := s.RegisterEquality(left, right)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(unionHandles(ft.Hypotheses, at.Hypotheses), eq), Success
}

// RegisterCongruenceLambda turns Gamma |- l = r into
// Gamma |- (\name:tau. l) = (\name:tau. r), provided name is not free in
// Gamma.
func (s *State) RegisterCongruenceLambda(name Name, tau, thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	for _, hyp := range t.Hypotheses {
		fv, code := s.FreeVariables(hyp)
		if code != Success {
			return handle.Handle{}, code
		}
		for _, n := range fv {
			if n == name {
				return handle.Handle{}, ShapeMismatch
			}
		}
	}
	l, r, code := s.SplitEquality(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	lLambda, code := s.RegisterLambda(name, tau, l)
	if code != Success {
		return handle.Handle{}, code
	}
	rLambda, code := s.RegisterLambda(name, tau, r)
	if code != Success {
		return handle.Handle{}, code
	}
	eq, code := s.RegisterEquality(lLambda, rLambda)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, eq), Success
}

// RegisterBeta is the Beta axiom: |- (\name:tau. body) arg = body[name := arg].
func (s *State) RegisterBeta(redex handle.Handle) (handle.Handle, ErrorCode) {
	left, arg, code := s.SplitApplication(redex)
	if code != Success {
		return handle.Handle{}, code
	}
	name, _, body, code := s.SplitLambda(left)
	if code != Success {
		if code == NotALambda {
			return handle.Handle{}, ShapeMismatch
		}
		return handle.Handle{}, code
	}
	reduced, code := s.SubstituteTerm(body, TermSubstitution{name: arg})
	if code != Success {
		return handle.Handle{}, code
	}
	eq, code := s.RegisterEquality(redex, reduced)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(nil, eq), Success
}

// RegisterEta is the Eta axiom: |- (\name:tau. f name) = f, provided name is
// not free in f.
func (s *State) RegisterEta(lambdaTerm handle.Handle) (handle.Handle, ErrorCode) {
	name, _, body, code := s.SplitLambda(lambdaTerm)
	if code != Success {
		return handle.Handle{}, code
	}
	f, arg, code := s.SplitApplication(body)
	if code != Success {
		if code == NotAnApplication {
			return handle.Handle{}, ShapeMismatch
		}
		return handle.Handle{}, code
	}
	argName, _, code := s.SplitVariable(arg)
	if code != Success || argName != name {
		return handle.Handle{}, ShapeMismatch
	}
	fv, code := s.FreeVariables(f)
	if code != Success {
		return handle.Handle{}, code
	}
	for _, n := range fv {
		if n == name {
			return handle.Handle{}, ShapeMismatch
		}
	}
	eq, code := s.RegisterEquality(lambdaTerm, f)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(nil, eq), Success
}

// RegisterSubstitute applies a capture-avoiding term substitution to every
// hypothesis and the conclusion of thm.
func (s *State) RegisterSubstitute(thm handle.Handle, sigma TermSubstitution) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	hyps := make([]handle.Handle, len(t.Hypotheses))
	for i, hyp := range t.Hypotheses {
		h, code := s.SubstituteTerm(hyp, sigma)
		if code != Success {
			return handle.Handle{}, code
		}
		hyps[i] = h
	}
	conclusion, code := s.SubstituteTerm(t.Conclusion, sigma)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(hyps, conclusion), Success
}

// RegisterTypeSubstitute applies a type substitution to every hypothesis
// and the conclusion of thm.
func (s *State) RegisterTypeSubstitute(thm handle.Handle, sigma TypeSubstitution) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	hyps := make([]handle.Handle, len(t.Hypotheses))
	for i, hyp := range t.Hypotheses {
		h, code := s.SubstituteTypeInTerm(hyp, sigma)
		if code != Success {
			return handle.Handle{}, code
		}
		hyps[i] = h
	}
	conclusion, code := s.SubstituteTypeInTerm(t.Conclusion, sigma)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(hyps, conclusion), Success
}

// RegisterTruthIntroduction is Truth-introduction: Gamma |- T, for any
// context of propositions Gamma.
func (s *State) RegisterTruthIntroduction(context []handle.Handle) (handle.Handle, ErrorCode) {
	for _, p := range context {
		if code := s.requireProposition(p); code != Success {
			return handle.Handle{}, code
		}
	}
	return s.admitTheorem(context, handle.TermTrue), Success
}

// RegisterFalsityElimination is ex falso: Gamma |- F and any proposition p
// gives Gamma |- p.
func (s *State) RegisterFalsityElimination(thm, p handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	if t.Conclusion != handle.TermFalse {
		return handle.Handle{}, ShapeMismatch
	}
	if code := s.requireProposition(p); code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, p), Success
}

// RegisterConjunctionIntroduction combines Gamma1 |- p and Gamma2 |- q into
// Gamma1, Gamma2 |- p /\ q.
func (s *State) RegisterConjunctionIntroduction(left, right handle.Handle) (handle.Handle, ErrorCode) {
	lt := s.mustResolveTheorem(left)
	rt := s.mustResolveTheorem(right)
	conj, code := s.RegisterConjunction(lt.Conclusion, rt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(unionHandles(lt.Hypotheses, rt.Hypotheses), conj), Success
}

// RegisterConjunctionLeftElimination turns Gamma |- p /\ q into Gamma |- p.
func (s *State) RegisterConjunctionLeftElimination(thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	p, _, code := s.SplitConjunction(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, p), Success
}

// RegisterConjunctionRightElimination turns Gamma |- p /\ q into Gamma |- q.
func (s *State) RegisterConjunctionRightElimination(thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	_, q, code := s.SplitConjunction(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, q), Success
}

// RegisterDisjunctionLeftIntroduction turns Gamma |- p and a proposition q
// into Gamma |- p \/ q.
func (s *State) RegisterDisjunctionLeftIntroduction(thm, q handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	if code := s.requireProposition(q); code != Success {
		return handle.Handle{}, code
	}
	disj, code := s.RegisterDisjunction(t.Conclusion, q)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, disj), Success
}

// RegisterDisjunctionRightIntroduction turns Gamma |- q and a proposition p
// into Gamma |- p \/ q.
func (s *State) RegisterDisjunctionRightIntroduction(thm, p handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	if code := s.requireProposition(p); code != Success {
		return handle.Handle{}, code
	}
	disj, code := s.RegisterDisjunction(p, t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, disj), Success
}

// RegisterDisjunctionElimination is case analysis: given disj: Gamma |- p \/ q,
// left: Gamma_l, p |- r and right: Gamma_r, q |- r, concludes
// Gamma, Gamma_l, Gamma_r |- r.
func (s *State) RegisterDisjunctionElimination(disj, left, right handle.Handle) (handle.Handle, ErrorCode) {
	dt := s.mustResolveTheorem(disj)
	lt := s.mustResolveTheorem(left)
	rt := s.mustResolveTheorem(right)
	p, q, code := s.SplitDisjunction(dt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	equiv, code := s.IsAlphaEquivalent(lt.Conclusion, rt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	if !equiv {
		return handle.Handle{}, ShapeMismatch
	}
	hyps := unionHandles(dt.Hypotheses, unionHandles(removeHandle(lt.Hypotheses, p), removeHandle(rt.Hypotheses, q)))
	return s.admitTheorem(hyps, lt.Conclusion), Success
}

// RegisterNegationIntroduction turns Gamma, p |- F into Gamma |- ~p.
func (s *State) RegisterNegationIntroduction(thm, p handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	if t.Conclusion != handle.TermFalse {
		return handle.Handle{}, ShapeMismatch
	}
	neg, code := s.RegisterNegation(p)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(removeHandle(t.Hypotheses, p), neg), Success
}

// RegisterNegationElimination combines Gamma1 |- ~p and Gamma2 |- p into
// Gamma1, Gamma2 |- F.
func (s *State) RegisterNegationElimination(left, right handle.Handle) (handle.Handle, ErrorCode) {
	lt := s.mustResolveTheorem(left)
	rt := s.mustResolveTheorem(right)
	p, code := s.SplitNegation(lt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	equiv, code := s.IsAlphaEquivalent(p, rt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	if !equiv {
		return handle.Handle{}, ShapeMismatch
	}
	return s.admitTheorem(unionHandles(lt.Hypotheses, rt.Hypotheses), handle.TermFalse), Success
}

// RegisterImplicationIntroduction turns Gamma, p |- q into Gamma |- p => q.
func (s *State) RegisterImplicationIntroduction(thm, p handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	impl, code := s.RegisterImplication(p, t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(removeHandle(t.Hypotheses, p), impl), Success
}

// RegisterImplicationElimination (modus ponens) combines Gamma1 |- p => q
// and Gamma2 |- p into Gamma1, Gamma2 |- q.
func (s *State) RegisterImplicationElimination(left, right handle.Handle) (handle.Handle, ErrorCode) {
	lt := s.mustResolveTheorem(left)
	rt := s.mustResolveTheorem(right)
	p, q, code := s.SplitImplication(lt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	equiv, code := s.IsAlphaEquivalent(p, rt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	if !equiv {
		return handle.Handle{}, ShapeMismatch
	}
	return s.admitTheorem(unionHandles(lt.Hypotheses, rt.Hypotheses), q), Success
}

// RegisterIffIntroduction combines Gamma1 |- p => q and Gamma2 |- q => p
// into Gamma1, Gamma2 |- p = q (propositional equality doubles as
// if-and-only-if).
func (s *State) RegisterIffIntroduction(forward, backward handle.Handle) (handle.Handle, ErrorCode) {
	ft := s.mustResolveTheorem(forward)
	bt := s.mustResolveTheorem(backward)
	p, q, code := s.SplitImplication(ft.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	q2, p2, code := s.SplitImplication(bt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	pEquiv, code := s.IsAlphaEquivalent(p, p2)
	if code != Success {
		return handle.Handle{}, code
	}
	qEquiv, code := s.IsAlphaEquivalent(q, q2)
	if code != Success {
		return handle.Handle{}, code
	}
	if !pEquiv || !qEquiv {
		return handle.Handle{}, ShapeMismatch
	}
	eq, code := s.RegisterEquality(p, q)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(unionHandles(ft.Hypotheses, bt.Hypotheses), eq), Success
}

// RegisterIffLeftElimination turns Gamma |- p = q into Gamma |- p => q.
func (s *State) RegisterIffLeftElimination(thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	p, q, code := s.SplitEquality(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	impl, code := s.RegisterImplication(p, q)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, impl), Success
}

// RegisterIffRightElimination turns Gamma |- p = q into Gamma |- q => p. It
// is a convenience built from Symmetry followed by IffLeftElimination
// rather than a distinct primitive.
func (s *State) RegisterIffRightElimination(thm handle.Handle) (handle.Handle, ErrorCode) {
	symm, code := s.RegisterSymmetry(thm)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.RegisterIffLeftElimination(symm)
}

// RegisterForallIntroduction turns Gamma |- p, where name does not occur
// free in Gamma, into Gamma |- forall (name : tau). p.
func (s *State) RegisterForallIntroduction(thm handle.Handle, name Name, tau handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	for _, hyp := range t.Hypotheses {
		fv, code := s.FreeVariables(hyp)
		if code != Success {
			return handle.Handle{}, code
		}
		for _, n := range fv {
			if n == name {
				return handle.Handle{}, ShapeMismatch
			}
		}
	}
	forall, code := s.RegisterForall(name, tau, t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, forall), Success
}

// RegisterForallElimination turns Gamma |- forall (name : tau). p into
// Gamma |- p[name := term], instantiating the bound variable at term.
func (s *State) RegisterForallElimination(thm, term handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	name, _, body, code := s.SplitForall(t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	instantiated, code := s.SubstituteTerm(body, TermSubstitution{name: term})
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, instantiated), Success
}

// RegisterExistsIntroduction proves Gamma |- exists (name : tau). body from
// predicate (the lambda name:tau. body), a witness term, and a theorem
// whose conclusion is body with witness substituted for name.
func (s *State) RegisterExistsIntroduction(predicate, witness, thm handle.Handle) (handle.Handle, ErrorCode) {
	t := s.mustResolveTheorem(thm)
	name, tau, body, code := s.SplitLambda(predicate)
	if code != Success {
		return handle.Handle{}, code
	}
	expected, code := s.SubstituteTerm(body, TermSubstitution{name: witness})
	if code != Success {
		return handle.Handle{}, code
	}
	equiv, code := s.IsAlphaEquivalent(expected, t.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	if !equiv {
		return handle.Handle{}, ShapeMismatch
	}
	exists, code := s.RegisterExists(name, tau, body)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTheorem(t.Hypotheses, exists), Success
}

// RegisterExistsElimination combines exists: Gamma1 |- exists (name : tau). p
// and body: Gamma2, p |- q, where name is not free in Gamma2 or q, into
// Gamma1, Gamma2 |- q.
func (s *State) RegisterExistsElimination(exists, body handle.Handle) (handle.Handle, ErrorCode) {
	et := s.mustResolveTheorem(exists)
	bt := s.mustResolveTheorem(body)
	name, _, p, code := s.SplitExists(et.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	fv, code := s.FreeVariables(bt.Conclusion)
	if code != Success {
		return handle.Handle{}, code
	}
	for _, n := range fv {
		if n == name {
			return handle.Handle{}, ShapeMismatch
		}
	}
	for _, hyp := range removeHandle(bt.Hypotheses, p) {
		hfv, code := s.FreeVariables(hyp)
		if code != Success {
			return handle.Handle{}, code
		}
		for _, n := range hfv {
			if n == name {
				return handle.Handle{}, ShapeMismatch
			}
		}
	}
	hyps := unionHandles(et.Hypotheses, removeHandle(bt.Hypotheses, p))
	return s.admitTheorem(hyps, bt.Conclusion), Success
}
