package kernel

import (
	"sort"

	"github.com/veracruz-project/supervisionary/handle"
)

// TermVariant tags which of the four lambda-calculus shapes a Term takes.
type TermVariant uint8

const (
	TermVariantVariable TermVariant = iota
	TermVariantConstant
	TermVariantApplication
	TermVariantLambda
)

// Term is one of: an explicitly-typed variable, a use of a declared
// constant (at its declared type or at a type-substituted instance), an
// application of one term to another, or a lambda-abstraction.
type Term struct {
	Variant TermVariant

	// Variable, Lambda.
	Name Name

	// Variable: the variable's explicit type.
	// Lambda: the type of the bound parameter.
	Type handle.Handle

	// Constant.
	ConstantHandle handle.Handle
	// Constant: true iff the constant is used at a type-substituted
	// instance rather than its bare declared type.
	Specialized     bool
	SpecializedType handle.Handle

	// Application.
	Left, Right handle.Handle

	// Lambda.
	Body handle.Handle
}

func termVariable(name Name, tau handle.Handle) Term {
	return Term{Variant: TermVariantVariable, Name: name, Type: tau}
}

func termConstant(c handle.Handle) Term {
	return Term{Variant: TermVariantConstant, ConstantHandle: c}
}

func termConstantAt(c handle.Handle, tau handle.Handle) Term {
	return Term{Variant: TermVariantConstant, ConstantHandle: c, Specialized: true, SpecializedType: tau}
}

func termApplication(left, right handle.Handle) Term {
	return Term{Variant: TermVariantApplication, Left: left, Right: right}
}

func termLambda(name Name, tau, body handle.Handle) Term {
	return Term{Variant: TermVariantLambda, Name: name, Type: tau, Body: body}
}

// termTable is the interned table of Term values, shared up to
// alpha-equivalence. Because alpha-equivalence is not a structural hash key,
// admission is a linear scan against every already-registered term.
type termTable struct {
	byHandle map[handle.Handle]Term
}

func newTermTable() termTable {
	return termTable{byHandle: make(map[handle.Handle]Term)}
}

func (s *State) admitTerm(trm Term) handle.Handle {
	for h, registered := range s.terms.byHandle {
		if s.isAlphaEquivalentInner(trm, registered) {
			return h
		}
	}
	h := s.alloc.Issue(handle.KindTerm)
	s.terms.byHandle[h] = trm
	return h
}

// ResolveTerm returns the Term named by h, if registered.
func (s *State) ResolveTerm(h handle.Handle) (Term, bool) {
	t, ok := s.terms.byHandle[h]
	return t, ok
}

// IsTermRegistered reports whether h names a registered term.
func (s *State) IsTermRegistered(h handle.Handle) bool {
	_, ok := s.terms.byHandle[h]
	return ok
}

func (s *State) mustResolveTerm(h handle.Handle) Term {
	t, ok := s.ResolveTerm(h)
	if !ok {
		trapDanglingHandle()
	}
	return t
}

// RegisterVariable constructs a variable term with the given name and
// explicit type.
func (s *State) RegisterVariable(name Name, tau handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsTypeRegistered(tau) {
		return handle.Handle{}, NoSuchTypeRegistered
	}
	return s.admitTerm(termVariable(name, tau)), Success
}

// RegisterConstantAtDefaultType constructs a use of c at its declared type.
func (s *State) RegisterConstantAtDefaultType(c handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsConstantRegistered(c) {
		return handle.Handle{}, NoSuchConstantRegistered
	}
	return s.admitTerm(termConstant(c)), Success
}

// RegisterConstantAtConstrainedType constructs a use of c whose declared
// type has been instantiated by sigma.
func (s *State) RegisterConstantAtConstrainedType(c handle.Handle, sigma TypeSubstitution) (handle.Handle, ErrorCode) {
	declared, code := s.ResolveConstant(c)
	if code != Success {
		return handle.Handle{}, code
	}
	tau, code := s.SubstituteType(declared, sigma)
	if code != Success {
		return handle.Handle{}, code
	}
	return s.admitTerm(termConstantAt(c, tau)), Success
}

// RegisterApplication constructs the application of left to right, checking
// that left has functional type and right matches its domain.
func (s *State) RegisterApplication(left, right handle.Handle) (handle.Handle, ErrorCode) {
	leftType, code := s.InferType(left)
	if code != Success {
		return handle.Handle{}, code
	}
	dom, _, code := s.SplitFunctionType(leftType)
	if code != Success {
		if code == NotAFunctionType {
			return handle.Handle{}, NotAFunctionType
		}
		return handle.Handle{}, code
	}
	rightType, code := s.InferType(right)
	if code != Success {
		return handle.Handle{}, code
	}
	if dom != rightType {
		return handle.Handle{}, DomainTypeMismatch
	}
	return s.admitTerm(termApplication(left, right)), Success
}

// RegisterLambda constructs a lambda-abstraction binding name, of type tau,
// over body.
func (s *State) RegisterLambda(name Name, tau, body handle.Handle) (handle.Handle, ErrorCode) {
	if !s.IsTypeRegistered(tau) {
		return handle.Handle{}, NoSuchTypeRegistered
	}
	if !s.IsTermRegistered(body) {
		return handle.Handle{}, NoSuchTermRegistered
	}
	return s.admitTerm(termLambda(name, tau, body)), Success
}

// SplitVariable decomposes a variable term into its name and type.
func (s *State) SplitVariable(h handle.Handle) (Name, handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return 0, handle.Handle{}, NoSuchTermRegistered
	}
	if trm.Variant != TermVariantVariable {
		return 0, handle.Handle{}, NotAVariable
	}
	return trm.Name, trm.Type, Success
}

// SplitConstant decomposes a constant-use term into the declared constant
// and, if the use is specialized, the instantiated type.
func (s *State) SplitConstant(h handle.Handle) (handle.Handle, bool, handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return handle.Handle{}, false, handle.Handle{}, NoSuchTermRegistered
	}
	if trm.Variant != TermVariantConstant {
		return handle.Handle{}, false, handle.Handle{}, NotAConstant
	}
	return trm.ConstantHandle, trm.Specialized, trm.SpecializedType, Success
}

// SplitApplication decomposes an application term into its left and right.
func (s *State) SplitApplication(h handle.Handle) (handle.Handle, handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return handle.Handle{}, handle.Handle{}, NoSuchTermRegistered
	}
	if trm.Variant != TermVariantApplication {
		return handle.Handle{}, handle.Handle{}, NotAnApplication
	}
	return trm.Left, trm.Right, Success
}

// SplitLambda decomposes a lambda term into its bound name, parameter type,
// and body.
func (s *State) SplitLambda(h handle.Handle) (Name, handle.Handle, handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return 0, handle.Handle{}, handle.Handle{}, NoSuchTermRegistered
	}
	if trm.Variant != TermVariantLambda {
		return 0, handle.Handle{}, handle.Handle{}, NotALambda
	}
	return trm.Name, trm.Type, trm.Body, Success
}

func (s *State) shapeIs(h handle.Handle, variant TermVariant) (bool, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return false, NoSuchTermRegistered
	}
	return trm.Variant == variant, Success
}

func (s *State) IsVariableShape(h handle.Handle) (bool, ErrorCode) {
	return s.shapeIs(h, TermVariantVariable)
}

func (s *State) IsConstantShape(h handle.Handle) (bool, ErrorCode) {
	return s.shapeIs(h, TermVariantConstant)
}

func (s *State) IsApplicationShape(h handle.Handle) (bool, ErrorCode) {
	return s.shapeIs(h, TermVariantApplication)
}

func (s *State) IsLambdaShape(h handle.Handle) (bool, ErrorCode) {
	return s.shapeIs(h, TermVariantLambda)
}

// FreeVariables returns the deduplicated, sorted set of names free in the
// term named by h.
func (s *State) FreeVariables(h handle.Handle) ([]Name, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return nil, NoSuchTermRegistered
	}
	fv := s.freeVariablesInner(trm)
	sort.Slice(fv, func(i, j int) bool { return fv[i] < fv[j] })
	return fv, Success
}

func (s *State) freeVariablesInner(trm Term) []Name {
	switch trm.Variant {
	case TermVariantVariable:
		return []Name{trm.Name}
	case TermVariantConstant:
		return nil
	case TermVariantApplication:
		left := s.freeVariablesInner(s.mustResolveTerm(trm.Left))
		right := s.freeVariablesInner(s.mustResolveTerm(trm.Right))
		return dedupNames(append(left, right...))
	case TermVariantLambda:
		body := s.freeVariablesInner(s.mustResolveTerm(trm.Body))
		out := body[:0:0]
		for _, n := range body {
			if n != trm.Name {
				out = append(out, n)
			}
		}
		return out
	}
	trapDanglingHandle()
	return nil
}

func dedupNames(in []Name) []Name {
	seen := make(map[Name]struct{}, len(in))
	out := in[:0]
	for _, n := range in {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// swap returns the handle of the term obtained from trm by permuting the
// names a and b everywhere in it: free occurrences, bound occurrences and
// lambda binders alike.
func (s *State) swap(trm Term, a, b Name) handle.Handle {
	switch trm.Variant {
	case TermVariantVariable:
		switch trm.Name {
		case a:
			return s.admitTerm(termVariable(b, trm.Type))
		case b:
			return s.admitTerm(termVariable(a, trm.Type))
		default:
			return s.admitTerm(trm)
		}
	case TermVariantConstant:
		return s.admitTerm(trm)
	case TermVariantApplication:
		left := s.swap(s.mustResolveTerm(trm.Left), a, b)
		right := s.swap(s.mustResolveTerm(trm.Right), a, b)
		return s.admitTerm(termApplication(left, right))
	case TermVariantLambda:
		name := trm.Name
		switch trm.Name {
		case a:
			name = b
		case b:
			name = a
		}
		body := s.swap(s.mustResolveTerm(trm.Body), a, b)
		return s.admitTerm(termLambda(name, trm.Type, body))
	}
	trapDanglingHandle()
	return handle.Handle{}
}

// IsAlphaEquivalent reports whether the terms named by h0 and h1 are equal
// up to a permutative renaming of bound names.
func (s *State) IsAlphaEquivalent(h0, h1 handle.Handle) (bool, ErrorCode) {
	t0, ok := s.ResolveTerm(h0)
	if !ok {
		return false, NoSuchTermRegistered
	}
	t1, ok := s.ResolveTerm(h1)
	if !ok {
		return false, NoSuchTermRegistered
	}
	return s.isAlphaEquivalentInner(t0, t1), Success
}

func (s *State) isAlphaEquivalentInner(t0, t1 Term) bool {
	if t0.Variant != t1.Variant {
		return false
	}
	switch t0.Variant {
	case TermVariantVariable:
		return t0.Name == t1.Name && t0.Type == t1.Type
	case TermVariantConstant:
		if t0.ConstantHandle != t1.ConstantHandle || t0.Specialized != t1.Specialized {
			return false
		}
		return !t0.Specialized || t0.SpecializedType == t1.SpecializedType
	case TermVariantApplication:
		return s.isAlphaEquivalentInner(s.mustResolveTerm(t0.Left), s.mustResolveTerm(t1.Left)) &&
			s.isAlphaEquivalentInner(s.mustResolveTerm(t0.Right), s.mustResolveTerm(t1.Right))
	case TermVariantLambda:
		if t0.Type != t1.Type {
			return false
		}
		body0 := s.mustResolveTerm(t0.Body)
		if t0.Name == t1.Name {
			return s.isAlphaEquivalentInner(body0, s.mustResolveTerm(t1.Body))
		}
		body1 := s.mustResolveTerm(t1.Body)
		for _, n := range s.freeVariablesInner(body1) {
			if n == t0.Name {
				return false
			}
		}
		swapped := s.mustResolveTerm(s.swap(body1, t0.Name, t1.Name))
		return s.isAlphaEquivalentInner(swapped, body0)
	}
	trapDanglingHandle()
	return false
}

// InferType computes the type of the term named by h.
func (s *State) InferType(h handle.Handle) (handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return handle.Handle{}, NoSuchTermRegistered
	}
	return s.inferTypeInner(trm)
}

func (s *State) inferTypeInner(trm Term) (handle.Handle, ErrorCode) {
	switch trm.Variant {
	case TermVariantVariable:
		return trm.Type, Success
	case TermVariantConstant:
		if trm.Specialized {
			return trm.SpecializedType, Success
		}
		return s.ResolveConstant(trm.ConstantHandle)
	case TermVariantApplication:
		leftType, code := s.inferTypeInner(s.mustResolveTerm(trm.Left))
		if code != Success {
			return handle.Handle{}, code
		}
		_, rng, code := s.SplitFunctionType(leftType)
		if code != Success {
			return handle.Handle{}, code
		}
		return rng, Success
	case TermVariantLambda:
		bodyType, code := s.inferTypeInner(s.mustResolveTerm(trm.Body))
		if code != Success {
			return handle.Handle{}, code
		}
		return s.admitType(typeCombination(handle.TypeFormerArrow, []handle.Handle{trm.Type, bodyType})), Success
	}
	trapDanglingHandle()
	return handle.Handle{}, Success
}

// IsProposition reports whether the term named by h has type Prop.
func (s *State) IsProposition(h handle.Handle) (bool, ErrorCode) {
	tau, code := s.InferType(h)
	if code != Success {
		return false, code
	}
	return tau == handle.TypeProp, Success
}

// TermSubstitution is a simultaneous, capture-avoided map from variable
// Name to a replacement term handle.
type TermSubstitution map[Name]handle.Handle

// SubstituteTerm applies sigma to the term named by h, renaming bound names
// that would otherwise capture a free variable of sigma's range.
func (s *State) SubstituteTerm(h handle.Handle, sigma TermSubstitution) (handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return handle.Handle{}, NoSuchTermRegistered
	}
	for _, replacement := range sigma {
		if !s.IsTermRegistered(replacement) {
			return handle.Handle{}, NoSuchTermRegistered
		}
	}
	return s.substituteTermInner(trm, sigma), Success
}

func (s *State) substituteTermInner(trm Term, sigma TermSubstitution) handle.Handle {
	switch trm.Variant {
	case TermVariantVariable:
		if replacement, ok := sigma[trm.Name]; ok {
			return replacement
		}
		return s.admitTerm(trm)
	case TermVariantConstant:
		return s.admitTerm(trm)
	case TermVariantApplication:
		left := s.substituteTermInner(s.mustResolveTerm(trm.Left), sigma)
		right := s.substituteTermInner(s.mustResolveTerm(trm.Right), sigma)
		return s.admitTerm(termApplication(left, right))
	case TermVariantLambda:
		restricted := make(TermSubstitution, len(sigma))
		rangeFV := make(map[Name]struct{})
		for name, replacement := range sigma {
			if name == trm.Name {
				continue
			}
			restricted[name] = replacement
			for _, n := range s.freeVariablesInner(s.mustResolveTerm(replacement)) {
				rangeFV[n] = struct{}{}
			}
		}
		name := trm.Name
		body := s.mustResolveTerm(trm.Body)
		if _, captured := rangeFV[name]; captured {
			avoid := make(map[Name]struct{}, len(rangeFV)+1)
			for n := range rangeFV {
				avoid[n] = struct{}{}
			}
			for _, n := range s.freeVariablesInner(body) {
				avoid[n] = struct{}{}
			}
			fresh := freshName(avoid)
			body = s.mustResolveTerm(s.swap(body, name, fresh))
			name = fresh
		}
		newBody := s.substituteTermInner(body, restricted)
		return s.admitTerm(termLambda(name, trm.Type, newBody))
	}
	trapDanglingHandle()
	return handle.Handle{}
}

// SubstituteTypeInTerm instantiates every type occurring in the term named
// by h with sigma, re-specializing constant uses and variable/lambda types
// as needed. A constant used at its bare declared type becomes a specialized
// use when sigma changes that type.
func (s *State) SubstituteTypeInTerm(h handle.Handle, sigma TypeSubstitution) (handle.Handle, ErrorCode) {
	trm, ok := s.ResolveTerm(h)
	if !ok {
		return handle.Handle{}, NoSuchTermRegistered
	}
	for _, replacement := range sigma {
		if !s.IsTypeRegistered(replacement) {
			return handle.Handle{}, NoSuchTypeRegistered
		}
	}
	return s.substituteTypeInTermInner(trm, sigma), Success
}

func (s *State) substituteTypeInTermInner(trm Term, sigma TypeSubstitution) handle.Handle {
	switch trm.Variant {
	case TermVariantVariable:
		tau := s.substituteTypeInner(s.mustResolveTypeOf(trm.Type), sigma)
		return s.admitTerm(termVariable(trm.Name, tau))
	case TermVariantConstant:
		if !trm.Specialized {
			declared, code := s.ResolveConstant(trm.ConstantHandle)
			if code != Success {
				trapDanglingHandle()
			}
			tau := s.substituteTypeInner(s.mustResolveTypeOf(declared), sigma)
			if tau == declared {
				return s.admitTerm(trm)
			}
			return s.admitTerm(termConstantAt(trm.ConstantHandle, tau))
		}
		tau := s.substituteTypeInner(s.mustResolveTypeOf(trm.SpecializedType), sigma)
		return s.admitTerm(termConstantAt(trm.ConstantHandle, tau))
	case TermVariantApplication:
		left := s.substituteTypeInTermInner(s.mustResolveTerm(trm.Left), sigma)
		right := s.substituteTypeInTermInner(s.mustResolveTerm(trm.Right), sigma)
		return s.admitTerm(termApplication(left, right))
	case TermVariantLambda:
		tau := s.substituteTypeInner(s.mustResolveTypeOf(trm.Type), sigma)
		body := s.substituteTypeInTermInner(s.mustResolveTerm(trm.Body), sigma)
		return s.admitTerm(termLambda(trm.Name, tau, body))
	}
	trapDanglingHandle()
	return handle.Handle{}
}

func (s *State) mustResolveTypeOf(h handle.Handle) Type {
	tau, ok := s.ResolveType(h)
	if !ok {
		trapDanglingHandle()
	}
	return tau
}
