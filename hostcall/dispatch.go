package hostcall

import (
	"github.com/veracruz-project/supervisionary/handle"
	"github.com/veracruz-project/supervisionary/kernel"
)

// Dispatcher binds a kernel.State to the guest's linear memory and exposes
// one Go method per Call, implementing exactly the wire convention below.
// Package session registers each method against its Call.Name() export in
// an "env" host module; package hostcall never touches a WASM engine type
// directly.
//
// Wire convention, fixed across every call:
//   - A Handle or Name argument/result crosses as a raw little-endian u64;
//     which object table it addresses is implied by the call, never tagged
//     on the wire.
//   - An input vector crosses as a (base u32, length u64) pair: length
//     consecutive u64 words starting at base.
//   - An output vector crosses as a (base u32, lengthOut u32) pair: the
//     dispatcher writes its result at base and always writes the true
//     length to lengthOut, mirroring the domain/range substitution vectors
//     of __term_register_constant and __type_substitute.
//   - A call that cannot fail (IsRegistered) returns its Boolean result
//     directly as a u32 (0 or 1) with no ErrorCode. Every Test-* shape
//     predicate can still fail on an unregistered handle, so it is fallible
//     like any other call.
//   - Every fallible call returns an int32 ErrorCode and writes its actual
//     result(s), if any, through guest out-pointers, leaving them untouched
//     on failure.
//
// A kernel.Trap or handle.ExhaustedError raised while servicing a call is
// never recovered here: it propagates out of the Go host function call and
// is surfaced by the WASM engine as a call failure, which is this system's
// single fatal-abort point (package session treats any such error as
// session-ending, never as a recoverable ErrorCode).
type Dispatcher struct {
	State *kernel.State
}

// NewDispatcher returns a Dispatcher over state.
func NewDispatcher(state *kernel.State) *Dispatcher {
	return &Dispatcher{State: state}
}

func encode(code kernel.ErrorCode) int32 { return code.Encode() }

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// fallibleBool adapts a (bool, ErrorCode) kernel query to the out-pointer
// convention shared by every Test-* and IsProposition-style call.
func fallibleBool(mem Memory, ok bool, code kernel.ErrorCode, resultOut uint32) int32 {
	if code != kernel.Success {
		return encode(code)
	}
	writeBool(mem, resultOut, ok)
	return encode(kernel.Success)
}

// fallibleHandle adapts a (handle.Handle, ErrorCode) kernel query to the
// out-pointer convention shared by every Register-* and Split-unary call.
func fallibleHandle(mem Memory, h handle.Handle, code kernel.ErrorCode, resultOut uint32) int32 {
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, resultOut, h)
	return encode(kernel.Success)
}

////////////////////////////////////////////////////////////////////////////
// Type-former calls (indices 0-2).
////////////////////////////////////////////////////////////////////////////

func (d *Dispatcher) TypeFormerResolve(mem Memory, h uint64, resultOut uint32) int32 {
	arity, code := d.State.ResolveTypeFormer(handle.New(handle.KindTypeFormer, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeU64(mem, resultOut, arity)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeFormerIsRegistered(h uint64) uint32 {
	return boolWord(d.State.IsTypeFormerRegistered(handle.New(handle.KindTypeFormer, h)))
}

func (d *Dispatcher) TypeFormerRegister(arity uint64) uint64 {
	return d.State.RegisterTypeFormer(arity).Value
}

////////////////////////////////////////////////////////////////////////////
// Type calls (indices 3-15).
////////////////////////////////////////////////////////////////////////////

func (d *Dispatcher) TypeIsRegistered(h uint64) uint32 {
	return boolWord(d.State.IsTypeRegistered(handle.New(handle.KindType, h)))
}

func (d *Dispatcher) TypeRegisterVariable(name uint64) uint64 {
	return d.State.RegisterTypeVariable(kernel.Name(name)).Value
}

func (d *Dispatcher) TypeRegisterCombination(mem Memory, formerHandle uint64, argBase uint32, argLength uint64, resultOut uint32) int32 {
	args := readHandleVector(mem, argBase, argLength, handle.KindType)
	h, code := d.State.RegisterTypeCombination(handle.New(handle.KindTypeFormer, formerHandle), args)
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TypeRegisterFunction(mem Memory, dom, rng uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterFunctionType(handle.New(handle.KindType, dom), handle.New(handle.KindType, rng))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TypeSplitVariable(mem Memory, h uint64, resultOut uint32) int32 {
	name, code := d.State.SplitTypeVariable(handle.New(handle.KindType, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeName(mem, resultOut, name)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeSplitCombination(mem Memory, h uint64, formerOut uint32, argBase uint32, argLengthOut uint32) int32 {
	former, args, code := d.State.SplitTypeCombination(handle.New(handle.KindType, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, formerOut, former)
	writeHandleVector(mem, argBase, argLengthOut, args)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeSplitFunction(mem Memory, h uint64, domOut, rngOut uint32) int32 {
	dom, rng, code := d.State.SplitFunctionType(handle.New(handle.KindType, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, domOut, dom)
	writeHandle(mem, rngOut, rng)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeTestVariable(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsTypeVariableShape(handle.New(handle.KindType, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TypeTestCombination(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsTypeCombinationShape(handle.New(handle.KindType, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TypeTestFunction(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsFunctionTypeShape(handle.New(handle.KindType, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TypeSize(mem Memory, h uint64, resultOut uint32) int32 {
	sz, code := d.State.TypeSize(handle.New(handle.KindType, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeU64(mem, resultOut, sz)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeVariables(mem Memory, h uint64, resultBase uint32, resultLengthOut uint32) int32 {
	names, code := d.State.TypeVariables(handle.New(handle.KindType, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeNameVector(mem, resultBase, resultLengthOut, names)
	return encode(kernel.Success)
}

func (d *Dispatcher) TypeSubstitute(mem Memory, h uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	sigma := readTypeSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
	result, code := d.State.SubstituteType(handle.New(handle.KindType, h), sigma)
	return fallibleHandle(mem, result, code, resultOut)
}

////////////////////////////////////////////////////////////////////////////
// Constant calls (indices 16-18).
////////////////////////////////////////////////////////////////////////////

func (d *Dispatcher) ConstantResolve(mem Memory, h uint64, resultOut uint32) int32 {
	tau, code := d.State.ResolveConstant(handle.New(handle.KindConstant, h))
	return fallibleHandle(mem, tau, code, resultOut)
}

func (d *Dispatcher) ConstantIsRegistered(h uint64) uint32 {
	return boolWord(d.State.IsConstantRegistered(handle.New(handle.KindConstant, h)))
}

func (d *Dispatcher) ConstantRegister(mem Memory, typeHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterConstant(handle.New(handle.KindType, typeHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

////////////////////////////////////////////////////////////////////////////
// Term calls (indices 19-58).
////////////////////////////////////////////////////////////////////////////

func (d *Dispatcher) TermIsRegistered(h uint64) uint32 {
	return boolWord(d.State.IsTermRegistered(handle.New(handle.KindTerm, h)))
}

func (d *Dispatcher) TermRegisterVariable(mem Memory, name uint64, typeHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterVariable(kernel.Name(name), handle.New(handle.KindType, typeHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterConstant(mem Memory, constantHandle uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	c := handle.New(handle.KindConstant, constantHandle)
	var h handle.Handle
	var code kernel.ErrorCode
	if domainLength == 0 {
		h, code = d.State.RegisterConstantAtDefaultType(c)
	} else {
		sigma := readTypeSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
		h, code = d.State.RegisterConstantAtConstrainedType(c, sigma)
	}
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterApplication(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterApplication(handle.New(handle.KindTerm, left), handle.New(handle.KindTerm, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterLambda(mem Memory, name uint64, typeHandle uint64, bodyHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterLambda(kernel.Name(name), handle.New(handle.KindType, typeHandle), handle.New(handle.KindTerm, bodyHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterNegation(mem Memory, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterNegation(handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterConjunction(mem Memory, p, q uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterConjunction(handle.New(handle.KindTerm, p), handle.New(handle.KindTerm, q))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterDisjunction(mem Memory, p, q uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterDisjunction(handle.New(handle.KindTerm, p), handle.New(handle.KindTerm, q))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterImplication(mem Memory, p, q uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterImplication(handle.New(handle.KindTerm, p), handle.New(handle.KindTerm, q))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterEquality(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterEquality(handle.New(handle.KindTerm, left), handle.New(handle.KindTerm, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterForall(mem Memory, name uint64, typeHandle, bodyHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterForall(kernel.Name(name), handle.New(handle.KindType, typeHandle), handle.New(handle.KindTerm, bodyHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermRegisterExists(mem Memory, name uint64, typeHandle, bodyHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterExists(kernel.Name(name), handle.New(handle.KindType, typeHandle), handle.New(handle.KindTerm, bodyHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TermSplitVariable(mem Memory, h uint64, nameOut, typeOut uint32) int32 {
	name, tau, code := d.State.SplitVariable(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeName(mem, nameOut, name)
	writeHandle(mem, typeOut, tau)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSplitConstant(mem Memory, h uint64, constantOut uint32, specializedOut uint32, specializedTypeOut uint32) int32 {
	c, specialized, tau, code := d.State.SplitConstant(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, constantOut, c)
	writeBool(mem, specializedOut, specialized)
	if specialized {
		writeHandle(mem, specializedTypeOut, tau)
	}
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSplitApplication(mem Memory, h uint64, leftOut, rightOut uint32) int32 {
	left, right, code := d.State.SplitApplication(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, leftOut, left)
	writeHandle(mem, rightOut, right)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSplitLambda(mem Memory, h uint64, nameOut, typeOut, bodyOut uint32) int32 {
	name, tau, body, code := d.State.SplitLambda(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeName(mem, nameOut, name)
	writeHandle(mem, typeOut, tau)
	writeHandle(mem, bodyOut, body)
	return encode(kernel.Success)
}

func (d *Dispatcher) termSplitBinary(mem Memory, h uint64, leftOut, rightOut uint32, split func(handle.Handle) (handle.Handle, handle.Handle, kernel.ErrorCode)) int32 {
	left, right, code := split(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandle(mem, leftOut, left)
	writeHandle(mem, rightOut, right)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSplitNegation(mem Memory, h uint64, resultOut uint32) int32 {
	result, code := d.State.SplitNegation(handle.New(handle.KindTerm, h))
	return fallibleHandle(mem, result, code, resultOut)
}

func (d *Dispatcher) TermSplitConjunction(mem Memory, h uint64, leftOut, rightOut uint32) int32 {
	return d.termSplitBinary(mem, h, leftOut, rightOut, d.State.SplitConjunction)
}

func (d *Dispatcher) TermSplitDisjunction(mem Memory, h uint64, leftOut, rightOut uint32) int32 {
	return d.termSplitBinary(mem, h, leftOut, rightOut, d.State.SplitDisjunction)
}

func (d *Dispatcher) TermSplitImplication(mem Memory, h uint64, leftOut, rightOut uint32) int32 {
	return d.termSplitBinary(mem, h, leftOut, rightOut, d.State.SplitImplication)
}

func (d *Dispatcher) TermSplitEquality(mem Memory, h uint64, leftOut, rightOut uint32) int32 {
	return d.termSplitBinary(mem, h, leftOut, rightOut, d.State.SplitEquality)
}

func (d *Dispatcher) termSplitQuantifier(mem Memory, h uint64, nameOut, typeOut, bodyOut uint32, split func(handle.Handle) (kernel.Name, handle.Handle, handle.Handle, kernel.ErrorCode)) int32 {
	name, tau, body, code := split(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeName(mem, nameOut, name)
	writeHandle(mem, typeOut, tau)
	writeHandle(mem, bodyOut, body)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSplitForall(mem Memory, h uint64, nameOut, typeOut, bodyOut uint32) int32 {
	return d.termSplitQuantifier(mem, h, nameOut, typeOut, bodyOut, d.State.SplitForall)
}

func (d *Dispatcher) TermSplitExists(mem Memory, h uint64, nameOut, typeOut, bodyOut uint32) int32 {
	return d.termSplitQuantifier(mem, h, nameOut, typeOut, bodyOut, d.State.SplitExists)
}

func (d *Dispatcher) TermTestVariable(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsVariableShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestConstant(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsConstantShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestApplication(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsApplicationShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestLambda(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsLambdaShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestNegation(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsNegationShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestConjunction(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsConjunctionShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestDisjunction(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsDisjunctionShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestImplication(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsImplicationShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestEquality(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsEqualityShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestForall(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsForallShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermTestExists(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsExistsShape(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

func (d *Dispatcher) TermFreeVariables(mem Memory, h uint64, resultBase uint32, resultLengthOut uint32) int32 {
	names, code := d.State.FreeVariables(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeNameVector(mem, resultBase, resultLengthOut, names)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermSubstitute(mem Memory, h uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	sigma := readTermSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
	result, code := d.State.SubstituteTerm(handle.New(handle.KindTerm, h), sigma)
	return fallibleHandle(mem, result, code, resultOut)
}

// termTypeVariables walks every type occurring anywhere in the term named
// by h — not just its overall inferred type — collecting the free
// type-variable names of each, via the public Split-* accessors so that no
// additional kernel internals are required.
func (d *Dispatcher) termTypeVariables(h handle.Handle) ([]kernel.Name, kernel.ErrorCode) {
	seen := make(map[kernel.Name]struct{})
	var out []kernel.Name
	add := func(tau handle.Handle) kernel.ErrorCode {
		vars, code := d.State.TypeVariables(tau)
		if code != kernel.Success {
			return code
		}
		for _, n := range vars {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
		return kernel.Success
	}

	var walk func(handle.Handle) kernel.ErrorCode
	walk = func(h handle.Handle) kernel.ErrorCode {
		if _, _, code := d.State.SplitVariable(h); code == kernel.Success {
			_, tau, _ := d.State.SplitVariable(h)
			return add(tau)
		}
		if c, specialized, tau, code := d.State.SplitConstant(h); code == kernel.Success {
			if specialized {
				return add(tau)
			}
			declared, code := d.State.ResolveConstant(c)
			if code != kernel.Success {
				return code
			}
			return add(declared)
		}
		if left, right, code := d.State.SplitApplication(h); code == kernel.Success {
			if code := walk(left); code != kernel.Success {
				return code
			}
			return walk(right)
		}
		if _, tau, body, code := d.State.SplitLambda(h); code == kernel.Success {
			if code := add(tau); code != kernel.Success {
				return code
			}
			return walk(body)
		}
		return kernel.TermNotWellformed
	}
	if code := walk(h); code != kernel.Success {
		return nil, code
	}
	return out, kernel.Success
}

func (d *Dispatcher) TermTypeVariables(mem Memory, h uint64, resultBase uint32, resultLengthOut uint32) int32 {
	names, code := d.termTypeVariables(handle.New(handle.KindTerm, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeNameVector(mem, resultBase, resultLengthOut, names)
	return encode(kernel.Success)
}

func (d *Dispatcher) TermTypeSubstitute(mem Memory, h uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	sigma := readTypeSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
	result, code := d.State.SubstituteTypeInTerm(handle.New(handle.KindTerm, h), sigma)
	return fallibleHandle(mem, result, code, resultOut)
}

func (d *Dispatcher) TermTypeInfer(mem Memory, h uint64, resultOut uint32) int32 {
	tau, code := d.State.InferType(handle.New(handle.KindTerm, h))
	return fallibleHandle(mem, tau, code, resultOut)
}

func (d *Dispatcher) TermTypeIsProposition(mem Memory, h uint64, resultOut uint32) int32 {
	ok, code := d.State.IsProposition(handle.New(handle.KindTerm, h))
	return fallibleBool(mem, ok, code, resultOut)
}

////////////////////////////////////////////////////////////////////////////
// Theorem calls (indices 59-90).
////////////////////////////////////////////////////////////////////////////

func (d *Dispatcher) TheoremIsRegistered(h uint64) uint32 {
	return boolWord(d.State.IsTheoremRegistered(handle.New(handle.KindTheorem, h)))
}

func (d *Dispatcher) TheoremRegisterAssumption(mem Memory, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterAssumption(handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterWeaken(mem Memory, extra uint64, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterWeaken(handle.New(handle.KindTerm, extra), handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterReflexivity(mem Memory, t uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterReflexivity(handle.New(handle.KindTerm, t))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterSymmetry(mem Memory, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterSymmetry(handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterTransitivity(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterTransitivity(handle.New(handle.KindTheorem, left), handle.New(handle.KindTheorem, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterBeta(mem Memory, redex uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterBeta(handle.New(handle.KindTerm, redex))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterEta(mem Memory, lambdaTerm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterEta(handle.New(handle.KindTerm, lambdaTerm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterApplication(mem Memory, fnThm, argThm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterCongruenceApplication(handle.New(handle.KindTheorem, fnThm), handle.New(handle.KindTheorem, argThm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterLambda(mem Memory, name uint64, typeHandle uint64, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterCongruenceLambda(kernel.Name(name), handle.New(handle.KindType, typeHandle), handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterSubstitute(mem Memory, thm uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	sigma := readTermSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
	h, code := d.State.RegisterSubstitute(handle.New(handle.KindTheorem, thm), sigma)
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterTypeSubstitute(mem Memory, thm uint64, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64, resultOut uint32) int32 {
	sigma := readTypeSubstitution(mem, domainBase, domainLength, rangeBase, rangeLength)
	h, code := d.State.RegisterTypeSubstitute(handle.New(handle.KindTheorem, thm), sigma)
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterTruthIntroduction(mem Memory, contextBase uint32, contextLength uint64, resultOut uint32) int32 {
	context := readHandleVector(mem, contextBase, contextLength, handle.KindTerm)
	h, code := d.State.RegisterTruthIntroduction(context)
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterFalsityElimination(mem Memory, thm uint64, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterFalsityElimination(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterConjunctionIntroduction(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterConjunctionIntroduction(handle.New(handle.KindTheorem, left), handle.New(handle.KindTheorem, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterConjunctionLeftElimination(mem Memory, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterConjunctionLeftElimination(handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterConjunctionRightElimination(mem Memory, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterConjunctionRightElimination(handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterDisjunctionElimination(mem Memory, disj, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterDisjunctionElimination(handle.New(handle.KindTheorem, disj), handle.New(handle.KindTheorem, left), handle.New(handle.KindTheorem, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterDisjunctionLeftIntroduction(mem Memory, thm uint64, q uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterDisjunctionLeftIntroduction(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, q))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterDisjunctionRightIntroduction(mem Memory, thm uint64, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterDisjunctionRightIntroduction(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterImplicationIntroduction(mem Memory, thm uint64, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterImplicationIntroduction(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterImplicationElimination(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterImplicationElimination(handle.New(handle.KindTheorem, left), handle.New(handle.KindTheorem, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterIffIntroduction(mem Memory, forward, backward uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterIffIntroduction(handle.New(handle.KindTheorem, forward), handle.New(handle.KindTheorem, backward))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterIffLeftElimination(mem Memory, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterIffLeftElimination(handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterNegationIntroduction(mem Memory, thm uint64, p uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterNegationIntroduction(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, p))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterNegationElimination(mem Memory, left, right uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterNegationElimination(handle.New(handle.KindTheorem, left), handle.New(handle.KindTheorem, right))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterForallIntroduction(mem Memory, thm uint64, name uint64, typeHandle uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterForallIntroduction(handle.New(handle.KindTheorem, thm), kernel.Name(name), handle.New(handle.KindType, typeHandle))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterForallElimination(mem Memory, thm uint64, term uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterForallElimination(handle.New(handle.KindTheorem, thm), handle.New(handle.KindTerm, term))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterExistsIntroduction(mem Memory, predicate uint64, witness uint64, thm uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterExistsIntroduction(handle.New(handle.KindTerm, predicate), handle.New(handle.KindTerm, witness), handle.New(handle.KindTheorem, thm))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremRegisterExistsElimination(mem Memory, exists, body uint64, resultOut uint32) int32 {
	h, code := d.State.RegisterExistsElimination(handle.New(handle.KindTheorem, exists), handle.New(handle.KindTheorem, body))
	return fallibleHandle(mem, h, code, resultOut)
}

func (d *Dispatcher) TheoremSplitHypotheses(mem Memory, h uint64, resultBase uint32, resultLengthOut uint32) int32 {
	hyps, code := d.State.SplitHypotheses(handle.New(handle.KindTheorem, h))
	if code != kernel.Success {
		return encode(code)
	}
	writeHandleVector(mem, resultBase, resultLengthOut, hyps)
	return encode(kernel.Success)
}

func (d *Dispatcher) TheoremSplitConclusion(mem Memory, h uint64, resultOut uint32) int32 {
	conclusion, code := d.State.SplitConclusion(handle.New(handle.KindTheorem, h))
	return fallibleHandle(mem, conclusion, code, resultOut)
}
