package hostcall

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// wazeroMemory adapts a wazero-hosted guest's exported linear memory to the
// Memory interface the dispatcher methods expect. It is a minimal,
// package-local, bounds-checked read/write wrapper around api.Memory.
type wazeroMemory struct{ mem api.Memory }

func (m wazeroMemory) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errOutOfBounds
	}
	return data, nil
}

func (m wazeroMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errOutOfBounds
	}
	return nil
}

func (m wazeroMemory) ReadU8(offset uint32) (uint8, error) {
	data, err := m.Read(offset, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

func (m wazeroMemory) ReadU16(offset uint32) (uint16, error) {
	data, err := m.Read(offset, 2)
	if err != nil {
		return 0, err
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}

func (m wazeroMemory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errOutOfBounds
	}
	return v, nil
}

func (m wazeroMemory) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, errOutOfBounds
	}
	return v, nil
}

func (m wazeroMemory) WriteU8(offset uint32, value uint8) error {
	return m.Write(offset, []byte{value})
}

func (m wazeroMemory) WriteU16(offset uint32, value uint16) error {
	return m.Write(offset, []byte{byte(value), byte(value >> 8)})
}

func (m wazeroMemory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return errOutOfBounds
	}
	return nil
}

func (m wazeroMemory) WriteU64(offset uint32, value uint64) error {
	if !m.mem.WriteUint64Le(offset, value) {
		return errOutOfBounds
	}
	return nil
}

type outOfBoundsError struct{}

func (outOfBoundsError) Error() string { return "wazero memory access out of bounds" }

var errOutOfBounds = outOfBoundsError{}

func memoryOf(mod api.Module) Memory { return wazeroMemory{mem: mod.Memory()} }

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

// Func returns the api.GoModuleFunc implementing call c against d, together
// with its wazero parameter and result value types, following wazero's raw
// stack-based host-function convention, the same one the linker package's
// host-module builder registers: arguments arrive in stack[0:len(params)] in
// declared order and results are written back starting at stack[0].
func (d *Dispatcher) Func(c Call) (fn api.GoModuleFunc, params, results []api.ValueType) {
	u32 := func(v uint64) uint32 { return uint32(v) }

	switch c {

	////////////////////////////////////////////////////////////////////
	// Type-former calls.
	////////////////////////////////////////////////////////////////////
	case TypeFormerResolve:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(uint32(d.TypeFormerResolve(memoryOf(mod), s[0], u32(s[1]))))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TypeFormerIsRegistered:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(d.TypeFormerIsRegistered(s[0]))
		}), []api.ValueType{i64}, []api.ValueType{i32}
	case TypeFormerRegister:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = d.TypeFormerRegister(s[0])
		}), []api.ValueType{i64}, []api.ValueType{i64}

	////////////////////////////////////////////////////////////////////
	// Type calls.
	////////////////////////////////////////////////////////////////////
	case TypeIsRegistered:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(d.TypeIsRegistered(s[0]))
		}), []api.ValueType{i64}, []api.ValueType{i32}
	case TypeRegisterVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = d.TypeRegisterVariable(s[0])
		}), []api.ValueType{i64}, []api.ValueType{i64}
	case TypeRegisterCombination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeRegisterCombination(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3])))
		}), []api.ValueType{i64, i32, i64, i32}, []api.ValueType{i32}
	case TypeRegisterFunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeRegisterFunction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TypeSplitVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeSplitVariable(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TypeSplitCombination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeSplitCombination(memoryOf(mod), s[0], u32(s[1]), u32(s[2]), u32(s[3])))
		}), []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}
	case TypeSplitFunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeSplitFunction(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}

	case TypeTestVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeTestVariable(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TypeTestCombination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeTestCombination(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TypeTestFunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeTestFunction(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	case TypeSize:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeSize(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TypeVariables:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeVariables(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TypeSubstitute:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TypeSubstitute(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}

	////////////////////////////////////////////////////////////////////
	// Constant calls.
	////////////////////////////////////////////////////////////////////
	case ConstantResolve:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.ConstantResolve(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case ConstantIsRegistered:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(d.ConstantIsRegistered(s[0]))
		}), []api.ValueType{i64}, []api.ValueType{i32}
	case ConstantRegister:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.ConstantRegister(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	////////////////////////////////////////////////////////////////////
	// Term calls.
	////////////////////////////////////////////////////////////////////
	case TermIsRegistered:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(d.TermIsRegistered(s[0]))
		}), []api.ValueType{i64}, []api.ValueType{i32}

	case TermRegisterVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterVariable(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterConstant:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterConstant(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}
	case TermRegisterApplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterApplication(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterLambda:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterLambda(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterNegation:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterNegation(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermRegisterConjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterConjunction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterDisjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterDisjunction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterImplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterImplication(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterEquality:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterEquality(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterForall:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterForall(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}
	case TermRegisterExists:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermRegisterExists(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}

	case TermSplitVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitVariable(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitConstant:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitConstant(memoryOf(mod), s[0], u32(s[1]), u32(s[2]), u32(s[3])))
		}), []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}
	case TermSplitApplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitApplication(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitLambda:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitLambda(memoryOf(mod), s[0], u32(s[1]), u32(s[2]), u32(s[3])))
		}), []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}
	case TermSplitNegation:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitNegation(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermSplitConjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitConjunction(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitDisjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitDisjunction(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitImplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitImplication(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitEquality:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitEquality(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSplitForall:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitForall(memoryOf(mod), s[0], u32(s[1]), u32(s[2]), u32(s[3])))
		}), []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}
	case TermSplitExists:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSplitExists(memoryOf(mod), s[0], u32(s[1]), u32(s[2]), u32(s[3])))
		}), []api.ValueType{i64, i32, i32, i32}, []api.ValueType{i32}

	case TermTestVariable:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestVariable(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestConstant:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestConstant(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestApplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestApplication(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestLambda:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestLambda(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestNegation:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestNegation(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestConjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestConjunction(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestDisjunction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestDisjunction(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestImplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestImplication(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestEquality:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestEquality(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestForall:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestForall(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTestExists:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTestExists(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	case TermFreeVariables:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermFreeVariables(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermSubstitute:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermSubstitute(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}

	case TermTypeVariables:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTypeVariables(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TermTypeSubstitute:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTypeSubstitute(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}
	case TermTypeInfer:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTypeInfer(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TermTypeIsProposition:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TermTypeIsProposition(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	////////////////////////////////////////////////////////////////////
	// Theorem calls.
	////////////////////////////////////////////////////////////////////
	case TheoremIsRegistered:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = uint64(d.TheoremIsRegistered(s[0]))
		}), []api.ValueType{i64}, []api.ValueType{i32}

	case TheoremRegisterAssumption:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterAssumption(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterWeaken:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterWeaken(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterReflexivity:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterReflexivity(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterSymmetry:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterSymmetry(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterTransitivity:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterTransitivity(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterBeta:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterBeta(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterEta:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterEta(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterApplication:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterApplication(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterLambda:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterLambda(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterSubstitute:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterSubstitute(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterTypeSubstitute:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterTypeSubstitute(memoryOf(mod), s[0], u32(s[1]), s[2], u32(s[3]), s[4], u32(s[5])))
		}), []api.ValueType{i64, i32, i64, i32, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterTruthIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterTruthIntroduction(memoryOf(mod), u32(s[0]), s[1], u32(s[2])))
		}), []api.ValueType{i32, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterFalsityElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterFalsityElimination(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterConjunctionIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterConjunctionIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterConjunctionLeftElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterConjunctionLeftElimination(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	case TheoremRegisterConjunctionRightElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterConjunctionRightElimination(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	case TheoremRegisterDisjunctionElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterDisjunctionElimination(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterDisjunctionLeftIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterDisjunctionLeftIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterDisjunctionRightIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterDisjunctionRightIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterImplicationIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterImplicationIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterImplicationElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterImplicationElimination(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterIffIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterIffIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterIffLeftElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterIffLeftElimination(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}

	case TheoremRegisterNegationIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterNegationIntroduction(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterNegationElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterNegationElimination(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremRegisterForallIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterForallIntroduction(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterForallElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterForallElimination(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterExistsIntroduction:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterExistsIntroduction(memoryOf(mod), s[0], s[1], s[2], u32(s[3])))
		}), []api.ValueType{i64, i64, i64, i32}, []api.ValueType{i32}
	case TheoremRegisterExistsElimination:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremRegisterExistsElimination(memoryOf(mod), s[0], s[1], u32(s[2])))
		}), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}

	case TheoremSplitHypotheses:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremSplitHypotheses(memoryOf(mod), s[0], u32(s[1]), u32(s[2])))
		}), []api.ValueType{i64, i32, i32}, []api.ValueType{i32}
	case TheoremSplitConclusion:
		return goFunc(func(mod api.Module, s []uint64) {
			s[0] = code(d.TheoremSplitConclusion(memoryOf(mod), s[0], u32(s[1])))
		}), []api.ValueType{i64, i32}, []api.ValueType{i32}
	}

	return nil, nil, nil
}

func code(c int32) uint64 { return uint64(uint32(c)) }

// goFunc adapts a (api.Module, stack) closure to api.GoModuleFunc, discarding
// the context parameter: no dispatcher method is context-sensitive, since a
// kernel.State transition never blocks or outlives the call that drives it.
func goFunc(f func(mod api.Module, stack []uint64)) api.GoModuleFunc {
	return api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
		f(mod, stack)
	})
}
