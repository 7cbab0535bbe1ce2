package kernel

// ErrorCode is the closed, numbered taxonomy of recoverable host-call
// failures. Every host call returns one of these as its
// wire-level int32 result; zero is success. ErrorCode is never used to
// represent a fatal kernel condition — those are reported as a Trap
// (panic.go) and never cross the ABI as a return value at all.
type ErrorCode int32

const (
	Success ErrorCode = iota
	NoSuchFunction
	NoSuchConstantRegistered
	NoSuchTermRegistered
	NoSuchTheoremRegistered
	NoSuchTypeFormerRegistered
	MismatchedArity
	DomainTypeMismatch
	NoSuchTypeRegistered
	NotAFunctionType
	NotATypeCombination
	NotATypeVariable
	TypeNotWellformed
	NotAConjunction
	NotAConstant
	NotAForall
	NotADisjunction
	NotALambda
	NotAnApplication
	NotAnEquality
	NotAnExists
	NotAnImplication
	NotANegation
	NotAProposition
	NotAVariable
	TermNotWellformed
	ShapeMismatch
	TheoremNotWellformed

	// errorCodeUpperBound is one past the last assigned code (27). Values at
	// or above it are reserved and fail to decode.
	errorCodeUpperBound
)

var errorCodeNames = [...]string{
	"Success",
	"NoSuchFunction",
	"NoSuchConstantRegistered",
	"NoSuchTermRegistered",
	"NoSuchTheoremRegistered",
	"NoSuchTypeFormerRegistered",
	"MismatchedArity",
	"DomainTypeMismatch",
	"NoSuchTypeRegistered",
	"NotAFunctionType",
	"NotATypeCombination",
	"NotATypeVariable",
	"TypeNotWellformed",
	"NotAConjunction",
	"NotAConstant",
	"NotAForall",
	"NotADisjunction",
	"NotALambda",
	"NotAnApplication",
	"NotAnEquality",
	"NotAnExists",
	"NotAnImplication",
	"NotANegation",
	"NotAProposition",
	"NotAVariable",
	"TermNotWellformed",
	"ShapeMismatch",
	"TheoremNotWellformed",
}

func (e ErrorCode) Error() string {
	if e < 0 || int(e) >= len(errorCodeNames) {
		return "unknown error code"
	}
	return errorCodeNames[e]
}

func (e ErrorCode) String() string { return e.Error() }

// Encode returns the wire-level int32 for e. It is the identity function on
// the enum's underlying representation; it exists so that callers marshal
// through a single named conversion point rather than casting ErrorCode
// directly, matching the error-code round-trip requirement.
func (e ErrorCode) Encode() int32 { return int32(e) }

// DecodeErrorCode is the inverse of Encode. It fails on any value outside
// {0,...,27}.
func DecodeErrorCode(wire int32) (ErrorCode, bool) {
	if wire < 0 || wire >= int32(errorCodeUpperBound) {
		return 0, false
	}
	return ErrorCode(wire), true
}
