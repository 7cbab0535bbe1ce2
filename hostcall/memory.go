package hostcall

import (
	wasmruntime "github.com/veracruz-project/supervisionary"
	"github.com/veracruz-project/supervisionary/handle"
	"github.com/veracruz-project/supervisionary/kernel"
)

// Memory is the guest's linear memory, as seen by the dispatcher. It is
// exactly wasmruntime.Memory: the dispatcher never depends on a specific
// WASM engine, only on the capability to read and write bounds-checked
// little-endian words.
type Memory = wasmruntime.Memory

// readHandle reads a RawHandle (a little-endian u64) at offset and tags it
// with kind. Out-of-bounds access is a kernel.Trap: a guest that manages to
// supply a bad pointer has already broken the ABI contract the linker
// enforces, which is a fatal condition, not a recoverable ErrorCode.
func readHandle(mem Memory, offset uint32, kind handle.Kind) handle.Handle {
	v, err := mem.ReadU64(offset)
	if err != nil {
		kernel.TrapMemoryOutOfBound()
	}
	return handle.New(kind, v)
}

func writeHandle(mem Memory, offset uint32, h handle.Handle) {
	if err := mem.WriteU64(offset, h.Value); err != nil {
		kernel.TrapMemoryOutOfBound()
	}
}

func readName(mem Memory, offset uint32) kernel.Name {
	v, err := mem.ReadU64(offset)
	if err != nil {
		kernel.TrapMemoryOutOfBound()
	}
	return kernel.Name(v)
}

func writeName(mem Memory, offset uint32, n kernel.Name) {
	if err := mem.WriteU64(offset, uint64(n)); err != nil {
		kernel.TrapMemoryOutOfBound()
	}
}

func writeBool(mem Memory, offset uint32, b bool) {
	var v uint8
	if b {
		v = 1
	}
	if err := mem.WriteU8(offset, v); err != nil {
		kernel.TrapMemoryOutOfBound()
	}
}

func writeU64(mem Memory, offset uint32, v uint64) {
	if err := mem.WriteU64(offset, v); err != nil {
		kernel.TrapMemoryOutOfBound()
	}
}

// readHandleVector reads a (base, length) pair: length consecutive
// RawHandle words starting at base, each tagged with kind.
func readHandleVector(mem Memory, base uint32, length uint64, kind handle.Kind) []handle.Handle {
	out := make([]handle.Handle, length)
	for i := range out {
		out[i] = readHandle(mem, base+uint32(i)*8, kind)
	}
	return out
}

func writeHandleVector(mem Memory, base uint32, lengthOut uint32, hs []handle.Handle) {
	for i, h := range hs {
		writeHandle(mem, base+uint32(i)*8, h)
	}
	writeU64(mem, lengthOut, uint64(len(hs)))
}

// readNameVector reads length consecutive Name words starting at base.
func readNameVector(mem Memory, base uint32, length uint64) []kernel.Name {
	out := make([]kernel.Name, length)
	for i := range out {
		out[i] = readName(mem, base+uint32(i)*8)
	}
	return out
}

func writeNameVector(mem Memory, base uint32, lengthOut uint32, names []kernel.Name) {
	for i, n := range names {
		writeName(mem, base+uint32(i)*8, n)
	}
	writeU64(mem, lengthOut, uint64(len(names)))
}

// readTypeSubstitution reads a parallel pair of (domain, range) vectors —
// domain names the type-variable Name being replaced, range its paired
// replacement Type handle — and assembles them into a kernel.TypeSubstitution.
func readTypeSubstitution(mem Memory, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64) kernel.TypeSubstitution {
	if domainLength != rangeLength {
		kernel.TrapMemoryOutOfBound()
	}
	domain := readNameVector(mem, domainBase, domainLength)
	rng := readHandleVector(mem, rangeBase, rangeLength, handle.KindType)
	sigma := make(kernel.TypeSubstitution, len(domain))
	for i, n := range domain {
		sigma[n] = rng[i]
	}
	return sigma
}

// readTermSubstitution is readTypeSubstitution's term-level counterpart: the
// range vector holds Term handles rather than Type handles.
func readTermSubstitution(mem Memory, domainBase uint32, domainLength uint64, rangeBase uint32, rangeLength uint64) kernel.TermSubstitution {
	if domainLength != rangeLength {
		kernel.TrapMemoryOutOfBound()
	}
	domain := readNameVector(mem, domainBase, domainLength)
	rng := readHandleVector(mem, rangeBase, rangeLength, handle.KindTerm)
	sigma := make(kernel.TermSubstitution, len(domain))
	for i, n := range domain {
		sigma[n] = rng[i]
	}
	return sigma
}
