package kernel

// Trap represents a fatal kernel condition: a violation of a
// kernel invariant that ends the session rather than returning a recoverable
// ErrorCode. Traps are raised with panic(Trap{...}) at the single point the
// invariant is checked. Nothing in this repository recovers one: the panic
// propagates out of the host-call dispatcher (package hostcall) into wazero,
// which ends the guest call and reports it to the host as an error.
// The guest itself can never catch a Trap.
type Trap struct {
	Reason string
}

func (t Trap) Error() string { return "kernel trap: " + t.Reason }

// Fatal reasons. Handle exhaustion is reported directly as a
// handle.ExhaustedError panic and is not duplicated here; that panic
// propagates to the host the same way a Trap does.
const (
	reasonDanglingHandle   = "dangling handle: a stored object referenced an unregistered child"
	reasonNameExhausted    = "fresh-name generator exhausted its search space"
	reasonMemoryOutOfBound = "guest linear memory access out of bounds"
)

func trapDanglingHandle() { panic(Trap{Reason: reasonDanglingHandle}) }

func trapNameExhausted() { panic(Trap{Reason: reasonNameExhausted}) }

// TrapMemoryOutOfBound is raised by package hostcall when a guest-supplied
// pointer/length pair falls outside the guest's linear memory. It is
// exported because memory bounds are a property of the ABI boundary, not of
// the kernel's own tables, but the resulting condition is just as fatal.
func TrapMemoryOutOfBound() { panic(Trap{Reason: reasonMemoryOutOfBound}) }
