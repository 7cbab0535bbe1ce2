// Package wasmruntime provides the Memory interface through which the
// host-call dispatcher reads and writes guest linear memory, together with
// the MemorySizer and Allocator interfaces, which no package here uses.
//
// # Architecture Overview
//
// The repository is organized into several packages with distinct
// responsibilities:
//
//	wasmruntime/      Root package: the Memory/Allocator interfaces guest
//	                  linear memory is read and written through
//	├── kernel/       The logical kernel: interning state, primitive
//	                  inference rules, term/type algebra
//	├── handle/       Tagged, trust-root handles into the kernel's tables
//	├── hostcall/     The numbered host-call table and its dispatcher,
//	                  translating wire arguments into kernel calls
//	├── linker/       Assembles the dispatcher's functions into a wazero
//	                  host module
//	├── session/      Wires a kernel.State, a hostcall.Dispatcher and a
//	                  linker.Linker together around one guest instance
//	├── errors/       Structured, phase-tagged error types
//	├── wat/          WAT text format to WASM binary compiler, used by
//	                  tests to assemble guest fixtures without a toolchain
//	└── cmd/kernelctl/ Interactive CLI front end
//
// # Memory Model
//
// WASM linear memory can only grow, never shrink. This is a WebAssembly
// specification limitation. The dispatcher never allocates guest memory
// itself; every host call that returns variable-length data writes into a
// buffer the guest has already allocated and passed by (pointer, length).
package wasmruntime
