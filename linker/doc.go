// Package linker assembles a wazero host module from a named table of
// Go-implemented functions.
//
// # Main Types
//
//   - Linker: owns a wazero runtime and a root Namespace
//   - Namespace: a named bucket of host functions, with optional children
//   - HostModuleBuilder: accumulates functions and instantiates them as
//     one wazero host module
//
// # Example
//
//	l := linker.New(runtime)
//	env, _ := l.NewHostModule("env").
//		Func("__type_former_resolve", fn, params, results).
//		Build(ctx)
package linker
