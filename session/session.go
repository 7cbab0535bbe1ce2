// Package session wires a kernel.State and its hostcall.Dispatcher to a
// wazero-hosted guest: it uses a linker.Linker to build the "env" host
// module a guest prover links against, instantiates the guest's core WASM
// module, and exposes a thin Call surface over the guest's own exports. A
// Session owns exactly one kernel.State and is not safe for concurrent use,
// matching the kernel's own single-threaded contract.
package session

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/veracruz-project/supervisionary/errors"
	"github.com/veracruz-project/supervisionary/hostcall"
	"github.com/veracruz-project/supervisionary/kernel"
	"github.com/veracruz-project/supervisionary/linker"
)

// envModuleName is the import namespace a guest links its host calls
// against; every hostcall.Call export lives under this single namespace.
const envModuleName = "env"

// Session is one running instance of the kernel bound to one guest module.
type Session struct {
	runtime    wazero.Runtime
	linker     *linker.Linker
	env        api.Module
	guest      api.Module
	state      *kernel.State
	dispatcher *hostcall.Dispatcher
	logger     *zap.Logger
}

// Config configures a Session at creation time.
type Config struct {
	// MemoryLimitPages bounds the guest's linear memory, in 64KiB pages. 0
	// selects wazero's default (4GiB).
	MemoryLimitPages uint32

	// Logger receives structured session lifecycle events. A no-op logger
	// is used when nil.
	Logger *zap.Logger
}

// New creates a Session with a fresh kernel.State and the "env" host module
// bound, but no guest module loaded yet. Call Load to link and instantiate a
// guest.
func New(ctx context.Context, cfg Config) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	state := kernel.NewState()
	dispatcher := hostcall.NewDispatcher(state)

	l := linker.New(rt)
	builder := l.NewHostModule(envModuleName)
	for c := hostcall.Call(0); int(c) < hostcall.CallCount; c++ {
		fn, params, results := dispatcher.Func(c)
		if fn == nil {
			return nil, errors.New(errors.PhaseHost, errors.KindMissingImport).
				Detail("host call %d (%s) has no binding", c, c.Name()).
				Build()
		}
		builder = builder.Func(c.Name(), fn, params, results)
	}

	env, err := builder.Build(ctx)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate env module: %w", err)
	}

	logger.Info("kernel session started", zap.Int("host_calls", hostcall.CallCount))

	return &Session{
		runtime:    rt,
		linker:     l,
		env:        env,
		state:      state,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// State returns the kernel state this session drives. Useful for a host-side
// REPL or test harness that wants to inspect or seed kernel objects without
// going through the guest ABI.
func (s *Session) State() *kernel.State { return s.state }

// Load compiles and instantiates a guest core WASM module against this
// session's "env" host module. The previous guest, if any, is closed first.
func (s *Session) Load(ctx context.Context, wasmBytes []byte) error {
	compiled, err := s.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("compile guest module: %w", err)
	}

	if s.guest != nil {
		if err := s.guest.Close(ctx); err != nil {
			s.logger.Warn("close previous guest", zap.Error(err))
		}
		s.guest = nil
	}

	modConfig := wazero.NewModuleConfig().WithName("")
	instance, err := s.runtime.InstantiateModule(ctx, compiled, modConfig)
	if err != nil {
		return fmt.Errorf("instantiate guest module: %w", err)
	}
	s.guest = instance

	s.logger.Info("guest module loaded", zap.Int("exports", len(instance.ExportedFunctionDefinitions())))
	return nil
}

// ExportNames returns the names the loaded guest exports, in no particular
// order (wazero reports the export definitions as a map).
func (s *Session) ExportNames() []string {
	if s.guest == nil {
		return nil
	}
	defs := s.guest.ExportedFunctionDefinitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	return names
}

// ExportedFunctionDefinition returns the loaded guest's wazero function
// definition for name, so a front end can report a call's arity and word
// widths without having to load and call it first.
func (s *Session) ExportedFunctionDefinition(name string) (api.FunctionDefinition, bool) {
	if s.guest == nil {
		return nil, false
	}
	def, ok := s.guest.ExportedFunctionDefinitions()[name]
	return def, ok
}

// Call invokes a guest-exported function by name with raw u64 wasm
// arguments, returning its raw u64 results. A panic raised by a Trap or
// handle.ExhaustedError while servicing a host call during this call
// surfaces here as a non-nil error: the guest instance should be considered
// dead and the Session discarded.
func (s *Session) Call(ctx context.Context, name string, args ...uint64) ([]uint64, error) {
	if s.guest == nil {
		return nil, errors.New(errors.PhaseRuntime, errors.KindNotInitialized).
			Detail("no guest module loaded").
			Build()
	}
	fn := s.guest.ExportedFunction(name)
	if fn == nil {
		return nil, errors.New(errors.PhaseRuntime, errors.KindNotFound).
			Path(name).
			Detail("guest has no such export").
			Build()
	}
	results, err := fn.Call(ctx, args...)
	if err != nil {
		s.logger.Error("guest call failed", zap.String("func", name), zap.Error(err))
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	return results, nil
}

// Close releases the guest instance, the "env" host module, and the
// underlying wazero runtime, in that order.
func (s *Session) Close(ctx context.Context) error {
	var firstErr error
	if s.guest != nil {
		if err := s.guest.Close(ctx); err != nil {
			firstErr = err
		}
		s.guest = nil
	}
	if s.env != nil {
		if err := s.env.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		s.env = nil
	}
	if err := s.runtime.Close(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.linker.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
