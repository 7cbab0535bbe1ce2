package linker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Linker assembles wazero host modules out of named Namespace function
// tables. A kernel Session uses it to build its single "env" namespace —
// the entire host-call table a guest links against — instead of driving
// wazero's HostModuleBuilder by hand.
type Linker struct {
	runtime wazero.Runtime
	root    *Namespace
	mu      sync.RWMutex
}

// New creates a Linker bound to rt, with an empty root namespace.
func New(rt wazero.Runtime) *Linker {
	return &Linker{runtime: rt, root: NewNamespace()}
}

// Runtime returns the wazero runtime this Linker builds modules into.
func (l *Linker) Runtime() wazero.Runtime { return l.runtime }

// Root returns the root namespace.
func (l *Linker) Root() *Namespace {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.root
}

// Namespace returns or creates a (possibly "/"-nested) namespace by path.
func (l *Linker) Namespace(path string) *Namespace {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.root
	if path == "" {
		return current
	}
	for _, seg := range strings.Split(path, "/") {
		current = current.Instance(seg)
	}
	return current
}

// HostModuleBuilder accumulates the functions for one wazero host module.
type HostModuleBuilder struct {
	linker     *Linker
	namespace  *Namespace
	moduleName string
}

// NewHostModule starts building a host module named name.
func (l *Linker) NewHostModule(name string) *HostModuleBuilder {
	return &HostModuleBuilder{
		linker:     l,
		namespace:  l.Namespace(name),
		moduleName: name,
	}
}

// Func adds a function export to the host module under construction.
func (b *HostModuleBuilder) Func(name string, fn api.GoModuleFunc, params, results []api.ValueType) *HostModuleBuilder {
	b.namespace.DefineFunc(name, fn, params, results)
	return b
}

// Build instantiates the accumulated functions as a wazero host module.
func (b *HostModuleBuilder) Build(ctx context.Context) (api.Module, error) {
	builder := b.linker.runtime.NewHostModuleBuilder(b.moduleName)

	for _, f := range b.namespace.AllFuncs() {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(f.Handler, f.ParamTypes, f.ResultTypes).
			Export(f.Name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("linker: build host module %q: %w", b.moduleName, err)
	}
	return mod, nil
}

// Close resets the root namespace. It does not close the wazero runtime or
// any module already instantiated from it.
func (l *Linker) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.root = NewNamespace()
	return nil
}
