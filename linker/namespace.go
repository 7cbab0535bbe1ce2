package linker

import (
	"sync"

	"github.com/tetratelabs/wazero/api"
)

// FuncDef defines a single host function bound at a name within a Namespace.
type FuncDef struct {
	Name        string
	Handler     api.GoModuleFunc
	ParamTypes  []api.ValueType
	ResultTypes []api.ValueType
}

// Namespace is a named bucket of host functions, optionally containing
// child namespaces. A kernel session needs exactly one: the flat "env"
// namespace every hostcall.Call lives under. The tree shape is kept
// rather than flattened to a single map, so a session that ends up
// hosting more than one guest namespace (a second kernel instance, or a
// guest-side library module) has somewhere to hang it without reshaping
// this package again.
type Namespace struct {
	name     string
	funcs    map[string]*FuncDef
	children map[string]*Namespace
	parent   *Namespace
	mu       sync.RWMutex
}

// NewNamespace creates a root namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		funcs:    make(map[string]*FuncDef),
		children: make(map[string]*Namespace),
	}
}

// Name returns the namespace's own name ("" for the root).
func (ns *Namespace) Name() string { return ns.name }

// FullPath returns the "/"-joined path from the root to this namespace.
func (ns *Namespace) FullPath() string {
	if ns.parent == nil {
		return ns.name
	}
	parentPath := ns.parent.FullPath()
	if parentPath == "" {
		return ns.name
	}
	return parentPath + "/" + ns.name
}

// Instance returns the child namespace named name, creating it if absent.
func (ns *Namespace) Instance(name string) *Namespace {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	if child, ok := ns.children[name]; ok {
		return child
	}
	child := &Namespace{
		name:     name,
		funcs:    make(map[string]*FuncDef),
		children: make(map[string]*Namespace),
		parent:   ns,
	}
	ns.children[name] = child
	return child
}

// DefineFunc registers a host function in this namespace, overwriting any
// existing function of the same name.
func (ns *Namespace) DefineFunc(name string, fn api.GoModuleFunc, params, results []api.ValueType) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.funcs[name] = &FuncDef{
		Name:        name,
		Handler:     fn,
		ParamTypes:  params,
		ResultTypes: results,
	}
}

// GetFunc returns a function by name, or nil if not found.
func (ns *Namespace) GetFunc(name string) *FuncDef {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.funcs[name]
}

// GetChild returns a child namespace by name, or nil if not found.
func (ns *Namespace) GetChild(name string) *Namespace {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.children[name]
}

// AllFuncs returns a snapshot of every function defined directly in this
// namespace (not recursing into children).
func (ns *Namespace) AllFuncs() map[string]*FuncDef {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	out := make(map[string]*FuncDef, len(ns.funcs))
	for k, v := range ns.funcs {
		out[k] = v
	}
	return out
}

// AllChildren returns a snapshot of this namespace's direct children.
func (ns *Namespace) AllChildren() map[string]*Namespace {
	ns.mu.RLock()
	defer ns.mu.RUnlock()

	out := make(map[string]*Namespace, len(ns.children))
	for k, v := range ns.children {
		out[k] = v
	}
	return out
}
