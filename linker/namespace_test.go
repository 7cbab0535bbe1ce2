package linker

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero/api"
)

func TestNamespaceInstance(t *testing.T) {
	ns := NewNamespace()

	child := ns.Instance("env")
	if child == nil {
		t.Fatal("Instance returned nil")
	}
	if child.Name() != "env" {
		t.Errorf("Name() = %q, want %q", child.Name(), "env")
	}

	// Same name should return the same instance.
	child2 := ns.Instance("env")
	if child2 != child {
		t.Error("Instance didn't return same child for same name")
	}
}

func TestNamespaceDefineFunc(t *testing.T) {
	ns := NewNamespace()
	handler := func(ctx context.Context, mod api.Module, stack []uint64) {}

	ns.DefineFunc("__type_former_resolve", handler, nil, nil)

	def := ns.GetFunc("__type_former_resolve")
	if def == nil {
		t.Fatal("GetFunc returned nil")
	}
	if def.Name != "__type_former_resolve" {
		t.Errorf("Name = %q, want %q", def.Name, "__type_former_resolve")
	}
}

func TestNamespaceDefineFunc_Overwrites(t *testing.T) {
	ns := NewNamespace()
	first := func(ctx context.Context, mod api.Module, stack []uint64) { stack[0] = 1 }
	second := func(ctx context.Context, mod api.Module, stack []uint64) { stack[0] = 2 }

	ns.DefineFunc("f", first, nil, nil)
	ns.DefineFunc("f", second, nil, nil)

	if len(ns.AllFuncs()) != 1 {
		t.Fatalf("expected 1 func after overwrite, got %d", len(ns.AllFuncs()))
	}
}

func TestNamespaceGetChild(t *testing.T) {
	ns := NewNamespace()

	child := ns.Instance("env")
	if got := ns.GetChild("env"); got != child {
		t.Error("GetChild didn't return the instance created above")
	}
	if got := ns.GetChild("nonexistent"); got != nil {
		t.Error("GetChild should return nil for an unknown name")
	}
}

func TestNamespaceFullPath(t *testing.T) {
	root := NewNamespace()
	env := root.Instance("env")

	if path := env.FullPath(); path != "env" {
		t.Errorf("FullPath() = %q, want %q", path, "env")
	}
}

func TestNamespaceFullPath_NoParent(t *testing.T) {
	ns := NewNamespace()
	ns.name = "root"

	if path := ns.FullPath(); path != "root" {
		t.Errorf("FullPath() = %q, want %q", path, "root")
	}
}

func TestNamespaceAllFuncs(t *testing.T) {
	ns := NewNamespace()
	handler := func(ctx context.Context, mod api.Module, stack []uint64) {}

	ns.DefineFunc("func1", handler, nil, nil)
	ns.DefineFunc("func2", handler, nil, nil)

	funcs := ns.AllFuncs()
	if len(funcs) != 2 {
		t.Errorf("AllFuncs() returned %d funcs, want 2", len(funcs))
	}
	if funcs["func1"] == nil || funcs["func2"] == nil {
		t.Error("AllFuncs() missing expected functions")
	}
}

func TestNamespaceAllChildren(t *testing.T) {
	ns := NewNamespace()

	ns.Instance("child1")
	ns.Instance("child2")

	children := ns.AllChildren()
	if len(children) != 2 {
		t.Errorf("AllChildren() returned %d children, want 2", len(children))
	}
}
