package linker

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestNewLinker(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)
	if l == nil {
		t.Fatal("New returned nil")
	}
	if l.Runtime() != rt {
		t.Error("Runtime() mismatch")
	}
	if l.Root() == nil {
		t.Fatal("Root() returned nil")
	}
}

func TestLinkerNamespace(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)

	env := l.Namespace("env")
	if env == nil {
		t.Fatal("Namespace returned nil")
	}
	if env.Name() != "env" {
		t.Errorf("Name() = %q, want %q", env.Name(), "env")
	}

	if again := l.Namespace("env"); again != env {
		t.Error("Namespace didn't return the same instance for the same path")
	}
}

func TestLinkerNamespace_Nested(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)

	child := l.Namespace("a/b/c")
	if child.Name() != "c" {
		t.Errorf("Name() = %q, want %q", child.Name(), "c")
	}
	if path := child.FullPath(); path != "a/b/c" {
		t.Errorf("FullPath() = %q, want %q", path, "a/b/c")
	}
}

func TestLinkerNamespace_EmptyPath(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)
	if l.Namespace("") != l.Root() {
		t.Error("Namespace(\"\") should return the root namespace")
	}
}

func TestHostModuleBuilder(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)

	handler := func(ctx context.Context, mod api.Module, stack []uint64) {
		stack[0] = 42
	}

	mod, err := l.NewHostModule("test").
		Func("get-value", handler, nil, []api.ValueType{api.ValueTypeI32}).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if mod == nil {
		t.Fatal("Build returned nil module")
	}
	defer mod.Close(ctx)

	if mod.Name() != "test" {
		t.Errorf("Module name = %q, want %q", mod.Name(), "test")
	}

	exported := mod.ExportedFunction("get-value")
	if exported == nil {
		t.Fatal("get-value was not exported")
	}
	results, err := exported.Call(ctx)
	if err != nil {
		t.Fatalf("calling get-value: %v", err)
	}
	if len(results) != 1 || results[0] != 42 {
		t.Errorf("get-value returned %v, want [42]", results)
	}
}

func TestLinkerRoot(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)

	root := l.Root()
	if root == nil {
		t.Fatal("Root() returned nil")
	}

	if root2 := l.Root(); root2 != root {
		t.Error("Root() should return same namespace")
	}
}

func TestLinkerClose(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	l := New(rt)

	handler := func(ctx context.Context, mod api.Module, stack []uint64) {}
	l.Namespace("env").DefineFunc("func", handler, nil, nil)

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if l.Root().GetChild("env") != nil {
		t.Error("after Close, the previous root namespace should be gone")
	}
}
