package session

import (
	"context"
	"testing"

	"github.com/veracruz-project/supervisionary/handle"
	"github.com/veracruz-project/supervisionary/hostcall"
	"github.com/veracruz-project/supervisionary/wat"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	ctx := context.Background()
	s, err := New(ctx, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close(ctx) })
	return s
}

func TestNew_BindsEveryHostCall(t *testing.T) {
	s := newTestSession(t)
	for c := hostcall.Call(0); int(c) < hostcall.CallCount; c++ {
		fn, params, _ := s.dispatcher.Func(c)
		if fn == nil {
			t.Errorf("call %d (%s) has no binding", c, c.Name())
		}
		if params == nil {
			// every call in this ABI takes at least one argument.
			t.Errorf("call %d (%s) declares no param types", c, c.Name())
		}
	}
}

func TestSession_LoadAndCall_NoMemory(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	guest, err := wat.Compile(`(module
		(import "env" "__type_register_variable" (func $reg_var (param i64) (result i64)))
		(memory (export "memory") 1)
		(func (export "make_type_var") (param $name i64) (result i64)
			local.get $name
			call $reg_var))`)
	if err != nil {
		t.Fatalf("compile guest: %v", err)
	}

	if err := s.Load(ctx, guest); err != nil {
		t.Fatalf("Load: %v", err)
	}

	results, err := s.Call(ctx, "make_type_var", 7)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	h := results[0]
	if !s.State().IsTypeRegistered(handle.New(handle.KindType, h)) {
		t.Errorf("returned handle %d was not registered as a type", h)
	}
}

func TestSession_LoadAndCall_GuestMemoryRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	guest, err := wat.Compile(`(module
		(import "env" "__type_former_resolve" (func $resolve (param i64 i32) (result i32)))
		(memory (export "memory") 1)
		(func (export "resolve_prop_former") (result i32)
			i64.const 0
			i32.const 0
			call $resolve)
		(func (export "read_arity") (result i64)
			i32.const 0
			i64.load))`)
	if err != nil {
		t.Fatalf("compile guest: %v", err)
	}

	if err := s.Load(ctx, guest); err != nil {
		t.Fatalf("Load: %v", err)
	}

	codeResult, err := s.Call(ctx, "resolve_prop_former")
	if err != nil {
		t.Fatalf("Call resolve_prop_former: %v", err)
	}
	if codeResult[0] != 0 {
		t.Fatalf("expected ErrorCode Success (0), got %d", codeResult[0])
	}

	arityResult, err := s.Call(ctx, "read_arity")
	if err != nil {
		t.Fatalf("Call read_arity: %v", err)
	}
	if arityResult[0] != 0 {
		t.Errorf("expected Prop former arity 0, got %d", arityResult[0])
	}
}

func TestSession_Call_UnknownExport(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	guest, err := wat.Compile(`(module (memory (export "memory") 1))`)
	if err != nil {
		t.Fatalf("compile guest: %v", err)
	}
	if err := s.Load(ctx, guest); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := s.Call(ctx, "does_not_exist"); err == nil {
		t.Error("expected error calling unknown export")
	}
}

func TestSession_ExportNames(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	guest, err := wat.Compile(`(module
		(memory (export "memory") 1)
		(func (export "noop")))`)
	if err != nil {
		t.Fatalf("compile guest: %v", err)
	}
	if err := s.Load(ctx, guest); err != nil {
		t.Fatalf("Load: %v", err)
	}

	found := false
	for _, name := range s.ExportNames() {
		if name == "noop" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected export %q in %v", "noop", s.ExportNames())
	}
}
