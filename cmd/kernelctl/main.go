package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/veracruz-project/supervisionary/kernel"
	"github.com/veracruz-project/supervisionary/session"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to a guest core wasm module")
		funcName    = flag.String("func", "", "Exported guest function to call (optional)")
		argsStr     = flag.String("args", "", "Comma-separated u64 arguments to pass")
		pages       = flag.Uint("pages", 0, "Guest linear memory limit, in 64KiB pages (0 = wazero default)")
		list        = flag.Bool("list", false, "List exported functions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: kernelctl -wasm <file.wasm> [-func name] [-args u64,u64,...]")
		fmt.Fprintln(os.Stderr, "       kernelctl -wasm <file.wasm> -list")
		fmt.Fprintln(os.Stderr, "       kernelctl -wasm <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*wasmFile, uint32(*pages)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*wasmFile, *funcName, *argsStr, uint32(*pages), *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, funcName, argsStr string, pages uint32, listOnly bool) error {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	sess, err := session.New(ctx, session.Config{MemoryLimitPages: pages})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.Close(ctx)

	if err := sess.Load(ctx, data); err != nil {
		return fmt.Errorf("load guest: %w", err)
	}

	fmt.Printf("Guest: %s\n", wasmFile)
	exports := describeExports(sess)
	fmt.Printf("Exports: %d\n\n", len(exports))
	for _, e := range exports {
		fmt.Printf("  %s\n", e.signature())
	}

	if listOnly {
		return nil
	}

	if funcName == "" {
		fmt.Printf("\nNo function specified. Use -func to call one of the exports above.\n")
		return nil
	}

	args, err := parseArgs(argsStr)
	if err != nil {
		return fmt.Errorf("parse args: %w", err)
	}

	fmt.Printf("\nCalling %s(%s)...\n", funcName, joinUint64(args))
	results, err := sess.Call(ctx, funcName, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", funcName, err)
	}

	fmt.Printf("Result: %s\n", formatResults(results))
	return nil
}

// exportInfo is a guest-exported function's raw wasm signature: this ABI has
// no type information beyond scalar i32/i64 words, so unlike a component's
// WIT-typed exports there is nothing richer to show than arity and word
// width per slot.
type exportInfo struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
}

func (e exportInfo) signature() string {
	return fmt.Sprintf("%s(%s) -> (%s)", e.name, joinValueTypes(e.params), joinValueTypes(e.results))
}

func describeExports(sess *session.Session) []exportInfo {
	names := sess.ExportNames()
	out := make([]exportInfo, 0, len(names))
	for _, name := range names {
		def, ok := sess.ExportedFunctionDefinition(name)
		if !ok {
			continue
		}
		out = append(out, exportInfo{name: name, params: def.ParamTypes(), results: def.ResultTypes()})
	}
	return out
}

// valueTypeName names a wasm value type. This ABI only ever declares i32 and
// i64 words, so the switch covers exactly the two that can appear.
func valueTypeName(t api.ValueType) string {
	switch t {
	case api.ValueTypeI32:
		return "i32"
	case api.ValueTypeI64:
		return "i64"
	default:
		return fmt.Sprintf("0x%02x", t)
	}
}

func joinValueTypes(ts []api.ValueType) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = valueTypeName(t)
	}
	return strings.Join(parts, ", ")
}

func joinUint64(vs []uint64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ", ")
}

func parseArgs(argsStr string) ([]uint64, error) {
	if argsStr == "" {
		return nil, nil
	}
	fields := strings.Split(argsStr, ",")
	out := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i, f, err)
		}
		out[i] = v
	}
	return out, nil
}

// formatResults renders raw call results, additionally decoding the first
// word as an ErrorCode when it falls in that code's range: nearly every
// fallible host call returns one in slot zero, and seeing "12 (TypeNotWellformed)"
// instead of a bare "12" is the whole point of a kernel-aware front end rather
// than a generic wasm runner.
func formatResults(results []uint64) string {
	if len(results) == 0 {
		return "(no results)"
	}
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = strconv.FormatUint(r, 10)
		if code, ok := kernel.DecodeErrorCode(int32(uint32(r))); i == 0 && ok {
			parts[i] = fmt.Sprintf("%s (%s)", parts[i], code)
		}
	}
	return strings.Join(parts, ", ")
}
