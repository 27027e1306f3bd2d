//go:build darwin

package mtl

import (
	"errors"
	"testing"
	"time"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

const testShaderSource = `
#include <metal_stdlib>
using namespace metal;

kernel void saxpy(device float *y [[buffer(0)]],
                  const device float *x [[buffer(1)]],
                  constant float &a [[buffer(2)]],
                  uint gid [[thread_position_in_grid]]) {
	y[gid] = a * x[gid] + y[gid];
}

vertex float4 passthrough_vertex(const device packed_float3 *vertices [[buffer(0)]],
                                 uint vid [[vertex_id]]) {
	return float4(vertices[vid], 1.0);
}

fragment float4 solid_fragment() {
	return float4(1.0, 0.0, 0.0, 1.0);
}
`

func compileTestLibrary(t *testing.T, dev Device) Library {
	t.Helper()
	lib, err := dev.NewLibraryWithSource(testShaderSource, CompileOptions{})
	if err != nil {
		t.Fatalf("NewLibraryWithSource failed: %v", err)
	}
	t.Cleanup(lib.Release)
	return lib
}

func TestNewLibraryWithSource(t *testing.T) {
	dev := newTestDevice(t)
	lib := compileTestLibrary(t, dev)

	names := lib.FunctionNames()
	want := map[string]bool{"saxpy": false, "passthrough_vertex": false, "solid_fragment": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("FunctionNames missing %q (got %v)", n, names)
		}
	}
}

func TestNewFunctionWithName(t *testing.T) {
	dev := newTestDevice(t)
	lib := compileTestLibrary(t, dev)

	fn, err := lib.NewFunctionWithName("saxpy")
	if err != nil {
		t.Fatalf("NewFunctionWithName(saxpy) failed: %v", err)
	}
	defer fn.Release()

	if got := fn.Name(); got != "saxpy" {
		t.Errorf("function name = %q, want %q", got, "saxpy")
	}
	if got := fn.FunctionType(); got != FunctionTypeKernel {
		t.Errorf("function type = %d, want kernel", got)
	}

	vert, err := lib.NewFunctionWithName("passthrough_vertex")
	if err != nil {
		t.Fatalf("NewFunctionWithName(passthrough_vertex) failed: %v", err)
	}
	defer vert.Release()
	if got := vert.FunctionType(); got != FunctionTypeVertex {
		t.Errorf("function type = %d, want vertex", got)
	}

	frag, err := lib.NewFunctionWithName("solid_fragment")
	if err != nil {
		t.Fatalf("NewFunctionWithName(solid_fragment) failed: %v", err)
	}
	defer frag.Release()
	if got := frag.FunctionType(); got != FunctionTypeFragment {
		t.Errorf("function type = %d, want fragment", got)
	}
}

func TestNewFunctionWithNameMissing(t *testing.T) {
	dev := newTestDevice(t)
	lib := compileTestLibrary(t, dev)

	_, err := lib.NewFunctionWithName("no_such_entry_point")
	if !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("err = %v, want ErrFunctionNotFound", err)
	}
}

func TestNewLibraryWithSourceCompileError(t *testing.T) {
	dev := newTestDevice(t)

	_, err := dev.NewLibraryWithSource("kernel void broken( {", CompileOptions{})
	if err == nil {
		t.Fatal("compiling invalid source succeeded")
	}

	var fErr *foundation.Error
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %T, want *foundation.Error with diagnostics", err)
	}
	if fErr.Description == "" {
		t.Error("compiler error carries no diagnostics")
	}
	t.Logf("compiler said: %s", fErr.Description)
}

func TestNewLibraryWithSourceAsync(t *testing.T) {
	dev := newTestDevice(t)

	type result struct {
		lib Library
		err error
	}
	done := make(chan result, 1)
	dev.NewLibraryWithSourceAsync(testShaderSource, CompileOptions{}, func(lib Library, err error) {
		done <- result{lib, err}
	})

	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("async compile failed: %v", res.err)
		}
		defer res.lib.Release()
		if len(res.lib.FunctionNames()) == 0 {
			t.Error("async-compiled library has no functions")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("async compile handler never ran")
	}
}

func TestCompileOptions(t *testing.T) {
	if !IsAvailable() {
		t.Skip("Metal not available")
	}

	opts := NewCompileOptions()
	defer opts.Release()

	opts.SetLanguageVersion(LanguageVersion2_4)
	if got := opts.LanguageVersion(); got != LanguageVersion2_4 {
		t.Errorf("language version = %#x, want %#x", uint(got), uint(LanguageVersion2_4))
	}

	opts.SetFastMathEnabled(false)
	if opts.FastMathEnabled() {
		t.Error("fast math still enabled after disabling")
	}
}
