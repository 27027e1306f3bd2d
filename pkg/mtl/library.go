//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selLanguageVersion     = objc.RegisterName("languageVersion")
	selSetLanguageVersion  = objc.RegisterName("setLanguageVersion:")
	selFastMathEnabled     = objc.RegisterName("fastMathEnabled")
	selSetFastMathEnabled  = objc.RegisterName("setFastMathEnabled:")
	selFunctionNames       = objc.RegisterName("functionNames")
	selNewFunctionWithName = objc.RegisterName("newFunctionWithName:")
	selFunctionType        = objc.RegisterName("functionType")
)

// CompileOptions configures runtime shader compilation.
type CompileOptions struct {
	id objc.ID
}

// NewCompileOptions creates options with the compiler defaults: the most
// recent language version and fast math enabled. The caller owns the
// result.
func NewCompileOptions() CompileOptions {
	return CompileOptions{id: alloc("MTLCompileOptions")}
}

// CompileOptionsFromRaw wraps a raw MTLCompileOptions pointer without
// touching its reference count. It reports false when raw is nil.
func CompileOptionsFromRaw(raw objc.ID) (CompileOptions, bool) {
	if raw == 0 {
		return CompileOptions{}, false
	}
	return CompileOptions{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (o CompileOptions) Raw() objc.ID { return o.id }

// Retain takes an additional reference to the underlying object.
func (o CompileOptions) Retain() { retain(o.id) }

// Release gives up the caller's reference.
func (o CompileOptions) Release() { release(o.id) }

// LanguageVersion returns the Metal Shading Language revision the compiler
// will accept.
func (o CompileOptions) LanguageVersion() LanguageVersion {
	return LanguageVersion(o.id.Send(selLanguageVersion))
}

// SetLanguageVersion pins the Metal Shading Language revision.
func (o CompileOptions) SetLanguageVersion(v LanguageVersion) {
	o.id.Send(selSetLanguageVersion, uint(v))
}

// FastMathEnabled reports whether the compiler may use IEEE-relaxed
// floating point optimizations.
func (o CompileOptions) FastMathEnabled() bool {
	return msgSendB(o.id, selFastMathEnabled)
}

// SetFastMathEnabled toggles IEEE-relaxed floating point optimizations.
func (o CompileOptions) SetFastMathEnabled(enabled bool) {
	o.id.Send(selSetFastMathEnabled, enabled)
}

// Library is a collection of compiled shader functions.
type Library struct {
	id objc.ID
}

// LibraryFromRaw wraps a raw MTLLibrary pointer without touching its
// reference count. It reports false when raw is nil.
func LibraryFromRaw(raw objc.ID) (Library, bool) {
	if raw == 0 {
		return Library{}, false
	}
	return Library{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (l Library) Raw() objc.ID { return l.id }

// Retain takes an additional reference to the underlying object.
func (l Library) Retain() { retain(l.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (l Library) Release() { release(l.id) }

// Label returns the debug label.
func (l Library) Label() string { return stringValue(l.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (l Library) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	l.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device that compiled this library. Borrowed.
func (l Library) Device() Device { return Device{id: l.id.Send(selDevice)} }

// FunctionNames lists the entry points compiled into the library.
func (l Library) FunctionNames() []string {
	arr, ok := foundation.ArrayFromRaw(l.id.Send(selFunctionNames))
	if !ok {
		return nil
	}
	return arr.Strings()
}

// NewFunctionWithName looks up an entry point. The caller owns the result.
func (l Library) NewFunctionWithName(name string) (Function, error) {
	ns := foundation.NewString(name)
	defer ns.Release()
	raw := l.id.Send(selNewFunctionWithName, ns.Raw())
	if raw == 0 {
		return Function{}, ErrFunctionNotFound
	}
	return Function{id: raw}, nil
}

// Function is a single compiled shader entry point.
type Function struct {
	id objc.ID
}

// FunctionFromRaw wraps a raw MTLFunction pointer without touching its
// reference count. It reports false when raw is nil.
func FunctionFromRaw(raw objc.ID) (Function, bool) {
	if raw == 0 {
		return Function{}, false
	}
	return Function{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (f Function) Raw() objc.ID { return f.id }

// Retain takes an additional reference to the underlying object.
func (f Function) Retain() { retain(f.id) }

// Release gives up the caller's reference.
func (f Function) Release() { release(f.id) }

// Name is the entry point name as written in the shader source.
func (f Function) Name() string { return stringValue(f.id.Send(selName)) }

// FunctionType reports whether this is a vertex, fragment or kernel
// function.
func (f Function) FunctionType() FunctionType {
	return FunctionType(f.id.Send(selFunctionType))
}

// Label returns the debug label.
func (f Function) Label() string { return stringValue(f.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (f Function) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	f.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device that owns this function. Borrowed.
func (f Function) Device() Device { return Device{id: f.id.Send(selDevice)} }
