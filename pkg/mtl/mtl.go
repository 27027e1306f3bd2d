//go:build darwin

// Package mtl provides Go bindings to Apple's Metal API.
//
// The bindings talk to Metal through direct Objective-C message sends using
// purego, so no CGO toolchain is involved. Metal.framework is loaded lazily
// on first use and the hot message-send path costs one dynamic call per
// method.
//
// Object Model:
//   - Every Metal object is wrapped by a struct holding exactly one pointer.
//     Wrappers are values; copying one copies the pointer, not the object.
//   - Constructors and methods that create objects (NewBuffer, CommandBuffer,
//     RenderCommandEncoder, ...) return owned references. Call Release when
//     done, or Retain to share ownership.
//   - Methods that navigate to an existing object (Device backpointers,
//     descriptor sub-objects such as attachment arrays) return borrowed
//     references, valid while the parent is alive. Retain them to keep them
//     longer.
//   - XxxFromRaw wraps a pointer obtained elsewhere without touching its
//     reference count and reports false for nil.
//
// Errors:
//   - Methods backed by an NSError out-parameter return a populated error on
//     failure, synthesizing one if the native side fails without details.
//   - Creation methods that can return nil without an NSError return a
//     package sentinel error.
//   - Violations of invariants Metal itself guarantees panic instead of
//     returning an error.
//
// Thread Safety: wrappers hold no Go-side state. A wrapper is exactly as
// thread-safe as the Metal object behind it; consult Metal's own rules (for
// example, command encoders are single-threaded, devices and queues are
// not).
package mtl

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

// Errors
var (
	ErrNotAvailable          = errors.New("mtl: Metal is not available (framework not found)")
	ErrNoDevice              = errors.New("mtl: no Metal device found")
	ErrQueueCreation         = errors.New("mtl: failed to create command queue")
	ErrCommandBufferCreation = errors.New("mtl: failed to create command buffer")
	ErrEncoderCreation       = errors.New("mtl: failed to create command encoder")
	ErrBufferCreation        = errors.New("mtl: failed to create buffer")
	ErrTextureCreation       = errors.New("mtl: failed to create texture")
	ErrStateCreation         = errors.New("mtl: failed to create state object")
	ErrLibraryCreation       = errors.New("mtl: failed to create library")
	ErrFunctionNotFound      = errors.New("mtl: function not found in library")
	ErrHeapCreation          = errors.New("mtl: failed to create heap")
	ErrEventCreation         = errors.New("mtl: failed to create event")
	ErrCapture               = errors.New("mtl: capture failed")
)

// Selectors shared across the package.
var (
	selAlloc    = objc.RegisterName("alloc")
	selInit     = objc.RegisterName("init")
	selRetain   = objc.RegisterName("retain")
	selRelease  = objc.RegisterName("release")
	selLabel    = objc.RegisterName("label")
	selSetLabel = objc.RegisterName("setLabel:")
	selDevice   = objc.RegisterName("device")
	selName     = objc.RegisterName("name")
)

// Metal framework entry points and typed objc_msgSend variants.
//
// The generic Send helper moves arguments and results through pointer-sized
// integer registers. That is wrong for BOOL (one byte), float (vector
// registers) and struct returns (hidden pointer or register pairs), so the
// message-send entry point is additionally registered under the concrete
// signatures those calls need.
var (
	metalLib uintptr
	metalMu  sync.Mutex
	metalErr error

	mtlCreateSystemDefaultDevice func() objc.ID
	mtlCopyAllDevices            func() objc.ID

	msgSendB          func(recv objc.ID, sel objc.SEL) bool
	msgSendB1         func(recv objc.ID, sel objc.SEL, arg0 uintptr) bool
	msgSendB2         func(recv objc.ID, sel objc.SEL, arg0 uintptr, arg1 unsafe.Pointer) bool
	msgSendU32        func(recv objc.ID, sel objc.SEL) uint32
	msgSendF32        func(recv objc.ID, sel objc.SEL) float32
	msgSendF64        func(recv objc.ID, sel objc.SEL) float64
	msgSendSize       func(recv objc.ID, sel objc.SEL) Size
	msgSendSizeAlign1 func(recv objc.ID, sel objc.SEL, arg0 uintptr) SizeAndAlign
	msgSendSizeAlign2 func(recv objc.ID, sel objc.SEL, arg0, arg1 uintptr) SizeAndAlign
	msgSendClearColor func(recv objc.ID, sel objc.SEL) ClearColor
)

// ensureMetal loads Metal.framework and registers function pointers on
// first use. Safe to call from any goroutine; the first error is cached and
// returned to every subsequent caller.
func ensureMetal() error {
	metalMu.Lock()
	defer metalMu.Unlock()

	if metalLib != 0 {
		return nil // Already initialized
	}
	if metalErr != nil {
		return metalErr // Previously failed
	}

	lib, err := purego.Dlopen("/System/Library/Frameworks/Metal.framework/Metal", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		metalErr = fmt.Errorf("%w: %v", ErrNotAvailable, err)
		return metalErr
	}
	objcLib, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		metalErr = fmt.Errorf("%w: %v", ErrNotAvailable, err)
		return metalErr
	}

	registerFunctions(lib, objcLib)
	metalLib = lib
	return nil
}

func registerFunctions(lib, objcLib uintptr) {
	purego.RegisterLibFunc(&mtlCreateSystemDefaultDevice, lib, "MTLCreateSystemDefaultDevice")
	purego.RegisterLibFunc(&mtlCopyAllDevices, lib, "MTLCopyAllDevices")

	purego.RegisterLibFunc(&msgSendB, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendB1, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendB2, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendU32, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendF32, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendF64, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendSizeAlign1, objcLib, "objc_msgSend")
	purego.RegisterLibFunc(&msgSendSizeAlign2, objcLib, "objc_msgSend")

	// Struct returns wider than two registers come back through a hidden
	// pointer on amd64, served by the _stret entry point. arm64 has no
	// _stret; the regular entry point covers every struct return there.
	structEntry := "objc_msgSend"
	if runtime.GOARCH == "amd64" {
		structEntry = "objc_msgSend_stret"
	}
	purego.RegisterLibFunc(&msgSendSize, objcLib, structEntry)
	purego.RegisterLibFunc(&msgSendClearColor, objcLib, structEntry)
}

// frameworkMust loads Metal for constructors that have no error return.
// Metal.framework ships with every supported macOS version, so a load
// failure is environmental corruption rather than a condition callers could
// recover from.
func frameworkMust() {
	if err := ensureMetal(); err != nil {
		panic(err)
	}
}

func retain(id objc.ID)  { id.Send(selRetain) }
func release(id objc.ID) { id.Send(selRelease) }

// alloc instantiates a class via alloc/init and returns the owned result.
func alloc(class string) objc.ID {
	frameworkMust()
	return objc.ID(objc.GetClass(class)).Send(selAlloc).Send(selInit)
}

// stringValue reads an NSString return value into a Go string. The native
// string is borrowed only for the duration of the copy.
func stringValue(raw objc.ID) string {
	s, _ := foundation.StringFromRaw(raw)
	return s.String()
}

// errorOrFallback converts the NSError out-parameter of a failed call into
// a Go error. Some calls fail without filling the out-parameter; those
// callers get the fallback sentinel rather than a nil error.
func errorOrFallback(raw objc.ID, fallback error) error {
	if e := foundation.WrapError(raw); e != nil {
		return e
	}
	return fallback
}

// IsAvailable reports whether Metal can be used on this system.
func IsAvailable() bool {
	if err := ensureMetal(); err != nil {
		return false
	}
	dev := mtlCreateSystemDefaultDevice()
	if dev == 0 {
		return false
	}
	release(dev)
	return true
}

// CreateSystemDefaultDevice returns the preferred system Metal device. The
// caller owns the returned device.
func CreateSystemDefaultDevice() (Device, error) {
	if err := ensureMetal(); err != nil {
		return Device{}, err
	}
	raw := mtlCreateSystemDefaultDevice()
	if raw == 0 {
		return Device{}, ErrNoDevice
	}
	return Device{id: raw}, nil
}

// CopyAllDevices returns every Metal device in the system. The caller owns
// each returned device.
func CopyAllDevices() ([]Device, error) {
	if err := ensureMetal(); err != nil {
		return nil, err
	}
	arr, ok := foundation.ArrayFromRaw(mtlCopyAllDevices())
	if !ok {
		return nil, nil
	}
	defer arr.Release() // the Copy in the native name transfers the array to us

	n := arr.Count()
	devices := make([]Device, 0, n)
	for i := 0; i < n; i++ {
		raw := arr.ObjectAtIndex(i)
		// Elements are borrowed from the array, which goes away below.
		retain(raw)
		devices = append(devices, Device{id: raw})
	}
	return devices, nil
}
