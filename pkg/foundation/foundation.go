//go:build darwin

// Package foundation binds the slice of Apple's Foundation framework that
// the Metal bindings depend on: NSString, NSError, NSArray, NSURL and
// NSAutoreleasePool.
//
// Every wrapper is a single pointer to a native object. Constructors return
// owned references; Release hands the reference back. Methods translate to
// exactly one Objective-C message send unless their documentation says
// otherwise.
//
// Thread Safety:
//   - Wrappers hold no Go-side state, so sharing them across goroutines is
//     as safe as sharing the underlying native object.
//   - Autorelease pools are per thread. Goroutines calling methods that
//     return autoreleased objects should pin the OS thread and wrap the work
//     in NewAutoreleasePool/Drain.
package foundation

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// Selectors shared across the package. Selector registration needs only the
// Objective-C runtime, which purego loads on import, so resolving these at
// package initialization is safe even before the framework itself loads.
var (
	selAlloc   = objc.RegisterName("alloc")
	selInit    = objc.RegisterName("init")
	selRetain  = objc.RegisterName("retain")
	selRelease = objc.RegisterName("release")
)

var loadOnce sync.Once

// ensureLoaded loads Foundation.framework on first use. Foundation ships
// with every macOS install, so a load failure means the process environment
// is broken beyond what a caller could handle; the only response is a panic.
func ensureLoaded() {
	loadOnce.Do(func() {
		_, err := purego.Dlopen("/System/Library/Frameworks/Foundation.framework/Foundation", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			panic(fmt.Sprintf("foundation: load Foundation.framework: %v", err))
		}
	})
}

// Range is the NSRange structure: a span described by its starting location
// and length.
type Range struct {
	Location uint
	Length   uint
}

func retain(id objc.ID)  { id.Send(selRetain) }
func release(id objc.ID) { id.Send(selRelease) }

// cString returns a NUL-terminated copy of s for handing to native code.
// The caller keeps the slice alive for the duration of the call.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// goString copies a NUL-terminated UTF-8 C string into Go memory.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
