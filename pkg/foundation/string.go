//go:build darwin

package foundation

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

var (
	selStringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
	selUTF8String           = objc.RegisterName("UTF8String")
	selLength               = objc.RegisterName("length")
)

// String wraps an NSString.
//
// The zero value wraps a nil reference. Calls on it follow Objective-C
// nil-messaging rules: they do nothing and return zero values.
type String struct {
	id objc.ID
}

// NewString copies s into a fresh NSString. The caller owns the result and
// gives the reference back with Release.
func NewString(s string) String {
	ensureLoaded()
	buf := cString(s)
	str := objc.ID(objc.GetClass("NSString")).Send(selStringWithUTF8String, unsafe.Pointer(&buf[0]))
	// stringWithUTF8String: hands out an autoreleased instance. Take our own
	// reference so the wrapper outlives the enclosing pool.
	retain(str)
	return String{id: str}
}

// StringFromRaw wraps a raw NSString pointer without touching its reference
// count. It reports false when raw is nil.
func StringFromRaw(raw objc.ID) (String, bool) {
	if raw == 0 {
		return String{}, false
	}
	return String{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (s String) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s String) Retain() { retain(s.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (s String) Release() { release(s.id) }

// String returns the receiver's contents as a Go string. It satisfies
// fmt.Stringer.
func (s String) String() string {
	return goString(uintptr(s.id.Send(selUTF8String)))
}

// Len returns the length in UTF-16 code units, matching the native length
// method. This differs from len() of the Go string for characters outside
// the basic multilingual plane.
func (s String) Len() int {
	return int(s.id.Send(selLength))
}
