//go:build darwin

package foundation

import "github.com/ebitengine/purego/objc"

var (
	selFileURLWithPath = objc.RegisterName("fileURLWithPath:")
	selPath            = objc.RegisterName("path")
)

// URL wraps an NSURL.
type URL struct {
	id objc.ID
}

// FileURLWithPath builds a file URL for the given file system path. The
// caller owns the result.
func FileURLWithPath(path string) URL {
	ensureLoaded()
	ns := NewString(path)
	defer ns.Release()
	url := objc.ID(objc.GetClass("NSURL")).Send(selFileURLWithPath, ns.Raw())
	// fileURLWithPath: hands out an autoreleased instance.
	retain(url)
	return URL{id: url}
}

// URLFromRaw wraps a raw NSURL pointer without touching its reference
// count. It reports false when raw is nil.
func URLFromRaw(raw objc.ID) (URL, bool) {
	if raw == 0 {
		return URL{}, false
	}
	return URL{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (u URL) Raw() objc.ID { return u.id }

// Retain takes an additional reference to the underlying object.
func (u URL) Retain() { retain(u.id) }

// Release gives up the caller's reference.
func (u URL) Release() { release(u.id) }

// Path returns the receiver's file system path.
func (u URL) Path() string {
	s, _ := StringFromRaw(u.id.Send(selPath))
	return s.String()
}
