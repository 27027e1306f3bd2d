//go:build darwin

package foundation

import "github.com/ebitengine/purego/objc"

var (
	selCount         = objc.RegisterName("count")
	selObjectAtIndex = objc.RegisterName("objectAtIndex:")
)

// Array wraps an NSArray.
type Array struct {
	id objc.ID
}

// ArrayFromRaw wraps a raw NSArray pointer without touching its reference
// count. It reports false when raw is nil.
func ArrayFromRaw(raw objc.ID) (Array, bool) {
	if raw == 0 {
		return Array{}, false
	}
	return Array{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (a Array) Raw() objc.ID { return a.id }

// Retain takes an additional reference to the underlying object.
func (a Array) Retain() { retain(a.id) }

// Release gives up the caller's reference.
func (a Array) Release() { release(a.id) }

// Count returns the number of elements.
func (a Array) Count() int {
	return int(a.id.Send(selCount))
}

// ObjectAtIndex returns the element at index i as a borrowed reference.
// Indexing past Count raises a native exception, matching NSArray.
func (a Array) ObjectAtIndex(i int) objc.ID {
	return a.id.Send(selObjectAtIndex, i)
}

// Strings reads an array of NSString elements into a Go slice.
func (a Array) Strings() []string {
	n := a.Count()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, _ := StringFromRaw(a.ObjectAtIndex(i))
		out = append(out, s.String())
	}
	return out
}
