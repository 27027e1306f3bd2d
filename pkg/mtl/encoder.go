//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selEndEncoding         = objc.RegisterName("endEncoding")
	selInsertDebugSignpost = objc.RegisterName("insertDebugSignpost:")
)

// commandEncoder carries the method surface shared by every encoder type.
// Encoders are not thread-safe; encode from one goroutine at a time.
type commandEncoder struct {
	id objc.ID
}

// Raw returns the underlying pointer without transferring ownership.
func (e commandEncoder) Raw() objc.ID { return e.id }

// Retain takes an additional reference to the underlying object.
func (e commandEncoder) Retain() { retain(e.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (e commandEncoder) Release() { release(e.id) }

// Label returns the debug label.
func (e commandEncoder) Label() string { return stringValue(e.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (e commandEncoder) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	e.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device the encoded commands will run on. Borrowed.
func (e commandEncoder) Device() Device { return Device{id: e.id.Send(selDevice)} }

// EndEncoding declares the pass finished. Every encoder must end before
// the next encoder starts or the command buffer commits.
func (e commandEncoder) EndEncoding() { e.id.Send(selEndEncoding) }

// InsertDebugSignpost drops a marker into the command stream for GPU
// tooling.
func (e commandEncoder) InsertDebugSignpost(name string) {
	ns := foundation.NewString(name)
	defer ns.Release()
	e.id.Send(selInsertDebugSignpost, ns.Raw())
}

// PushDebugGroup opens a named span in GPU tooling timelines.
func (e commandEncoder) PushDebugGroup(name string) {
	ns := foundation.NewString(name)
	defer ns.Release()
	e.id.Send(selPushDebugGroup, ns.Raw())
}

// PopDebugGroup closes the innermost debug group.
func (e commandEncoder) PopDebugGroup() { e.id.Send(selPopDebugGroup) }
