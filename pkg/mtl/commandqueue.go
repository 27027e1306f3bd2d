//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selCommandBuffer                         = objc.RegisterName("commandBuffer")
	selCommandBufferWithUnretainedReferences = objc.RegisterName("commandBufferWithUnretainedReferences")
)

// CommandQueue schedules command buffers onto a device. Queues are
// thread-safe and meant to be long-lived; most apps hold one.
type CommandQueue struct {
	id objc.ID
}

// CommandQueueFromRaw wraps a raw MTLCommandQueue pointer without touching
// its reference count. It reports false when raw is nil.
func CommandQueueFromRaw(raw objc.ID) (CommandQueue, bool) {
	if raw == 0 {
		return CommandQueue{}, false
	}
	return CommandQueue{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (q CommandQueue) Raw() objc.ID { return q.id }

// Retain takes an additional reference to the underlying object.
func (q CommandQueue) Retain() { retain(q.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (q CommandQueue) Release() { release(q.id) }

// Label returns the debug label.
func (q CommandQueue) Label() string { return stringValue(q.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (q CommandQueue) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	q.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device this queue submits to. Borrowed.
func (q CommandQueue) Device() Device { return Device{id: q.id.Send(selDevice)} }

// CommandBuffer creates a command buffer that retains the resources it
// encodes. The caller owns the result.
func (q CommandQueue) CommandBuffer() (CommandBuffer, error) {
	raw := q.id.Send(selCommandBuffer)
	if raw == 0 {
		return CommandBuffer{}, ErrCommandBufferCreation
	}
	// The native call hands out an autoreleased object.
	retain(raw)
	return CommandBuffer{id: raw}, nil
}

// CommandBufferWithUnretainedReferences creates a command buffer that does
// not retain encoded resources. The caller keeps every encoded resource
// alive until the buffer completes.
func (q CommandQueue) CommandBufferWithUnretainedReferences() (CommandBuffer, error) {
	raw := q.id.Send(selCommandBufferWithUnretainedReferences)
	if raw == 0 {
		return CommandBuffer{}, ErrCommandBufferCreation
	}
	retain(raw)
	return CommandBuffer{id: raw}, nil
}
