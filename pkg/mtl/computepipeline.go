//go:build darwin

package mtl

import "github.com/ebitengine/purego/objc"

// ComputePipelineState is a compiled compute kernel. Query its width
// properties to size dispatches.
type ComputePipelineState struct {
	id objc.ID
}

// ComputePipelineStateFromRaw wraps a raw pipeline state pointer without
// touching its reference count. It reports false when raw is nil.
func ComputePipelineStateFromRaw(raw objc.ID) (ComputePipelineState, bool) {
	if raw == 0 {
		return ComputePipelineState{}, false
	}
	return ComputePipelineState{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (s ComputePipelineState) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s ComputePipelineState) Retain() { retain(s.id) }

// Release gives up the caller's reference.
func (s ComputePipelineState) Release() { release(s.id) }

// Label returns the label the descriptor carried when the pipeline was
// compiled.
func (s ComputePipelineState) Label() string { return stringValue(s.id.Send(selLabel)) }

// Device returns the device that compiled this pipeline. Borrowed.
func (s ComputePipelineState) Device() Device { return Device{id: s.id.Send(selDevice)} }

// MaxTotalThreadsPerThreadgroup is the upper bound on threads per
// threadgroup for this kernel on this device.
func (s ComputePipelineState) MaxTotalThreadsPerThreadgroup() int {
	return int(s.id.Send(selMaxTotalThreadsPerThreadgroup))
}

// ThreadExecutionWidth is the SIMD group width. Threadgroup widths that
// are a multiple of this value keep every lane busy.
func (s ComputePipelineState) ThreadExecutionWidth() int {
	return int(s.id.Send(selThreadExecutionWidth))
}

// StaticThreadgroupMemoryLength is the threadgroup memory, in bytes, the
// kernel declares statically.
func (s ComputePipelineState) StaticThreadgroupMemoryLength() int {
	return int(s.id.Send(selStaticThreadgroupMemoryLength))
}
