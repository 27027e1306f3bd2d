//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/block"
	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selEnqueue                  = objc.RegisterName("enqueue")
	selCommit                   = objc.RegisterName("commit")
	selWaitUntilScheduled       = objc.RegisterName("waitUntilScheduled")
	selWaitUntilCompleted       = objc.RegisterName("waitUntilCompleted")
	selAddScheduledHandler      = objc.RegisterName("addScheduledHandler:")
	selAddCompletedHandler      = objc.RegisterName("addCompletedHandler:")
	selStatus                   = objc.RegisterName("status")
	selError                    = objc.RegisterName("error")
	selGPUStartTime             = objc.RegisterName("GPUStartTime")
	selGPUEndTime               = objc.RegisterName("GPUEndTime")
	selKernelStartTime          = objc.RegisterName("kernelStartTime")
	selKernelEndTime            = objc.RegisterName("kernelEndTime")
	selRenderCommandEncoderWith = objc.RegisterName("renderCommandEncoderWithDescriptor:")
	selComputeCommandEncoder    = objc.RegisterName("computeCommandEncoder")
	selComputeCommandEncoderDT  = objc.RegisterName("computeCommandEncoderWithDispatchType:")
	selBlitCommandEncoder       = objc.RegisterName("blitCommandEncoder")
	selPresentDrawable          = objc.RegisterName("presentDrawable:")
	selPresentDrawableAtTime    = objc.RegisterName("presentDrawable:atTime:")
	selEncodeSignalEvent        = objc.RegisterName("encodeSignalEvent:value:")
	selEncodeWaitForEvent       = objc.RegisterName("encodeWaitForEvent:value:")
	selPushDebugGroup           = objc.RegisterName("pushDebugGroup:")
	selPopDebugGroup            = objc.RegisterName("popDebugGroup")
)

// CommandBuffer collects encoded GPU commands for one submission to a
// queue. Buffers are transient: encode, commit, let go.
//
// A buffer is single-threaded while encoding; commit and the wait methods
// may be called from any goroutine.
type CommandBuffer struct {
	id objc.ID
}

// CommandBufferFromRaw wraps a raw MTLCommandBuffer pointer without
// touching its reference count. It reports false when raw is nil.
func CommandBufferFromRaw(raw objc.ID) (CommandBuffer, bool) {
	if raw == 0 {
		return CommandBuffer{}, false
	}
	return CommandBuffer{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (cb CommandBuffer) Raw() objc.ID { return cb.id }

// Retain takes an additional reference to the underlying object.
func (cb CommandBuffer) Retain() { retain(cb.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (cb CommandBuffer) Release() { release(cb.id) }

// Label returns the debug label.
func (cb CommandBuffer) Label() string { return stringValue(cb.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (cb CommandBuffer) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	cb.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device this buffer executes on. Borrowed.
func (cb CommandBuffer) Device() Device { return Device{id: cb.id.Send(selDevice)} }

// Enqueue reserves this buffer's execution order on the queue ahead of
// committing it.
func (cb CommandBuffer) Enqueue() { cb.id.Send(selEnqueue) }

// Commit submits the buffer for execution. No further encoding is allowed
// after this call.
func (cb CommandBuffer) Commit() { cb.id.Send(selCommit) }

// WaitUntilScheduled blocks until the buffer has been scheduled on the
// device.
func (cb CommandBuffer) WaitUntilScheduled() { cb.id.Send(selWaitUntilScheduled) }

// WaitUntilCompleted blocks until the device has finished executing the
// buffer.
func (cb CommandBuffer) WaitUntilCompleted() { cb.id.Send(selWaitUntilCompleted) }

// AddScheduledHandler registers fn to run once when the buffer is
// scheduled. Handlers run on a thread chosen by Metal, in no guaranteed
// order relative to other handlers; the CommandBuffer argument is only
// valid for the duration of the call (Retain it to keep it). Must be
// called before Commit.
func (cb CommandBuffer) AddScheduledHandler(fn func(CommandBuffer)) {
	handler := block.Once1(func(buf uintptr) {
		fn(CommandBuffer{id: objc.ID(buf)})
	})
	cb.id.Send(selAddScheduledHandler, handler)
}

// AddCompletedHandler registers fn to run once when the device finishes
// executing the buffer. The same constraints as AddScheduledHandler apply.
func (cb CommandBuffer) AddCompletedHandler(fn func(CommandBuffer)) {
	handler := block.Once1(func(buf uintptr) {
		fn(CommandBuffer{id: objc.ID(buf)})
	})
	cb.id.Send(selAddCompletedHandler, handler)
}

// Status reports where the buffer is in its lifecycle.
func (cb CommandBuffer) Status() CommandBufferStatus {
	return CommandBufferStatus(cb.id.Send(selStatus))
}

// Error returns the execution error for a buffer whose Status is
// CommandBufferStatusError, and nil otherwise.
func (cb CommandBuffer) Error() error {
	if e := foundation.WrapError(cb.id.Send(selError)); e != nil {
		return e
	}
	return nil
}

// GPUStartTime is the host time, in seconds, when the device started
// executing the buffer.
func (cb CommandBuffer) GPUStartTime() float64 { return msgSendF64(cb.id, selGPUStartTime) }

// GPUEndTime is the host time, in seconds, when the device finished
// executing the buffer.
func (cb CommandBuffer) GPUEndTime() float64 { return msgSendF64(cb.id, selGPUEndTime) }

// KernelStartTime is the host time, in seconds, when scheduling of the
// buffer began.
func (cb CommandBuffer) KernelStartTime() float64 { return msgSendF64(cb.id, selKernelStartTime) }

// KernelEndTime is the host time, in seconds, when scheduling of the
// buffer finished.
func (cb CommandBuffer) KernelEndTime() float64 { return msgSendF64(cb.id, selKernelEndTime) }

// RenderCommandEncoder starts a render pass described by desc. The caller
// owns the encoder and must call EndEncoding before starting another one.
func (cb CommandBuffer) RenderCommandEncoder(desc RenderPassDescriptor) (RenderCommandEncoder, error) {
	raw := cb.id.Send(selRenderCommandEncoderWith, desc.id)
	if raw == 0 {
		return RenderCommandEncoder{}, ErrEncoderCreation
	}
	retain(raw)
	return RenderCommandEncoder{commandEncoder{id: raw}}, nil
}

// ComputeCommandEncoder starts a serial compute pass.
func (cb CommandBuffer) ComputeCommandEncoder() (ComputeCommandEncoder, error) {
	raw := cb.id.Send(selComputeCommandEncoder)
	if raw == 0 {
		return ComputeCommandEncoder{}, ErrEncoderCreation
	}
	retain(raw)
	return ComputeCommandEncoder{commandEncoder{id: raw}}, nil
}

// ComputeCommandEncoderWithDispatchType starts a compute pass whose
// dispatches may overlap when dt is DispatchTypeConcurrent.
func (cb CommandBuffer) ComputeCommandEncoderWithDispatchType(dt DispatchType) (ComputeCommandEncoder, error) {
	raw := cb.id.Send(selComputeCommandEncoderDT, uint(dt))
	if raw == 0 {
		return ComputeCommandEncoder{}, ErrEncoderCreation
	}
	retain(raw)
	return ComputeCommandEncoder{commandEncoder{id: raw}}, nil
}

// BlitCommandEncoder starts a pass for copy, fill and mipmap generation
// work.
func (cb CommandBuffer) BlitCommandEncoder() (BlitCommandEncoder, error) {
	raw := cb.id.Send(selBlitCommandEncoder)
	if raw == 0 {
		return BlitCommandEncoder{}, ErrEncoderCreation
	}
	retain(raw)
	return BlitCommandEncoder{commandEncoder{id: raw}}, nil
}

// PresentDrawable schedules a presentation of the drawable as soon as the
// buffer has executed.
func (cb CommandBuffer) PresentDrawable(d Drawable) {
	cb.id.Send(selPresentDrawable, d.id)
}

// PresentDrawableAtTime schedules a presentation for the given host time,
// in seconds.
func (cb CommandBuffer) PresentDrawableAtTime(d Drawable, t float64) {
	cb.id.Send(selPresentDrawableAtTime, d.id, t)
}

// EncodeSignalEvent sets the event to value after all prior commands in
// the buffer have executed.
func (cb CommandBuffer) EncodeSignalEvent(e Event, value uint64) {
	cb.id.Send(selEncodeSignalEvent, e.id, value)
}

// EncodeWaitForEvent stalls later commands in the buffer until the event
// reaches at least value.
func (cb CommandBuffer) EncodeWaitForEvent(e Event, value uint64) {
	cb.id.Send(selEncodeWaitForEvent, e.id, value)
}

// PushDebugGroup opens a named span in GPU tooling timelines.
func (cb CommandBuffer) PushDebugGroup(name string) {
	ns := foundation.NewString(name)
	defer ns.Release()
	cb.id.Send(selPushDebugGroup, ns.Raw())
}

// PopDebugGroup closes the innermost debug group.
func (cb CommandBuffer) PopDebugGroup() { cb.id.Send(selPopDebugGroup) }
