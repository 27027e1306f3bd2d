//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

var (
	selSetComputePipelineStateLn = objc.RegisterName("setComputePipelineState:")
	selSetBuffer                 = objc.RegisterName("setBuffer:offset:atIndex:")
	selSetBufferOffset           = objc.RegisterName("setBufferOffset:atIndex:")
	selSetBytes                  = objc.RegisterName("setBytes:length:atIndex:")
	selSetTextureAtIndex         = objc.RegisterName("setTexture:atIndex:")
	selSetSamplerState           = objc.RegisterName("setSamplerState:atIndex:")
	selSetThreadgroupMemLength   = objc.RegisterName("setThreadgroupMemoryLength:atIndex:")
	selDispatchThreadgroups      = objc.RegisterName("dispatchThreadgroups:threadsPerThreadgroup:")
	selDispatchThreads           = objc.RegisterName("dispatchThreads:threadsPerThreadgroup:")
	selUpdateFence               = objc.RegisterName("updateFence:")
	selWaitForFence              = objc.RegisterName("waitForFence:")
	selMemoryBarrierWithScope    = objc.RegisterName("memoryBarrierWithScope:")
)

// ComputeCommandEncoder encodes the dispatches of one compute pass.
type ComputeCommandEncoder struct {
	commandEncoder
}

// ComputeCommandEncoderFromRaw wraps a raw encoder pointer without
// touching its reference count. It reports false when raw is nil.
func ComputeCommandEncoderFromRaw(raw objc.ID) (ComputeCommandEncoder, bool) {
	if raw == 0 {
		return ComputeCommandEncoder{}, false
	}
	return ComputeCommandEncoder{commandEncoder{id: raw}}, true
}

// SetComputePipelineState selects the kernel for subsequent dispatches.
func (e ComputeCommandEncoder) SetComputePipelineState(state ComputePipelineState) {
	e.id.Send(selSetComputePipelineStateLn, state.id)
}

// SetBuffer binds a buffer to the compute argument table. A zero Buffer
// clears the slot.
func (e ComputeCommandEncoder) SetBuffer(buf Buffer, offset, index int) {
	e.id.Send(selSetBuffer, buf.id, offset, index)
}

// SetBufferOffset moves the offset of an already-bound buffer.
func (e ComputeCommandEncoder) SetBufferOffset(offset, index int) {
	e.id.Send(selSetBufferOffset, offset, index)
}

// SetBytes copies length bytes from ptr into transient buffer storage
// bound at index. Intended for small (< 4 KB) argument data.
func (e ComputeCommandEncoder) SetBytes(ptr unsafe.Pointer, length, index int) {
	e.id.Send(selSetBytes, ptr, length, index)
}

// SetTexture binds a texture to the compute argument table. A zero
// Texture clears the slot.
func (e ComputeCommandEncoder) SetTexture(tex Texture, index int) {
	e.id.Send(selSetTextureAtIndex, tex.id, index)
}

// SetSamplerState binds a sampler to the compute argument table.
func (e ComputeCommandEncoder) SetSamplerState(s SamplerState, index int) {
	e.id.Send(selSetSamplerState, s.id, index)
}

// SetThreadgroupMemoryLength reserves length bytes of threadgroup memory
// at the given argument index. length must be a multiple of 16.
func (e ComputeCommandEncoder) SetThreadgroupMemoryLength(length, index int) {
	e.id.Send(selSetThreadgroupMemLength, length, index)
}

// DispatchThreadgroups encodes a dispatch of
// threadgroupsPerGrid x threadsPerThreadgroup threads. The kernel sees
// whole threadgroups.
func (e ComputeCommandEncoder) DispatchThreadgroups(threadgroupsPerGrid, threadsPerThreadgroup Size) {
	e.id.Send(selDispatchThreadgroups, threadgroupsPerGrid, threadsPerThreadgroup)
}

// DispatchThreads encodes a dispatch of exactly threadsPerGrid threads,
// letting Metal split the grid into partial threadgroups. Requires
// non-uniform threadgroup support.
func (e ComputeCommandEncoder) DispatchThreads(threadsPerGrid, threadsPerThreadgroup Size) {
	e.id.Send(selDispatchThreads, threadsPerGrid, threadsPerThreadgroup)
}

// UseResource declares that indirectly referenced resources (argument
// buffers) are used by subsequent dispatches, making them resident.
func (e ComputeCommandEncoder) UseResource(res Resource, usage ResourceUsage) {
	e.id.Send(selUseResourceUsage, res.Raw(), uint(usage))
}

// UseHeap makes every resource sub-allocated from the heap resident for
// subsequent dispatches.
func (e ComputeCommandEncoder) UseHeap(h Heap) {
	e.id.Send(selUseHeap, h.id)
}

// UpdateFence signals the fence after all prior dispatches finish.
func (e ComputeCommandEncoder) UpdateFence(f Fence) {
	e.id.Send(selUpdateFence, f.id)
}

// WaitForFence stalls subsequent dispatches until the fence is signaled.
func (e ComputeCommandEncoder) WaitForFence(f Fence) {
	e.id.Send(selWaitForFence, f.id)
}

// MemoryBarrier orders memory accesses of prior dispatches before those of
// later dispatches, within the given scope. Only meaningful in concurrent
// dispatch passes.
func (e ComputeCommandEncoder) MemoryBarrier(scope BarrierScope) {
	e.id.Send(selMemoryBarrierWithScope, uint(scope))
}
