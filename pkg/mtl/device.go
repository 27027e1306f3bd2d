//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/block"
	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selRegistryID                                  = objc.RegisterName("registryID")
	selMaxThreadsPerThreadgroup                    = objc.RegisterName("maxThreadsPerThreadgroup")
	selMaxThreadgroupMemoryLength                  = objc.RegisterName("maxThreadgroupMemoryLength")
	selMaxBufferLength                             = objc.RegisterName("maxBufferLength")
	selRecommendedMaxWorkingSetSize                = objc.RegisterName("recommendedMaxWorkingSetSize")
	selCurrentAllocatedSize                        = objc.RegisterName("currentAllocatedSize")
	selHasUnifiedMemory                            = objc.RegisterName("hasUnifiedMemory")
	selIsLowPower                                  = objc.RegisterName("isLowPower")
	selIsHeadless                                  = objc.RegisterName("isHeadless")
	selIsRemovable                                 = objc.RegisterName("isRemovable")
	selSupportsFamily                              = objc.RegisterName("supportsFamily:")
	selSupportsTextureSampleCount                  = objc.RegisterName("supportsTextureSampleCount:")
	selSupportsRaytracing                          = objc.RegisterName("supportsRaytracing")
	selSupportsBCTextureCompression                = objc.RegisterName("supportsBCTextureCompression")
	selMinimumLinearTextureAlignmentForPixelFormat = objc.RegisterName("minimumLinearTextureAlignmentForPixelFormat:")

	selNewCommandQueue                          = objc.RegisterName("newCommandQueue")
	selNewCommandQueueWithMaxCommandBufferCount = objc.RegisterName("newCommandQueueWithMaxCommandBufferCount:")
	selNewBufferWithLength                      = objc.RegisterName("newBufferWithLength:options:")
	selNewBufferWithBytes                       = objc.RegisterName("newBufferWithBytes:length:options:")
	selNewBufferWithBytesNoCopy                 = objc.RegisterName("newBufferWithBytesNoCopy:length:options:deallocator:")
	selNewTextureWithDescriptor                 = objc.RegisterName("newTextureWithDescriptor:")
	selNewSamplerStateWithDescriptor            = objc.RegisterName("newSamplerStateWithDescriptor:")
	selNewDefaultLibrary                        = objc.RegisterName("newDefaultLibrary")
	selNewLibraryWithSourceError                = objc.RegisterName("newLibraryWithSource:options:error:")
	selNewLibraryWithSourceCompletion           = objc.RegisterName("newLibraryWithSource:options:completionHandler:")
	selNewLibraryWithURLError                   = objc.RegisterName("newLibraryWithURL:error:")
	selNewRenderPipelineStateError              = objc.RegisterName("newRenderPipelineStateWithDescriptor:error:")
	selNewRenderPipelineStateCompletion         = objc.RegisterName("newRenderPipelineStateWithDescriptor:completionHandler:")
	selNewComputePipelineStateError             = objc.RegisterName("newComputePipelineStateWithFunction:error:")
	selNewComputePipelineStateCompletion        = objc.RegisterName("newComputePipelineStateWithFunction:completionHandler:")
	selNewDepthStencilStateWithDescriptor       = objc.RegisterName("newDepthStencilStateWithDescriptor:")
	selNewHeapWithDescriptor                    = objc.RegisterName("newHeapWithDescriptor:")
	selNewFence                                 = objc.RegisterName("newFence")
	selNewEvent                                 = objc.RegisterName("newEvent")
	selNewSharedEvent                           = objc.RegisterName("newSharedEvent")
	selHeapBufferSizeAndAlign                   = objc.RegisterName("heapBufferSizeAndAlignWithLength:options:")
	selHeapTextureSizeAndAlign                  = objc.RegisterName("heapTextureSizeAndAlignWithDescriptor:")
)

// Device represents a GPU. It is the root object of the API: every other
// object is created directly or indirectly from a device.
//
// Devices are thread-safe; factory methods may be called from any
// goroutine.
type Device struct {
	id objc.ID
}

// DeviceFromRaw wraps a raw MTLDevice pointer without touching its
// reference count. It reports false when raw is nil.
func DeviceFromRaw(raw objc.ID) (Device, bool) {
	if raw == 0 {
		return Device{}, false
	}
	return Device{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d Device) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d Device) Retain() { retain(d.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (d Device) Release() { release(d.id) }

// Name returns the human-readable device name, e.g. "Apple M2 Max".
func (d Device) Name() string { return stringValue(d.id.Send(selName)) }

// RegistryID is the device's IORegistry identifier, stable for the lifetime
// of the device across processes.
func (d Device) RegistryID() uint64 { return uint64(d.id.Send(selRegistryID)) }

// MaxThreadsPerThreadgroup is the largest threadgroup the device can
// dispatch, per dimension.
func (d Device) MaxThreadsPerThreadgroup() Size {
	return msgSendSize(d.id, selMaxThreadsPerThreadgroup)
}

// MaxThreadgroupMemoryLength is the threadgroup memory available to a
// compute kernel, in bytes.
func (d Device) MaxThreadgroupMemoryLength() int {
	return int(d.id.Send(selMaxThreadgroupMemoryLength))
}

// MaxBufferLength is the largest buffer the device can allocate, in bytes.
func (d Device) MaxBufferLength() int {
	return int(d.id.Send(selMaxBufferLength))
}

// RecommendedMaxWorkingSetSize is the memory budget, in bytes, the app
// should stay under for best performance.
func (d Device) RecommendedMaxWorkingSetSize() uint64 {
	return uint64(d.id.Send(selRecommendedMaxWorkingSetSize))
}

// CurrentAllocatedSize is the device memory currently allocated by this
// process, in bytes.
func (d Device) CurrentAllocatedSize() int {
	return int(d.id.Send(selCurrentAllocatedSize))
}

// HasUnifiedMemory reports whether CPU and GPU share one memory pool, as on
// Apple silicon.
func (d Device) HasUnifiedMemory() bool { return msgSendB(d.id, selHasUnifiedMemory) }

// IsLowPower reports whether this is the lower-power GPU of a dual-GPU
// system.
func (d Device) IsLowPower() bool { return msgSendB(d.id, selIsLowPower) }

// IsHeadless reports whether the device cannot drive a display.
func (d Device) IsHeadless() bool { return msgSendB(d.id, selIsHeadless) }

// IsRemovable reports whether the device is an external GPU.
func (d Device) IsRemovable() bool { return msgSendB(d.id, selIsRemovable) }

// SupportsFamily reports whether the device implements the given GPU
// family.
func (d Device) SupportsFamily(family GPUFamily) bool {
	return msgSendB1(d.id, selSupportsFamily, uintptr(family))
}

// SupportsTextureSampleCount reports whether multisample textures with the
// given sample count can be created.
func (d Device) SupportsTextureSampleCount(count int) bool {
	return msgSendB1(d.id, selSupportsTextureSampleCount, uintptr(count))
}

// SupportsRaytracing reports whether the device runs ray tracing shaders.
func (d Device) SupportsRaytracing() bool { return msgSendB(d.id, selSupportsRaytracing) }

// SupportsBCTextureCompression reports whether BC-compressed pixel formats
// are available.
func (d Device) SupportsBCTextureCompression() bool {
	return msgSendB(d.id, selSupportsBCTextureCompression)
}

// MinimumLinearTextureAlignmentForPixelFormat is the offset alignment a
// buffer-backed texture of the given format requires.
func (d Device) MinimumLinearTextureAlignmentForPixelFormat(pf PixelFormat) int {
	return int(d.id.Send(selMinimumLinearTextureAlignmentForPixelFormat, uint(pf)))
}

// NewCommandQueue creates a queue for submitting command buffers to this
// device. The caller owns the result.
func (d Device) NewCommandQueue() (CommandQueue, error) {
	raw := d.id.Send(selNewCommandQueue)
	if raw == 0 {
		return CommandQueue{}, ErrQueueCreation
	}
	return CommandQueue{id: raw}, nil
}

// NewCommandQueueWithMaxCommandBufferCount creates a queue that keeps at
// most count command buffers in flight.
func (d Device) NewCommandQueueWithMaxCommandBufferCount(count int) (CommandQueue, error) {
	raw := d.id.Send(selNewCommandQueueWithMaxCommandBufferCount, count)
	if raw == 0 {
		return CommandQueue{}, ErrQueueCreation
	}
	return CommandQueue{id: raw}, nil
}

// NewBufferWithLength allocates a zero-filled buffer of the given byte
// length.
func (d Device) NewBufferWithLength(length int, opts ResourceOptions) (Buffer, error) {
	raw := d.id.Send(selNewBufferWithLength, length, uint(opts))
	if raw == 0 {
		return Buffer{}, ErrBufferCreation
	}
	return Buffer{resource{id: raw}}, nil
}

// NewBufferWithBytes allocates a buffer initialized with a copy of length
// bytes read from ptr.
func (d Device) NewBufferWithBytes(ptr unsafe.Pointer, length int, opts ResourceOptions) (Buffer, error) {
	raw := d.id.Send(selNewBufferWithBytes, ptr, length, uint(opts))
	if raw == 0 {
		return Buffer{}, ErrBufferCreation
	}
	return Buffer{resource{id: raw}}, nil
}

// NewBufferWithBytesNoCopy wraps existing page-aligned memory as a buffer
// without copying. The memory must stay valid for the buffer's lifetime;
// no deallocator is installed, so the caller also frees it.
func (d Device) NewBufferWithBytesNoCopy(ptr unsafe.Pointer, length int, opts ResourceOptions) (Buffer, error) {
	raw := d.id.Send(selNewBufferWithBytesNoCopy, ptr, length, uint(opts), 0)
	if raw == 0 {
		return Buffer{}, ErrBufferCreation
	}
	return Buffer{resource{id: raw}}, nil
}

// NewTexture allocates a texture described by desc.
func (d Device) NewTexture(desc TextureDescriptor) (Texture, error) {
	raw := d.id.Send(selNewTextureWithDescriptor, desc.id)
	if raw == 0 {
		return Texture{}, ErrTextureCreation
	}
	return Texture{resource{id: raw}}, nil
}

// NewSamplerState bakes a sampler descriptor into an immutable sampler.
func (d Device) NewSamplerState(desc SamplerDescriptor) (SamplerState, error) {
	raw := d.id.Send(selNewSamplerStateWithDescriptor, desc.id)
	if raw == 0 {
		return SamplerState{}, ErrStateCreation
	}
	return SamplerState{id: raw}, nil
}

// NewDefaultLibrary loads the shader library built into the app bundle.
func (d Device) NewDefaultLibrary() (Library, error) {
	raw := d.id.Send(selNewDefaultLibrary)
	if raw == 0 {
		return Library{}, ErrLibraryCreation
	}
	return Library{id: raw}, nil
}

// NewLibraryWithSource compiles Metal Shading Language source text into a
// library. Compilation errors come back as a foundation.Error carrying the
// compiler diagnostics.
func (d Device) NewLibraryWithSource(source string, opts CompileOptions) (Library, error) {
	src := foundation.NewString(source)
	defer src.Release()

	var nsErr objc.ID
	raw := d.id.Send(selNewLibraryWithSourceError, src.Raw(), opts.id, unsafe.Pointer(&nsErr))
	if raw == 0 {
		return Library{}, errorOrFallback(nsErr, ErrLibraryCreation)
	}
	return Library{id: raw}, nil
}

// NewLibraryWithSourceAsync compiles source off the calling goroutine and
// hands the result to handler exactly once, on a thread chosen by Metal.
func (d Device) NewLibraryWithSourceAsync(source string, opts CompileOptions, handler func(Library, error)) {
	src := foundation.NewString(source)
	defer src.Release()

	completion := block.Once2(func(lib, nsErr uintptr) {
		if lib == 0 {
			handler(Library{}, errorOrFallback(objc.ID(nsErr), ErrLibraryCreation))
			return
		}
		// The callback borrows its arguments; keep the library alive past
		// the handler's return.
		retain(objc.ID(lib))
		handler(Library{id: objc.ID(lib)}, nil)
	})
	d.id.Send(selNewLibraryWithSourceCompletion, src.Raw(), opts.id, completion)
}

// NewLibraryWithURL loads a compiled .metallib file.
func (d Device) NewLibraryWithURL(url foundation.URL) (Library, error) {
	var nsErr objc.ID
	raw := d.id.Send(selNewLibraryWithURLError, url.Raw(), unsafe.Pointer(&nsErr))
	if raw == 0 {
		return Library{}, errorOrFallback(nsErr, ErrLibraryCreation)
	}
	return Library{id: raw}, nil
}

// NewLibraryWithPath loads a compiled .metallib file from a file system
// path.
func (d Device) NewLibraryWithPath(path string) (Library, error) {
	url := foundation.FileURLWithPath(path)
	defer url.Release()
	return d.NewLibraryWithURL(url)
}

// NewRenderPipelineState compiles a render pipeline descriptor into an
// immutable pipeline state.
func (d Device) NewRenderPipelineState(desc RenderPipelineDescriptor) (RenderPipelineState, error) {
	var nsErr objc.ID
	raw := d.id.Send(selNewRenderPipelineStateError, desc.id, unsafe.Pointer(&nsErr))
	if raw == 0 {
		return RenderPipelineState{}, errorOrFallback(nsErr, ErrStateCreation)
	}
	return RenderPipelineState{id: raw}, nil
}

// NewRenderPipelineStateAsync compiles the pipeline in the background and
// hands the result to handler exactly once, on a thread chosen by Metal.
func (d Device) NewRenderPipelineStateAsync(desc RenderPipelineDescriptor, handler func(RenderPipelineState, error)) {
	completion := block.Once2(func(state, nsErr uintptr) {
		if state == 0 {
			handler(RenderPipelineState{}, errorOrFallback(objc.ID(nsErr), ErrStateCreation))
			return
		}
		retain(objc.ID(state))
		handler(RenderPipelineState{id: objc.ID(state)}, nil)
	})
	d.id.Send(selNewRenderPipelineStateCompletion, desc.id, completion)
}

// NewComputePipelineState compiles a kernel function into a compute
// pipeline state.
func (d Device) NewComputePipelineState(fn Function) (ComputePipelineState, error) {
	var nsErr objc.ID
	raw := d.id.Send(selNewComputePipelineStateError, fn.id, unsafe.Pointer(&nsErr))
	if raw == 0 {
		return ComputePipelineState{}, errorOrFallback(nsErr, ErrStateCreation)
	}
	return ComputePipelineState{id: raw}, nil
}

// NewComputePipelineStateAsync compiles the pipeline in the background and
// hands the result to handler exactly once, on a thread chosen by Metal.
func (d Device) NewComputePipelineStateAsync(fn Function, handler func(ComputePipelineState, error)) {
	completion := block.Once2(func(state, nsErr uintptr) {
		if state == 0 {
			handler(ComputePipelineState{}, errorOrFallback(objc.ID(nsErr), ErrStateCreation))
			return
		}
		retain(objc.ID(state))
		handler(ComputePipelineState{id: objc.ID(state)}, nil)
	})
	d.id.Send(selNewComputePipelineStateCompletion, fn.id, completion)
}

// NewDepthStencilState bakes a depth/stencil descriptor into an immutable
// state object.
func (d Device) NewDepthStencilState(desc DepthStencilDescriptor) (DepthStencilState, error) {
	raw := d.id.Send(selNewDepthStencilStateWithDescriptor, desc.id)
	if raw == 0 {
		return DepthStencilState{}, ErrStateCreation
	}
	return DepthStencilState{id: raw}, nil
}

// NewHeap allocates a memory heap for sub-allocating resources.
func (d Device) NewHeap(desc HeapDescriptor) (Heap, error) {
	raw := d.id.Send(selNewHeapWithDescriptor, desc.id)
	if raw == 0 {
		return Heap{}, ErrHeapCreation
	}
	return Heap{id: raw}, nil
}

// NewFence creates a fence for ordering work within a single queue.
func (d Device) NewFence() (Fence, error) {
	raw := d.id.Send(selNewFence)
	if raw == 0 {
		return Fence{}, ErrEventCreation
	}
	return Fence{id: raw}, nil
}

// NewEvent creates an event for ordering work across queues on this
// device.
func (d Device) NewEvent() (Event, error) {
	raw := d.id.Send(selNewEvent)
	if raw == 0 {
		return Event{}, ErrEventCreation
	}
	return Event{id: raw}, nil
}

// NewSharedEvent creates an event that can also be signaled or waited on
// by the CPU and other processes.
func (d Device) NewSharedEvent() (SharedEvent, error) {
	raw := d.id.Send(selNewSharedEvent)
	if raw == 0 {
		return SharedEvent{}, ErrEventCreation
	}
	return SharedEvent{Event{id: raw}}, nil
}

// HeapBufferSizeAndAlign returns the heap space a buffer of the given
// length and options would need.
func (d Device) HeapBufferSizeAndAlign(length int, opts ResourceOptions) SizeAndAlign {
	return msgSendSizeAlign2(d.id, selHeapBufferSizeAndAlign, uintptr(length), uintptr(opts))
}

// HeapTextureSizeAndAlign returns the heap space a texture with the given
// descriptor would need.
func (d Device) HeapTextureSizeAndAlign(desc TextureDescriptor) SizeAndAlign {
	return msgSendSizeAlign1(d.id, selHeapTextureSizeAndAlign, uintptr(desc.id))
}
