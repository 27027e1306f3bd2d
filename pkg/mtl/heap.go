//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selSize                          = objc.RegisterName("size")
	selSetSize                       = objc.RegisterName("setSize:")
	selUsedSize                      = objc.RegisterName("usedSize")
	selMaxAvailableSizeWithAlignment = objc.RegisterName("maxAvailableSizeWithAlignment:")
	selType                          = objc.RegisterName("type")
	selSetType                       = objc.RegisterName("setType:")
)

// HeapDescriptor configures a heap before creation.
type HeapDescriptor struct {
	id objc.ID
}

// NewHeapDescriptor creates a descriptor for a private, automatic heap of
// size zero. The caller owns the result.
func NewHeapDescriptor() HeapDescriptor {
	return HeapDescriptor{id: alloc("MTLHeapDescriptor")}
}

// Raw returns the underlying pointer without transferring ownership.
func (d HeapDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d HeapDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d HeapDescriptor) Release() { release(d.id) }

// Size is the heap's capacity in bytes.
func (d HeapDescriptor) Size() int     { return int(d.id.Send(selSize)) }
func (d HeapDescriptor) SetSize(n int) { d.id.Send(selSetSize, n) }

func (d HeapDescriptor) StorageMode() StorageMode {
	return StorageMode(d.id.Send(selStorageMode))
}
func (d HeapDescriptor) SetStorageMode(mode StorageMode) {
	d.id.Send(selSetStorageMode, uint(mode))
}

func (d HeapDescriptor) CPUCacheMode() CPUCacheMode {
	return CPUCacheMode(d.id.Send(selCPUCacheMode))
}
func (d HeapDescriptor) SetCPUCacheMode(mode CPUCacheMode) {
	d.id.Send(selSetCPUCacheMode, uint(mode))
}

func (d HeapDescriptor) HazardTrackingMode() HazardTrackingMode {
	return HazardTrackingMode(d.id.Send(selHazardTrackingMode))
}
func (d HeapDescriptor) SetHazardTrackingMode(mode HazardTrackingMode) {
	d.id.Send(selSetHazardTrackingMode, uint(mode))
}

func (d HeapDescriptor) ResourceOptions() ResourceOptions {
	return ResourceOptions(d.id.Send(selResourceOptions))
}
func (d HeapDescriptor) SetResourceOptions(opts ResourceOptions) {
	d.id.Send(selSetResourceOptions, uint(opts))
}

func (d HeapDescriptor) Type() HeapType { return HeapType(d.id.Send(selType)) }

// SetType selects automatic or placement sub-allocation.
func (d HeapDescriptor) SetType(t HeapType) { d.id.Send(selSetType, uint(t)) }

// Heap is a memory pool resources can be sub-allocated from without
// individual kernel round trips.
type Heap struct {
	id objc.ID
}

// HeapFromRaw wraps a raw heap pointer without touching its reference
// count. It reports false when raw is nil.
func HeapFromRaw(raw objc.ID) (Heap, bool) {
	if raw == 0 {
		return Heap{}, false
	}
	return Heap{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (h Heap) Raw() objc.ID { return h.id }

// Retain takes an additional reference to the underlying object.
func (h Heap) Retain() { retain(h.id) }

// Release gives up the caller's reference.
func (h Heap) Release() { release(h.id) }

func (h Heap) Label() string { return stringValue(h.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (h Heap) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	h.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device the heap was created on. Borrowed.
func (h Heap) Device() Device { return Device{id: h.id.Send(selDevice)} }

// Size is the heap's capacity in bytes.
func (h Heap) Size() int { return int(h.id.Send(selSize)) }

// UsedSize is the byte total of current sub-allocations.
func (h Heap) UsedSize() int { return int(h.id.Send(selUsedSize)) }

// CurrentAllocatedSize is the memory the heap itself occupies.
func (h Heap) CurrentAllocatedSize() int {
	return int(h.id.Send(selCurrentAllocatedSize))
}

// MaxAvailableSize is the largest allocation the heap can still satisfy at
// the given alignment.
func (h Heap) MaxAvailableSize(alignment int) int {
	return int(h.id.Send(selMaxAvailableSizeWithAlignment, alignment))
}

func (h Heap) StorageMode() StorageMode {
	return StorageMode(h.id.Send(selStorageMode))
}

func (h Heap) CPUCacheMode() CPUCacheMode {
	return CPUCacheMode(h.id.Send(selCPUCacheMode))
}

func (h Heap) HazardTrackingMode() HazardTrackingMode {
	return HazardTrackingMode(h.id.Send(selHazardTrackingMode))
}

func (h Heap) ResourceOptions() ResourceOptions {
	return ResourceOptions(h.id.Send(selResourceOptions))
}

func (h Heap) Type() HeapType { return HeapType(h.id.Send(selType)) }

// SetPurgeableState changes how the heap's memory responds to system
// pressure and returns the previous state.
func (h Heap) SetPurgeableState(state PurgeableState) PurgeableState {
	return PurgeableState(h.id.Send(selSetPurgeableState, uint(state)))
}

// NewBufferWithLength sub-allocates a buffer from the heap. The options
// must be compatible with the heap's own.
func (h Heap) NewBufferWithLength(length int, opts ResourceOptions) (Buffer, error) {
	raw := h.id.Send(selNewBufferWithLength, length, uint(opts))
	if raw == 0 {
		return Buffer{}, ErrBufferCreation
	}
	return Buffer{resource{id: raw}}, nil
}

// NewTexture sub-allocates a texture from the heap.
func (h Heap) NewTexture(desc TextureDescriptor) (Texture, error) {
	raw := h.id.Send(selNewTextureWithDescriptor, desc.id)
	if raw == 0 {
		return Texture{}, ErrTextureCreation
	}
	return Texture{resource{id: raw}}, nil
}
