//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selCPUCacheMode       = objc.RegisterName("cpuCacheMode")
	selStorageMode        = objc.RegisterName("storageMode")
	selHazardTrackingMode = objc.RegisterName("hazardTrackingMode")
	selResourceOptions    = objc.RegisterName("resourceOptions")
	selSetPurgeableState  = objc.RegisterName("setPurgeableState:")
	selAllocatedSize      = objc.RegisterName("allocatedSize")
	selHeap               = objc.RegisterName("heap")
	selHeapOffset         = objc.RegisterName("heapOffset")
	selMakeAliasable      = objc.RegisterName("makeAliasable")
	selIsAliasable        = objc.RegisterName("isAliasable")
)

// resource carries the method surface shared by every allocation conforming
// to the MTLResource protocol. Buffer and Texture embed it, so it must stay
// a single pointer wide.
type resource struct {
	id objc.ID
}

// Raw returns the underlying pointer without transferring ownership.
func (r resource) Raw() objc.ID { return r.id }

// Retain takes an additional reference to the underlying object.
func (r resource) Retain() { retain(r.id) }

// Release gives up the caller's reference. The wrapper must not be used
// afterwards.
func (r resource) Release() { release(r.id) }

// Label returns the debug label.
func (r resource) Label() string { return stringValue(r.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (r resource) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	r.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device that allocated this resource. Borrowed.
func (r resource) Device() Device { return Device{id: r.id.Send(selDevice)} }

func (r resource) CPUCacheMode() CPUCacheMode {
	return CPUCacheMode(r.id.Send(selCPUCacheMode))
}

func (r resource) StorageMode() StorageMode {
	return StorageMode(r.id.Send(selStorageMode))
}

func (r resource) HazardTrackingMode() HazardTrackingMode {
	return HazardTrackingMode(r.id.Send(selHazardTrackingMode))
}

func (r resource) ResourceOptions() ResourceOptions {
	return ResourceOptions(r.id.Send(selResourceOptions))
}

// SetPurgeableState changes how the system may reclaim the resource's
// memory and returns the prior state. Pass PurgeableStateKeepCurrent to
// query without changing anything.
func (r resource) SetPurgeableState(state PurgeableState) PurgeableState {
	return PurgeableState(r.id.Send(selSetPurgeableState, uint(state)))
}

// AllocatedSize is the memory actually set aside for the resource, which
// may exceed the requested size.
func (r resource) AllocatedSize() int {
	return int(r.id.Send(selAllocatedSize))
}

// Heap returns the heap this resource was sub-allocated from. Borrowed;
// reports false for resources allocated directly from a device.
func (r resource) Heap() (Heap, bool) {
	raw := r.id.Send(selHeap)
	if raw == 0 {
		return Heap{}, false
	}
	return Heap{id: raw}, true
}

// HeapOffset is the byte offset inside the owning placement heap.
func (r resource) HeapOffset() int {
	return int(r.id.Send(selHeapOffset))
}

// MakeAliasable lets future heap allocations overlap this resource's
// memory. Irreversible.
func (r resource) MakeAliasable() { r.id.Send(selMakeAliasable) }

// IsAliasable reports whether MakeAliasable has been called.
func (r resource) IsAliasable() bool { return msgSendB(r.id, selIsAliasable) }
