//go:build darwin

package mtl

import (
	"bytes"
	"testing"
	"unsafe"
)

// newTestDevice skips the test when no Metal device is present and
// otherwise returns the system default device, released on cleanup.
func newTestDevice(t *testing.T) Device {
	t.Helper()
	if !IsAvailable() {
		t.Skip("Metal not available")
	}
	dev, err := CreateSystemDefaultDevice()
	if err != nil {
		t.Fatalf("CreateSystemDefaultDevice failed: %v", err)
	}
	t.Cleanup(dev.Release)
	return dev
}

func TestDeviceProperties(t *testing.T) {
	dev := newTestDevice(t)

	if dev.Name() == "" {
		t.Error("device name is empty")
	}
	if dev.RegistryID() == 0 {
		t.Error("registry ID is 0")
	}

	mt := dev.MaxThreadsPerThreadgroup()
	if mt.Width == 0 || mt.Height == 0 || mt.Depth == 0 {
		t.Errorf("MaxThreadsPerThreadgroup = %+v, want nonzero dimensions", mt)
	}
	if dev.MaxThreadgroupMemoryLength() == 0 {
		t.Error("MaxThreadgroupMemoryLength is 0")
	}
	if dev.MaxBufferLength() == 0 {
		t.Error("MaxBufferLength is 0")
	}

	if !dev.SupportsFamily(GPUFamilyCommon1) {
		t.Error("device does not support even the common1 family")
	}
	if !dev.SupportsTextureSampleCount(1) {
		t.Error("device rejects sample count 1")
	}

	t.Logf("%s: unified=%v lowPower=%v headless=%v removable=%v raytracing=%v",
		dev.Name(), dev.HasUnifiedMemory(), dev.IsLowPower(), dev.IsHeadless(),
		dev.IsRemovable(), dev.SupportsRaytracing())
}

func TestDeviceRetainRelease(t *testing.T) {
	dev := newTestDevice(t)

	// One extra retain balanced by one extra release. The cleanup release
	// still runs against a live object afterwards.
	dev.Retain()
	dev.Release()

	if dev.Name() == "" {
		t.Error("device unusable after balanced retain/release")
	}
}

func TestNewCommandQueue(t *testing.T) {
	dev := newTestDevice(t)

	queue, err := dev.NewCommandQueue()
	if err != nil {
		t.Fatalf("NewCommandQueue failed: %v", err)
	}
	defer queue.Release()

	queue.SetLabel("test queue")
	if got := queue.Label(); got != "test queue" {
		t.Errorf("queue label = %q, want %q", got, "test queue")
	}

	if queue.Device().Raw() != dev.Raw() {
		t.Error("queue device backpointer does not match creating device")
	}
}

func TestNewBufferWithLength(t *testing.T) {
	dev := newTestDevice(t)

	buf, err := dev.NewBufferWithLength(1024, ResourceStorageModeShared)
	if err != nil {
		t.Fatalf("NewBufferWithLength failed: %v", err)
	}
	defer buf.Release()

	if buf.Length() != 1024 {
		t.Errorf("buffer length = %d, want 1024", buf.Length())
	}
	if buf.Contents() == nil {
		t.Error("shared buffer has nil contents")
	}
	if buf.StorageMode() != StorageModeShared {
		t.Errorf("storage mode = %d, want shared", buf.StorageMode())
	}
}

func TestNewBufferWithBytesRoundTrip(t *testing.T) {
	dev := newTestDevice(t)

	data := []byte("metal buffer round trip")
	buf, err := dev.NewBufferWithBytes(unsafe.Pointer(&data[0]), len(data), ResourceStorageModeShared)
	if err != nil {
		t.Fatalf("NewBufferWithBytes failed: %v", err)
	}
	defer buf.Release()

	got := buf.Bytes()
	if !bytes.Equal(got, data) {
		t.Errorf("buffer bytes = %q, want %q", got, data)
	}

	// Writes through Contents are visible in shared storage.
	got[0] = 'M'
	again := buf.Bytes()
	if again[0] != 'M' {
		t.Error("write through mapped bytes was not visible on reread")
	}
}

func TestBufferLabelAndPurgeable(t *testing.T) {
	dev := newTestDevice(t)

	buf, err := dev.NewBufferWithLength(256, ResourceStorageModeShared)
	if err != nil {
		t.Fatalf("NewBufferWithLength failed: %v", err)
	}
	defer buf.Release()

	buf.SetLabel("scratch")
	if got := buf.Label(); got != "scratch" {
		t.Errorf("buffer label = %q, want %q", got, "scratch")
	}

	prior := buf.SetPurgeableState(PurgeableStateVolatile)
	if prior != PurgeableStateNonVolatile {
		t.Logf("initial purgeable state = %d", prior)
	}
	if got := buf.SetPurgeableState(PurgeableStateKeepCurrent); got != PurgeableStateVolatile {
		t.Errorf("purgeable state = %d, want volatile", got)
	}
}

func TestHeapSubAllocation(t *testing.T) {
	dev := newTestDevice(t)

	need := dev.HeapBufferSizeAndAlign(4096, ResourceStorageModePrivate)
	if need.Size < 4096 {
		t.Errorf("HeapBufferSizeAndAlign size = %d, want >= 4096", need.Size)
	}
	if need.Align == 0 || need.Align&(need.Align-1) != 0 {
		t.Errorf("HeapBufferSizeAndAlign align = %d, want a power of two", need.Align)
	}

	desc := NewHeapDescriptor()
	defer desc.Release()
	desc.SetSize(need.Size)
	desc.SetStorageMode(StorageModePrivate)

	heap, err := dev.NewHeap(desc)
	if err != nil {
		t.Fatalf("NewHeap failed: %v", err)
	}
	defer heap.Release()

	if heap.Size() < need.Size {
		t.Errorf("heap size = %d, want >= %d", heap.Size(), need.Size)
	}

	buf, err := heap.NewBufferWithLength(4096, ResourceStorageModePrivate)
	if err != nil {
		t.Fatalf("heap NewBufferWithLength failed: %v", err)
	}
	defer buf.Release()

	if heap.UsedSize() == 0 {
		t.Error("heap used size is 0 after sub-allocation")
	}
	owner, ok := buf.Heap()
	if !ok {
		t.Fatal("heap-allocated buffer reports no heap")
	}
	if owner.Raw() != heap.Raw() {
		t.Error("buffer heap backpointer does not match creating heap")
	}
}

func TestSharedEventSignaledValue(t *testing.T) {
	dev := newTestDevice(t)

	ev, err := dev.NewSharedEvent()
	if err != nil {
		t.Fatalf("NewSharedEvent failed: %v", err)
	}
	defer ev.Release()

	if got := ev.SignaledValue(); got != 0 {
		t.Errorf("initial signaled value = %d, want 0", got)
	}
	ev.SetSignaledValue(42)
	if got := ev.SignaledValue(); got != 42 {
		t.Errorf("signaled value = %d, want 42", got)
	}
}

func TestNewFenceAndEvent(t *testing.T) {
	dev := newTestDevice(t)

	fence, err := dev.NewFence()
	if err != nil {
		t.Fatalf("NewFence failed: %v", err)
	}
	defer fence.Release()
	fence.SetLabel("upload fence")
	if got := fence.Label(); got != "upload fence" {
		t.Errorf("fence label = %q, want %q", got, "upload fence")
	}

	ev, err := dev.NewEvent()
	if err != nil {
		t.Fatalf("NewEvent failed: %v", err)
	}
	defer ev.Release()
	if ev.Device().Raw() != dev.Raw() {
		t.Error("event device backpointer does not match creating device")
	}
}
