//go:build darwin

package mtl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Wrappers must stay exactly one pointer wide. FromRaw/Raw round-trips and
// the resource argument tables rely on it.
func TestWrapperSizes(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))
	sizes := []struct {
		name string
		size uintptr
	}{
		{"Device", unsafe.Sizeof(Device{})},
		{"CommandQueue", unsafe.Sizeof(CommandQueue{})},
		{"CommandBuffer", unsafe.Sizeof(CommandBuffer{})},
		{"RenderCommandEncoder", unsafe.Sizeof(RenderCommandEncoder{})},
		{"ComputeCommandEncoder", unsafe.Sizeof(ComputeCommandEncoder{})},
		{"BlitCommandEncoder", unsafe.Sizeof(BlitCommandEncoder{})},
		{"Buffer", unsafe.Sizeof(Buffer{})},
		{"Texture", unsafe.Sizeof(Texture{})},
		{"TextureDescriptor", unsafe.Sizeof(TextureDescriptor{})},
		{"SamplerDescriptor", unsafe.Sizeof(SamplerDescriptor{})},
		{"SamplerState", unsafe.Sizeof(SamplerState{})},
		{"Library", unsafe.Sizeof(Library{})},
		{"Function", unsafe.Sizeof(Function{})},
		{"CompileOptions", unsafe.Sizeof(CompileOptions{})},
		{"RenderPipelineDescriptor", unsafe.Sizeof(RenderPipelineDescriptor{})},
		{"RenderPipelineColorAttachmentDescriptor", unsafe.Sizeof(RenderPipelineColorAttachmentDescriptor{})},
		{"RenderPipelineColorAttachmentDescriptorArray", unsafe.Sizeof(RenderPipelineColorAttachmentDescriptorArray{})},
		{"RenderPipelineState", unsafe.Sizeof(RenderPipelineState{})},
		{"ComputePipelineState", unsafe.Sizeof(ComputePipelineState{})},
		{"RenderPassDescriptor", unsafe.Sizeof(RenderPassDescriptor{})},
		{"RenderPassColorAttachmentDescriptorArray", unsafe.Sizeof(RenderPassColorAttachmentDescriptorArray{})},
		{"RenderPassColorAttachmentDescriptor", unsafe.Sizeof(RenderPassColorAttachmentDescriptor{})},
		{"RenderPassDepthAttachmentDescriptor", unsafe.Sizeof(RenderPassDepthAttachmentDescriptor{})},
		{"RenderPassStencilAttachmentDescriptor", unsafe.Sizeof(RenderPassStencilAttachmentDescriptor{})},
		{"DepthStencilDescriptor", unsafe.Sizeof(DepthStencilDescriptor{})},
		{"StencilDescriptor", unsafe.Sizeof(StencilDescriptor{})},
		{"DepthStencilState", unsafe.Sizeof(DepthStencilState{})},
		{"VertexDescriptor", unsafe.Sizeof(VertexDescriptor{})},
		{"VertexAttributeDescriptorArray", unsafe.Sizeof(VertexAttributeDescriptorArray{})},
		{"VertexAttributeDescriptor", unsafe.Sizeof(VertexAttributeDescriptor{})},
		{"VertexBufferLayoutDescriptorArray", unsafe.Sizeof(VertexBufferLayoutDescriptorArray{})},
		{"VertexBufferLayoutDescriptor", unsafe.Sizeof(VertexBufferLayoutDescriptor{})},
		{"HeapDescriptor", unsafe.Sizeof(HeapDescriptor{})},
		{"Heap", unsafe.Sizeof(Heap{})},
		{"Fence", unsafe.Sizeof(Fence{})},
		{"Event", unsafe.Sizeof(Event{})},
		{"SharedEvent", unsafe.Sizeof(SharedEvent{})},
		{"SharedEventListener", unsafe.Sizeof(SharedEventListener{})},
		{"CaptureDescriptor", unsafe.Sizeof(CaptureDescriptor{})},
		{"CaptureManager", unsafe.Sizeof(CaptureManager{})},
		{"Drawable", unsafe.Sizeof(Drawable{})},
	}
	for _, s := range sizes {
		assert.Equal(t, ptr, s.size, s.name)
	}
}

// The geometry structs are passed to Metal by value, so their layout must
// match the C definitions exactly.
func TestGeometryLayout(t *testing.T) {
	word := unsafe.Sizeof(uintptr(0))
	assert.Equal(t, 3*word, unsafe.Sizeof(Origin{}))
	assert.Equal(t, 3*word, unsafe.Sizeof(Size{}))
	assert.Equal(t, 6*word, unsafe.Sizeof(Region{}))
	assert.Equal(t, 3*word, unsafe.Offsetof(Region{}.Size))
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Viewport{}))
	assert.Equal(t, 4*word, unsafe.Sizeof(ScissorRect{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(ClearColor{}))
	assert.Equal(t, 2*word, unsafe.Sizeof(SizeAndAlign{}))
}

func TestFromRawNil(t *testing.T) {
	if _, ok := DeviceFromRaw(0); ok {
		t.Error("DeviceFromRaw(0) reported ok")
	}
	if _, ok := CommandQueueFromRaw(0); ok {
		t.Error("CommandQueueFromRaw(0) reported ok")
	}
	if _, ok := CommandBufferFromRaw(0); ok {
		t.Error("CommandBufferFromRaw(0) reported ok")
	}
	if _, ok := RenderCommandEncoderFromRaw(0); ok {
		t.Error("RenderCommandEncoderFromRaw(0) reported ok")
	}
	if _, ok := ComputeCommandEncoderFromRaw(0); ok {
		t.Error("ComputeCommandEncoderFromRaw(0) reported ok")
	}
	if _, ok := BlitCommandEncoderFromRaw(0); ok {
		t.Error("BlitCommandEncoderFromRaw(0) reported ok")
	}
	if _, ok := BufferFromRaw(0); ok {
		t.Error("BufferFromRaw(0) reported ok")
	}
	if _, ok := TextureFromRaw(0); ok {
		t.Error("TextureFromRaw(0) reported ok")
	}
	if _, ok := TextureDescriptorFromRaw(0); ok {
		t.Error("TextureDescriptorFromRaw(0) reported ok")
	}
	if _, ok := SamplerDescriptorFromRaw(0); ok {
		t.Error("SamplerDescriptorFromRaw(0) reported ok")
	}
	if _, ok := SamplerStateFromRaw(0); ok {
		t.Error("SamplerStateFromRaw(0) reported ok")
	}
	if _, ok := LibraryFromRaw(0); ok {
		t.Error("LibraryFromRaw(0) reported ok")
	}
	if _, ok := FunctionFromRaw(0); ok {
		t.Error("FunctionFromRaw(0) reported ok")
	}
	if _, ok := CompileOptionsFromRaw(0); ok {
		t.Error("CompileOptionsFromRaw(0) reported ok")
	}
	if _, ok := RenderPipelineDescriptorFromRaw(0); ok {
		t.Error("RenderPipelineDescriptorFromRaw(0) reported ok")
	}
	if _, ok := RenderPipelineStateFromRaw(0); ok {
		t.Error("RenderPipelineStateFromRaw(0) reported ok")
	}
	if _, ok := ComputePipelineStateFromRaw(0); ok {
		t.Error("ComputePipelineStateFromRaw(0) reported ok")
	}
	if _, ok := RenderPassDescriptorFromRaw(0); ok {
		t.Error("RenderPassDescriptorFromRaw(0) reported ok")
	}
	if _, ok := DepthStencilStateFromRaw(0); ok {
		t.Error("DepthStencilStateFromRaw(0) reported ok")
	}
	if _, ok := HeapFromRaw(0); ok {
		t.Error("HeapFromRaw(0) reported ok")
	}
	if _, ok := FenceFromRaw(0); ok {
		t.Error("FenceFromRaw(0) reported ok")
	}
	if _, ok := EventFromRaw(0); ok {
		t.Error("EventFromRaw(0) reported ok")
	}
	if _, ok := SharedEventFromRaw(0); ok {
		t.Error("SharedEventFromRaw(0) reported ok")
	}
	if _, ok := DrawableFromRaw(0); ok {
		t.Error("DrawableFromRaw(0) reported ok")
	}
}

func TestErrorOrFallback(t *testing.T) {
	err := errorOrFallback(0, ErrCapture)
	assert.Equal(t, ErrCapture, err)
}

func TestIsAvailable(t *testing.T) {
	available := IsAvailable()
	t.Logf("Metal available: %v", available)
}

func TestCreateSystemDefaultDevice(t *testing.T) {
	if !IsAvailable() {
		t.Skip("Metal not available")
	}

	dev, err := CreateSystemDefaultDevice()
	if err != nil {
		t.Fatalf("CreateSystemDefaultDevice failed: %v", err)
	}
	defer dev.Release()

	if dev.Name() == "" {
		t.Error("device name is empty")
	}
	t.Logf("Device: %s", dev.Name())
}

func TestCopyAllDevices(t *testing.T) {
	if !IsAvailable() {
		t.Skip("Metal not available")
	}

	devices, err := CopyAllDevices()
	if err != nil {
		t.Fatalf("CopyAllDevices failed: %v", err)
	}
	if len(devices) == 0 {
		t.Error("Metal is available but no devices were enumerated")
	}
	for _, dev := range devices {
		t.Logf("Device: %s (registry %d)", dev.Name(), dev.RegistryID())
		dev.Release()
	}
}
