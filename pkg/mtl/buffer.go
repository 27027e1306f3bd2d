//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selBufferLength              = objc.RegisterName("length")
	selContents                  = objc.RegisterName("contents")
	selDidModifyRange            = objc.RegisterName("didModifyRange:")
	selGPUAddress                = objc.RegisterName("gpuAddress")
	selNewTextureWithDescBufOffs = objc.RegisterName("newTextureWithDescriptor:offset:bytesPerRow:")
	selAddDebugMarkerRange       = objc.RegisterName("addDebugMarker:range:")
	selRemoveAllDebugMarkers     = objc.RegisterName("removeAllDebugMarkers")
)

// Buffer is an untyped allocation of GPU-accessible memory.
type Buffer struct {
	resource
}

// BufferFromRaw wraps a raw MTLBuffer pointer without touching its
// reference count. It reports false when raw is nil.
func BufferFromRaw(raw objc.ID) (Buffer, bool) {
	if raw == 0 {
		return Buffer{}, false
	}
	return Buffer{resource{id: raw}}, true
}

// Length is the requested byte size of the buffer.
func (b Buffer) Length() int { return int(b.id.Send(selBufferLength)) }

// Contents returns the CPU address of the buffer memory, or nil for
// buffers in private storage.
func (b Buffer) Contents() unsafe.Pointer {
	return unsafe.Pointer(b.id.Send(selContents))
}

// Bytes exposes the buffer memory as a byte slice. It returns nil for
// buffers the CPU cannot address. Writes through the slice are visible to
// the GPU per the buffer's storage mode; managed buffers additionally need
// DidModifyRange.
func (b Buffer) Bytes() []byte {
	p := b.Contents()
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), b.Length())
}

// DidModifyRange tells Metal the CPU changed the given byte range of a
// managed buffer, scheduling an upload of that range to the GPU copy.
func (b Buffer) DidModifyRange(r foundation.Range) {
	b.id.Send(selDidModifyRange, r)
}

// GPUAddress is the buffer's address in the GPU address space, for use in
// argument buffers.
func (b Buffer) GPUAddress() uint64 { return uint64(b.id.Send(selGPUAddress)) }

// AddDebugMarker labels a byte range of the buffer in GPU tooling.
func (b Buffer) AddDebugMarker(marker string, r foundation.Range) {
	ns := foundation.NewString(marker)
	defer ns.Release()
	b.id.Send(selAddDebugMarkerRange, ns.Raw(), r)
}

// RemoveAllDebugMarkers clears markers added with AddDebugMarker.
func (b Buffer) RemoveAllDebugMarkers() { b.id.Send(selRemoveAllDebugMarkers) }

// NewTexture carves a linear texture out of the buffer's memory starting
// at offset. The texture shares the buffer's storage; offset and
// bytesPerRow must satisfy the device's linear texture alignment.
func (b Buffer) NewTexture(desc TextureDescriptor, offset, bytesPerRow int) (Texture, error) {
	raw := b.id.Send(selNewTextureWithDescBufOffs, desc.id, offset, bytesPerRow)
	if raw == 0 {
		return Texture{}, ErrTextureCreation
	}
	return Texture{resource{id: raw}}, nil
}
