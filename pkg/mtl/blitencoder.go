//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selCopyBufferToBuffer   = objc.RegisterName("copyFromBuffer:sourceOffset:toBuffer:destinationOffset:size:")
	selCopyBufferToTexture  = objc.RegisterName("copyFromBuffer:sourceOffset:sourceBytesPerRow:sourceBytesPerImage:sourceSize:toTexture:destinationSlice:destinationLevel:destinationOrigin:")
	selCopyTextureToBuffer  = objc.RegisterName("copyFromTexture:sourceSlice:sourceLevel:sourceOrigin:sourceSize:toBuffer:destinationOffset:destinationBytesPerRow:destinationBytesPerImage:")
	selCopyTextureToTexture = objc.RegisterName("copyFromTexture:toTexture:")
	selFillBuffer           = objc.RegisterName("fillBuffer:range:value:")
	selGenerateMipmaps      = objc.RegisterName("generateMipmapsForTexture:")
	selSynchronizeResource  = objc.RegisterName("synchronizeResource:")
	selSynchronizeTexture   = objc.RegisterName("synchronizeTexture:slice:level:")
	selOptimizeContents     = objc.RegisterName("optimizeContentsForGPUAccess:")
)

// BlitCommandEncoder encodes copy, fill, synchronize and mipmap generation
// commands.
type BlitCommandEncoder struct {
	commandEncoder
}

// BlitCommandEncoderFromRaw wraps a raw encoder pointer without touching
// its reference count. It reports false when raw is nil.
func BlitCommandEncoderFromRaw(raw objc.ID) (BlitCommandEncoder, bool) {
	if raw == 0 {
		return BlitCommandEncoder{}, false
	}
	return BlitCommandEncoder{commandEncoder{id: raw}}, true
}

// CopyBufferToBuffer copies size bytes between buffer ranges. Ranges must
// not overlap when src and dst alias the same buffer.
func (e BlitCommandEncoder) CopyBufferToBuffer(src Buffer, srcOffset int, dst Buffer, dstOffset, size int) {
	e.id.Send(selCopyBufferToBuffer, src.id, srcOffset, dst.id, dstOffset, size)
}

// CopyBufferToTexture copies pixel rows from linear buffer memory into a
// texture region.
func (e BlitCommandEncoder) CopyBufferToTexture(src Buffer, srcOffset, srcBytesPerRow, srcBytesPerImage int, srcSize Size, dst Texture, dstSlice, dstLevel int, dstOrigin Origin) {
	e.id.Send(selCopyBufferToTexture,
		src.id, srcOffset, srcBytesPerRow, srcBytesPerImage, srcSize,
		dst.id, dstSlice, dstLevel, dstOrigin)
}

// CopyTextureToBuffer copies a texture region into linear buffer memory.
func (e BlitCommandEncoder) CopyTextureToBuffer(src Texture, srcSlice, srcLevel int, srcOrigin Origin, srcSize Size, dst Buffer, dstOffset, dstBytesPerRow, dstBytesPerImage int) {
	e.id.Send(selCopyTextureToBuffer,
		src.id, srcSlice, srcLevel, srcOrigin, srcSize,
		dst.id, dstOffset, dstBytesPerRow, dstBytesPerImage)
}

// CopyTexture copies an entire texture into another of identical shape and
// compatible pixel format.
func (e BlitCommandEncoder) CopyTexture(src, dst Texture) {
	e.id.Send(selCopyTextureToTexture, src.id, dst.id)
}

// FillBuffer writes value into every byte of the range.
func (e BlitCommandEncoder) FillBuffer(buf Buffer, r foundation.Range, value byte) {
	e.id.Send(selFillBuffer, buf.id, r, value)
}

// GenerateMipmaps fills every mipmap level of the texture by repeatedly
// downscaling level 0. The texture must have a color-renderable and
// filterable pixel format.
func (e BlitCommandEncoder) GenerateMipmaps(tex Texture) {
	e.id.Send(selGenerateMipmaps, tex.id)
}

// SynchronizeResource flushes GPU writes to a managed resource back to its
// CPU copy. No-op memory-wise for shared storage.
func (e BlitCommandEncoder) SynchronizeResource(res Resource) {
	e.id.Send(selSynchronizeResource, res.Raw())
}

// SynchronizeTexture flushes GPU writes of a single slice and level of a
// managed texture back to its CPU copy.
func (e BlitCommandEncoder) SynchronizeTexture(tex Texture, slice, level int) {
	e.id.Send(selSynchronizeTexture, tex.id, slice, level)
}

// OptimizeContentsForGPUAccess reorders texel memory for GPU-side access
// patterns, undoing layouts produced by CPU writes.
func (e BlitCommandEncoder) OptimizeContentsForGPUAccess(tex Texture) {
	e.id.Send(selOptimizeContents, tex.id)
}

// UpdateFence signals the fence after all prior blit commands finish.
func (e BlitCommandEncoder) UpdateFence(f Fence) {
	e.id.Send(selUpdateFence, f.id)
}

// WaitForFence stalls subsequent blit commands until the fence is
// signaled.
func (e BlitCommandEncoder) WaitForFence(f Fence) {
	e.id.Send(selWaitForFence, f.id)
}
