//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selTexture2DDescriptor   = objc.RegisterName("texture2DDescriptorWithPixelFormat:width:height:mipmapped:")
	selTextureCubeDescriptor = objc.RegisterName("textureCubeDescriptorWithPixelFormat:size:mipmapped:")

	selTextureType            = objc.RegisterName("textureType")
	selSetTextureType         = objc.RegisterName("setTextureType:")
	selPixelFormat            = objc.RegisterName("pixelFormat")
	selSetPixelFormat         = objc.RegisterName("setPixelFormat:")
	selWidth                  = objc.RegisterName("width")
	selSetWidth               = objc.RegisterName("setWidth:")
	selHeight                 = objc.RegisterName("height")
	selSetHeight              = objc.RegisterName("setHeight:")
	selDepth                  = objc.RegisterName("depth")
	selSetDepth               = objc.RegisterName("setDepth:")
	selMipmapLevelCount       = objc.RegisterName("mipmapLevelCount")
	selSetMipmapLevelCount    = objc.RegisterName("setMipmapLevelCount:")
	selSampleCount            = objc.RegisterName("sampleCount")
	selSetSampleCount         = objc.RegisterName("setSampleCount:")
	selArrayLength            = objc.RegisterName("arrayLength")
	selSetArrayLength         = objc.RegisterName("setArrayLength:")
	selUsage                  = objc.RegisterName("usage")
	selSetUsage               = objc.RegisterName("setUsage:")
	selSetResourceOptions     = objc.RegisterName("setResourceOptions:")
	selSetCPUCacheMode        = objc.RegisterName("setCpuCacheMode:")
	selSetStorageMode         = objc.RegisterName("setStorageMode:")
	selSetHazardTrackingMode  = objc.RegisterName("setHazardTrackingMode:")
	selReplaceRegion          = objc.RegisterName("replaceRegion:mipmapLevel:withBytes:bytesPerRow:")
	selReplaceRegionSlice     = objc.RegisterName("replaceRegion:mipmapLevel:slice:withBytes:bytesPerRow:bytesPerImage:")
	selGetBytes               = objc.RegisterName("getBytes:bytesPerRow:fromRegion:mipmapLevel:")
	selGetBytesSlice          = objc.RegisterName("getBytes:bytesPerRow:bytesPerImage:fromRegion:mipmapLevel:slice:")
	selNewTextureView         = objc.RegisterName("newTextureViewWithPixelFormat:")
	selNewTextureViewDetailed = objc.RegisterName("newTextureViewWithPixelFormat:textureType:levels:slices:")
	selParentTexture          = objc.RegisterName("parentTexture")
	selTextureBuffer          = objc.RegisterName("buffer")
	selTextureBufferOffset    = objc.RegisterName("bufferOffset")
	selTextureBufferBPR       = objc.RegisterName("bufferBytesPerRow")
	selIsFramebufferOnly      = objc.RegisterName("isFramebufferOnly")
)

// TextureDescriptor configures a texture allocation. Mutate it, hand it to
// Device.NewTexture, release it; the descriptor is not referenced by the
// created texture.
type TextureDescriptor struct {
	id objc.ID
}

// NewTextureDescriptor creates a descriptor with Metal's defaults: a
// 1x1 2D RGBA8Unorm texture. The caller owns the result.
func NewTextureDescriptor() TextureDescriptor {
	return TextureDescriptor{id: alloc("MTLTextureDescriptor")}
}

// NewTexture2DDescriptor creates a descriptor prefilled for a 2D texture.
// When mipmapped is true the full mip chain is allocated.
func NewTexture2DDescriptor(pf PixelFormat, width, height int, mipmapped bool) TextureDescriptor {
	frameworkMust()
	raw := objc.ID(objc.GetClass("MTLTextureDescriptor")).Send(
		selTexture2DDescriptor, uint(pf), width, height, mipmapped)
	// Convenience constructors hand out autoreleased objects.
	retain(raw)
	return TextureDescriptor{id: raw}
}

// NewTextureCubeDescriptor creates a descriptor prefilled for a cube
// texture with square faces of the given edge length.
func NewTextureCubeDescriptor(pf PixelFormat, size int, mipmapped bool) TextureDescriptor {
	frameworkMust()
	raw := objc.ID(objc.GetClass("MTLTextureDescriptor")).Send(
		selTextureCubeDescriptor, uint(pf), size, mipmapped)
	retain(raw)
	return TextureDescriptor{id: raw}
}

// TextureDescriptorFromRaw wraps a raw descriptor pointer without touching
// its reference count. It reports false when raw is nil.
func TextureDescriptorFromRaw(raw objc.ID) (TextureDescriptor, bool) {
	if raw == 0 {
		return TextureDescriptor{}, false
	}
	return TextureDescriptor{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d TextureDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d TextureDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d TextureDescriptor) Release() { release(d.id) }

func (d TextureDescriptor) TextureType() TextureType {
	return TextureType(d.id.Send(selTextureType))
}
func (d TextureDescriptor) SetTextureType(t TextureType) { d.id.Send(selSetTextureType, uint(t)) }

func (d TextureDescriptor) PixelFormat() PixelFormat {
	return PixelFormat(d.id.Send(selPixelFormat))
}
func (d TextureDescriptor) SetPixelFormat(pf PixelFormat) { d.id.Send(selSetPixelFormat, uint(pf)) }

func (d TextureDescriptor) Width() int         { return int(d.id.Send(selWidth)) }
func (d TextureDescriptor) SetWidth(w int)     { d.id.Send(selSetWidth, w) }
func (d TextureDescriptor) Height() int        { return int(d.id.Send(selHeight)) }
func (d TextureDescriptor) SetHeight(h int)    { d.id.Send(selSetHeight, h) }
func (d TextureDescriptor) Depth() int         { return int(d.id.Send(selDepth)) }
func (d TextureDescriptor) SetDepth(depth int) { d.id.Send(selSetDepth, depth) }

func (d TextureDescriptor) MipmapLevelCount() int {
	return int(d.id.Send(selMipmapLevelCount))
}
func (d TextureDescriptor) SetMipmapLevelCount(n int) { d.id.Send(selSetMipmapLevelCount, n) }

func (d TextureDescriptor) SampleCount() int     { return int(d.id.Send(selSampleCount)) }
func (d TextureDescriptor) SetSampleCount(n int) { d.id.Send(selSetSampleCount, n) }

func (d TextureDescriptor) ArrayLength() int     { return int(d.id.Send(selArrayLength)) }
func (d TextureDescriptor) SetArrayLength(n int) { d.id.Send(selSetArrayLength, n) }

func (d TextureDescriptor) Usage() TextureUsage {
	return TextureUsage(d.id.Send(selUsage))
}
func (d TextureDescriptor) SetUsage(u TextureUsage) { d.id.Send(selSetUsage, uint(u)) }

func (d TextureDescriptor) ResourceOptions() ResourceOptions {
	return ResourceOptions(d.id.Send(selResourceOptions))
}
func (d TextureDescriptor) SetResourceOptions(o ResourceOptions) {
	d.id.Send(selSetResourceOptions, uint(o))
}

func (d TextureDescriptor) CPUCacheMode() CPUCacheMode {
	return CPUCacheMode(d.id.Send(selCPUCacheMode))
}
func (d TextureDescriptor) SetCPUCacheMode(m CPUCacheMode) {
	d.id.Send(selSetCPUCacheMode, uint(m))
}

func (d TextureDescriptor) StorageMode() StorageMode {
	return StorageMode(d.id.Send(selStorageMode))
}
func (d TextureDescriptor) SetStorageMode(m StorageMode) {
	d.id.Send(selSetStorageMode, uint(m))
}

func (d TextureDescriptor) HazardTrackingMode() HazardTrackingMode {
	return HazardTrackingMode(d.id.Send(selHazardTrackingMode))
}
func (d TextureDescriptor) SetHazardTrackingMode(m HazardTrackingMode) {
	d.id.Send(selSetHazardTrackingMode, uint(m))
}

// Texture is a formatted image (or image array) in GPU-accessible memory.
type Texture struct {
	resource
}

// TextureFromRaw wraps a raw MTLTexture pointer without touching its
// reference count. It reports false when raw is nil.
func TextureFromRaw(raw objc.ID) (Texture, bool) {
	if raw == 0 {
		return Texture{}, false
	}
	return Texture{resource{id: raw}}, true
}

func (t Texture) TextureType() TextureType { return TextureType(t.id.Send(selTextureType)) }
func (t Texture) PixelFormat() PixelFormat { return PixelFormat(t.id.Send(selPixelFormat)) }
func (t Texture) Width() int               { return int(t.id.Send(selWidth)) }
func (t Texture) Height() int              { return int(t.id.Send(selHeight)) }
func (t Texture) Depth() int               { return int(t.id.Send(selDepth)) }
func (t Texture) MipmapLevelCount() int    { return int(t.id.Send(selMipmapLevelCount)) }
func (t Texture) SampleCount() int         { return int(t.id.Send(selSampleCount)) }
func (t Texture) ArrayLength() int         { return int(t.id.Send(selArrayLength)) }
func (t Texture) Usage() TextureUsage      { return TextureUsage(t.id.Send(selUsage)) }

// IsFramebufferOnly reports whether the texture can only serve as a render
// target, as drawable textures often are.
func (t Texture) IsFramebufferOnly() bool { return msgSendB(t.id, selIsFramebufferOnly) }

// ReplaceRegion copies pixel rows from ptr into a region of mipmap level
// `level`. Only valid for textures the CPU can write (shared or managed
// storage).
func (t Texture) ReplaceRegion(region Region, level int, ptr unsafe.Pointer, bytesPerRow int) {
	t.id.Send(selReplaceRegion, region, level, ptr, bytesPerRow)
}

// ReplaceRegionSlice is ReplaceRegion for a specific array slice or cube
// face, with an explicit 2D image stride for 3D data.
func (t Texture) ReplaceRegionSlice(region Region, level, slice int, ptr unsafe.Pointer, bytesPerRow, bytesPerImage int) {
	t.id.Send(selReplaceRegionSlice, region, level, slice, ptr, bytesPerRow, bytesPerImage)
}

// GetBytes copies a region of mipmap level `level` into ptr, bytesPerRow
// apart per row. Only valid for textures the CPU can read.
func (t Texture) GetBytes(ptr unsafe.Pointer, bytesPerRow int, region Region, level int) {
	t.id.Send(selGetBytes, ptr, bytesPerRow, region, level)
}

// GetBytesSlice is GetBytes for a specific array slice or cube face.
func (t Texture) GetBytesSlice(ptr unsafe.Pointer, bytesPerRow, bytesPerImage int, region Region, level, slice int) {
	t.id.Send(selGetBytesSlice, ptr, bytesPerRow, bytesPerImage, region, level, slice)
}

// NewTextureView creates a texture sharing this texture's memory but
// reading it in a compatible pixel format. The caller owns the result.
func (t Texture) NewTextureView(pf PixelFormat) (Texture, error) {
	raw := t.id.Send(selNewTextureView, uint(pf))
	if raw == 0 {
		return Texture{}, ErrTextureCreation
	}
	return Texture{resource{id: raw}}, nil
}

// NewTextureViewWithRange creates a view restricted to the given mipmap
// levels and array slices, possibly reinterpreting type and format.
func (t Texture) NewTextureViewWithRange(pf PixelFormat, typ TextureType, levels, slices foundation.Range) (Texture, error) {
	raw := t.id.Send(selNewTextureViewDetailed, uint(pf), uint(typ), levels, slices)
	if raw == 0 {
		return Texture{}, ErrTextureCreation
	}
	return Texture{resource{id: raw}}, nil
}

// ParentTexture returns the texture this view was created from. Borrowed;
// reports false for textures that are not views.
func (t Texture) ParentTexture() (Texture, bool) {
	raw := t.id.Send(selParentTexture)
	if raw == 0 {
		return Texture{}, false
	}
	return Texture{resource{id: raw}}, true
}

// Buffer returns the buffer this linear texture was created from.
// Borrowed; reports false for non-buffer-backed textures.
func (t Texture) Buffer() (Buffer, bool) {
	raw := t.id.Send(selTextureBuffer)
	if raw == 0 {
		return Buffer{}, false
	}
	return Buffer{resource{id: raw}}, true
}

// BufferOffset is the byte offset into the backing buffer, for
// buffer-backed textures.
func (t Texture) BufferOffset() int { return int(t.id.Send(selTextureBufferOffset)) }

// BufferBytesPerRow is the row stride of a buffer-backed texture.
func (t Texture) BufferBytesPerRow() int { return int(t.id.Send(selTextureBufferBPR)) }
