//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

var (
	selSetRenderPipelineState    = objc.RegisterName("setRenderPipelineState:")
	selSetVertexBuffer           = objc.RegisterName("setVertexBuffer:offset:atIndex:")
	selSetVertexBufferOffset     = objc.RegisterName("setVertexBufferOffset:atIndex:")
	selSetVertexBytes            = objc.RegisterName("setVertexBytes:length:atIndex:")
	selSetFragmentBuffer         = objc.RegisterName("setFragmentBuffer:offset:atIndex:")
	selSetFragmentBytes          = objc.RegisterName("setFragmentBytes:length:atIndex:")
	selSetVertexTexture          = objc.RegisterName("setVertexTexture:atIndex:")
	selSetFragmentTexture        = objc.RegisterName("setFragmentTexture:atIndex:")
	selSetVertexSamplerState     = objc.RegisterName("setVertexSamplerState:atIndex:")
	selSetFragmentSamplerState   = objc.RegisterName("setFragmentSamplerState:atIndex:")
	selSetViewport               = objc.RegisterName("setViewport:")
	selSetScissorRect            = objc.RegisterName("setScissorRect:")
	selSetFrontFacingWinding     = objc.RegisterName("setFrontFacingWinding:")
	selSetCullMode               = objc.RegisterName("setCullMode:")
	selSetDepthClipMode          = objc.RegisterName("setDepthClipMode:")
	selSetDepthBias              = objc.RegisterName("setDepthBias:slopeScale:clamp:")
	selSetTriangleFillMode       = objc.RegisterName("setTriangleFillMode:")
	selSetBlendColor             = objc.RegisterName("setBlendColorRed:green:blue:alpha:")
	selSetDepthStencilState      = objc.RegisterName("setDepthStencilState:")
	selSetStencilReferenceValue  = objc.RegisterName("setStencilReferenceValue:")
	selSetStencilFrontBackValues = objc.RegisterName("setStencilFrontReferenceValue:backReferenceValue:")
	selSetVisibilityResultMode   = objc.RegisterName("setVisibilityResultMode:offset:")
	selDrawPrimitives            = objc.RegisterName("drawPrimitives:vertexStart:vertexCount:")
	selDrawPrimitivesInstanced   = objc.RegisterName("drawPrimitives:vertexStart:vertexCount:instanceCount:")
	selDrawIndexedPrimitives     = objc.RegisterName("drawIndexedPrimitives:indexCount:indexType:indexBuffer:indexBufferOffset:")
	selDrawIndexedInstanced      = objc.RegisterName("drawIndexedPrimitives:indexCount:indexType:indexBuffer:indexBufferOffset:instanceCount:")
	selUseResourceUsage          = objc.RegisterName("useResource:usage:")
	selUseHeap                   = objc.RegisterName("useHeap:")
	selUpdateFenceAfterStages    = objc.RegisterName("updateFence:afterStages:")
	selWaitForFenceBeforeStages  = objc.RegisterName("waitForFence:beforeStages:")
)

// Resource is any GPU allocation that can be residency-declared on an
// encoder: buffers, textures and anything else wrapping an MTLResource.
type Resource interface {
	Raw() objc.ID
}

// RenderCommandEncoder encodes the draw commands of one render pass.
type RenderCommandEncoder struct {
	commandEncoder
}

// RenderCommandEncoderFromRaw wraps a raw encoder pointer without touching
// its reference count. It reports false when raw is nil.
func RenderCommandEncoderFromRaw(raw objc.ID) (RenderCommandEncoder, bool) {
	if raw == 0 {
		return RenderCommandEncoder{}, false
	}
	return RenderCommandEncoder{commandEncoder{id: raw}}, true
}

// SetRenderPipelineState selects the compiled pipeline for subsequent
// draws.
func (e RenderCommandEncoder) SetRenderPipelineState(state RenderPipelineState) {
	e.id.Send(selSetRenderPipelineState, state.id)
}

// SetVertexBuffer binds a buffer to the vertex argument table. A zero
// Buffer clears the slot.
func (e RenderCommandEncoder) SetVertexBuffer(buf Buffer, offset, index int) {
	e.id.Send(selSetVertexBuffer, buf.id, offset, index)
}

// SetVertexBufferOffset moves the offset of an already-bound vertex
// buffer, which is cheaper than rebinding.
func (e RenderCommandEncoder) SetVertexBufferOffset(offset, index int) {
	e.id.Send(selSetVertexBufferOffset, offset, index)
}

// SetVertexBytes copies length bytes from ptr into transient buffer
// storage bound at index. Intended for small (< 4 KB) argument data.
func (e RenderCommandEncoder) SetVertexBytes(ptr unsafe.Pointer, length, index int) {
	e.id.Send(selSetVertexBytes, ptr, length, index)
}

// SetFragmentBuffer binds a buffer to the fragment argument table. A zero
// Buffer clears the slot.
func (e RenderCommandEncoder) SetFragmentBuffer(buf Buffer, offset, index int) {
	e.id.Send(selSetFragmentBuffer, buf.id, offset, index)
}

// SetFragmentBytes copies length bytes from ptr into transient buffer
// storage bound at index in the fragment argument table.
func (e RenderCommandEncoder) SetFragmentBytes(ptr unsafe.Pointer, length, index int) {
	e.id.Send(selSetFragmentBytes, ptr, length, index)
}

// SetVertexTexture binds a texture to the vertex argument table. A zero
// Texture clears the slot.
func (e RenderCommandEncoder) SetVertexTexture(tex Texture, index int) {
	e.id.Send(selSetVertexTexture, tex.id, index)
}

// SetFragmentTexture binds a texture to the fragment argument table. A
// zero Texture clears the slot.
func (e RenderCommandEncoder) SetFragmentTexture(tex Texture, index int) {
	e.id.Send(selSetFragmentTexture, tex.id, index)
}

// SetVertexSamplerState binds a sampler to the vertex argument table.
func (e RenderCommandEncoder) SetVertexSamplerState(s SamplerState, index int) {
	e.id.Send(selSetVertexSamplerState, s.id, index)
}

// SetFragmentSamplerState binds a sampler to the fragment argument table.
func (e RenderCommandEncoder) SetFragmentSamplerState(s SamplerState, index int) {
	e.id.Send(selSetFragmentSamplerState, s.id, index)
}

// SetViewport maps clip space onto the given region of the render target.
func (e RenderCommandEncoder) SetViewport(v Viewport) {
	e.id.Send(selSetViewport, v)
}

// SetScissorRect discards fragments outside rect. The rect must lie within
// the render target.
func (e RenderCommandEncoder) SetScissorRect(rect ScissorRect) {
	e.id.Send(selSetScissorRect, rect)
}

// SetFrontFacingWinding declares which vertex winding is front-facing.
func (e RenderCommandEncoder) SetFrontFacingWinding(w Winding) {
	e.id.Send(selSetFrontFacingWinding, uint(w))
}

// SetCullMode culls primitives facing the given way.
func (e RenderCommandEncoder) SetCullMode(mode CullMode) {
	e.id.Send(selSetCullMode, uint(mode))
}

// SetDepthClipMode clips or clamps depth values outside the viewport
// range.
func (e RenderCommandEncoder) SetDepthClipMode(mode DepthClipMode) {
	e.id.Send(selSetDepthClipMode, uint(mode))
}

// SetDepthBias offsets fragment depth values by
// bias + slopeScale * maxSlope, clamped to clamp when clamp is nonzero.
func (e RenderCommandEncoder) SetDepthBias(bias, slopeScale, clamp float32) {
	e.id.Send(selSetDepthBias, bias, slopeScale, clamp)
}

// SetTriangleFillMode rasterizes triangles filled or as wireframe.
func (e RenderCommandEncoder) SetTriangleFillMode(mode TriangleFillMode) {
	e.id.Send(selSetTriangleFillMode, uint(mode))
}

// SetBlendColor sets the constant color used by the BlendColor and
// BlendAlpha blend factors.
func (e RenderCommandEncoder) SetBlendColor(red, green, blue, alpha float32) {
	e.id.Send(selSetBlendColor, red, green, blue, alpha)
}

// SetDepthStencilState selects the depth and stencil test configuration
// for subsequent draws.
func (e RenderCommandEncoder) SetDepthStencilState(state DepthStencilState) {
	e.id.Send(selSetDepthStencilState, state.id)
}

// SetStencilReferenceValue sets the reference value for both face
// orientations.
func (e RenderCommandEncoder) SetStencilReferenceValue(value uint32) {
	e.id.Send(selSetStencilReferenceValue, value)
}

// SetStencilFrontBackReferenceValues sets separate reference values for
// front- and back-facing primitives.
func (e RenderCommandEncoder) SetStencilFrontBackReferenceValues(front, back uint32) {
	e.id.Send(selSetStencilFrontBackValues, front, back)
}

// SetVisibilityResultMode counts passing samples into the render pass's
// visibility buffer at the given byte offset.
func (e RenderCommandEncoder) SetVisibilityResultMode(mode VisibilityResultMode, offset int) {
	e.id.Send(selSetVisibilityResultMode, uint(mode), offset)
}

// DrawPrimitives encodes a non-indexed draw of vertexCount vertices
// starting at vertexStart.
func (e RenderCommandEncoder) DrawPrimitives(typ PrimitiveType, vertexStart, vertexCount int) {
	e.id.Send(selDrawPrimitives, uint(typ), vertexStart, vertexCount)
}

// DrawPrimitivesInstanced encodes instanceCount instances of a non-indexed
// draw.
func (e RenderCommandEncoder) DrawPrimitivesInstanced(typ PrimitiveType, vertexStart, vertexCount, instanceCount int) {
	e.id.Send(selDrawPrimitivesInstanced, uint(typ), vertexStart, vertexCount, instanceCount)
}

// DrawIndexedPrimitives encodes a draw reading vertex indices from
// indexBuffer at indexBufferOffset.
func (e RenderCommandEncoder) DrawIndexedPrimitives(typ PrimitiveType, indexCount int, indexType IndexType, indexBuffer Buffer, indexBufferOffset int) {
	e.id.Send(selDrawIndexedPrimitives, uint(typ), indexCount, uint(indexType), indexBuffer.id, indexBufferOffset)
}

// DrawIndexedPrimitivesInstanced encodes instanceCount instances of an
// indexed draw.
func (e RenderCommandEncoder) DrawIndexedPrimitivesInstanced(typ PrimitiveType, indexCount int, indexType IndexType, indexBuffer Buffer, indexBufferOffset, instanceCount int) {
	e.id.Send(selDrawIndexedInstanced, uint(typ), indexCount, uint(indexType), indexBuffer.id, indexBufferOffset, instanceCount)
}

// UseResource declares that indirectly referenced resources (argument
// buffers) are used by subsequent draws, making them resident.
func (e RenderCommandEncoder) UseResource(res Resource, usage ResourceUsage) {
	e.id.Send(selUseResourceUsage, res.Raw(), uint(usage))
}

// UseHeap makes every resource sub-allocated from the heap resident for
// subsequent draws.
func (e RenderCommandEncoder) UseHeap(h Heap) {
	e.id.Send(selUseHeap, h.id)
}

// UpdateFence signals the fence after the given stages of all prior draws
// finish.
func (e RenderCommandEncoder) UpdateFence(f Fence, after RenderStages) {
	e.id.Send(selUpdateFenceAfterStages, f.id, uint(after))
}

// WaitForFence stalls the given stages of subsequent draws until the fence
// is signaled.
func (e RenderCommandEncoder) WaitForFence(f Fence, before RenderStages) {
	e.id.Send(selWaitForFenceBeforeStages, f.id, uint(before))
}
