//go:build darwin

package mtl

import "github.com/ebitengine/purego/objc"

var (
	selRenderPassDescriptor       = objc.RegisterName("renderPassDescriptor")
	selDepthAttachment            = objc.RegisterName("depthAttachment")
	selStencilAttachment          = objc.RegisterName("stencilAttachment")
	selVisibilityResultBuffer     = objc.RegisterName("visibilityResultBuffer")
	selSetVisibilityResultBuffer  = objc.RegisterName("setVisibilityResultBuffer:")
	selRenderTargetArrayLength    = objc.RegisterName("renderTargetArrayLength")
	selSetRenderTargetArrayLength = objc.RegisterName("setRenderTargetArrayLength:")

	selTexture           = objc.RegisterName("texture")
	selSetTexture        = objc.RegisterName("setTexture:")
	selLevel             = objc.RegisterName("level")
	selSetLevel          = objc.RegisterName("setLevel:")
	selSlice             = objc.RegisterName("slice")
	selSetSlice          = objc.RegisterName("setSlice:")
	selLoadAction        = objc.RegisterName("loadAction")
	selSetLoadAction     = objc.RegisterName("setLoadAction:")
	selStoreAction       = objc.RegisterName("storeAction")
	selSetStoreAction    = objc.RegisterName("setStoreAction:")
	selResolveTexture    = objc.RegisterName("resolveTexture")
	selSetResolveTexture = objc.RegisterName("setResolveTexture:")
	selClearColor        = objc.RegisterName("clearColor")
	selSetClearColor     = objc.RegisterName("setClearColor:")
	selClearDepth        = objc.RegisterName("clearDepth")
	selSetClearDepth     = objc.RegisterName("setClearDepth:")
	selClearStencil      = objc.RegisterName("clearStencil")
	selSetClearStencil   = objc.RegisterName("setClearStencil:")
)

// RenderPassDescriptor describes the attachments a render command encoder
// draws into and what happens to their contents at the start and end of
// the pass.
type RenderPassDescriptor struct {
	id objc.ID
}

// NewRenderPassDescriptor creates a descriptor with default attachment
// state. The caller owns the result.
func NewRenderPassDescriptor() RenderPassDescriptor {
	frameworkMust()
	raw := objc.ID(objc.GetClass("MTLRenderPassDescriptor")).Send(selRenderPassDescriptor)
	// Convenience constructors hand out autoreleased objects.
	retain(raw)
	return RenderPassDescriptor{id: raw}
}

// RenderPassDescriptorFromRaw wraps a raw descriptor pointer without
// touching its reference count. It reports false when raw is nil.
func RenderPassDescriptorFromRaw(raw objc.ID) (RenderPassDescriptor, bool) {
	if raw == 0 {
		return RenderPassDescriptor{}, false
	}
	return RenderPassDescriptor{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d RenderPassDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d RenderPassDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d RenderPassDescriptor) Release() { release(d.id) }

// ColorAttachments accesses the color attachment configurations. Borrowed.
func (d RenderPassDescriptor) ColorAttachments() RenderPassColorAttachmentDescriptorArray {
	return RenderPassColorAttachmentDescriptorArray{id: d.id.Send(selColorAttachments)}
}

// DepthAttachment returns the depth attachment configuration. Borrowed;
// the descriptor vends one even before a texture is attached.
func (d RenderPassDescriptor) DepthAttachment() RenderPassDepthAttachmentDescriptor {
	return RenderPassDepthAttachmentDescriptor{renderPassAttachment{id: d.id.Send(selDepthAttachment)}}
}

// StencilAttachment returns the stencil attachment configuration.
// Borrowed.
func (d RenderPassDescriptor) StencilAttachment() RenderPassStencilAttachmentDescriptor {
	return RenderPassStencilAttachmentDescriptor{renderPassAttachment{id: d.id.Send(selStencilAttachment)}}
}

// VisibilityResultBuffer returns the buffer occlusion query results are
// written to. Borrowed; reports false when none is set.
func (d RenderPassDescriptor) VisibilityResultBuffer() (Buffer, bool) {
	raw := d.id.Send(selVisibilityResultBuffer)
	if raw == 0 {
		return Buffer{}, false
	}
	return Buffer{resource{id: raw}}, true
}

// SetVisibilityResultBuffer provides storage for visibility result modes
// selected on the encoder.
func (d RenderPassDescriptor) SetVisibilityResultBuffer(buf Buffer) {
	d.id.Send(selSetVisibilityResultBuffer, buf.id)
}

func (d RenderPassDescriptor) RenderTargetArrayLength() int {
	return int(d.id.Send(selRenderTargetArrayLength))
}

// SetRenderTargetArrayLength enables layered rendering into array
// textures.
func (d RenderPassDescriptor) SetRenderTargetArrayLength(n int) {
	d.id.Send(selSetRenderTargetArrayLength, n)
}

// RenderPassColorAttachmentDescriptorArray indexes the color attachment
// configurations of a render pass.
type RenderPassColorAttachmentDescriptorArray struct {
	id objc.ID
}

// At returns the configuration for color attachment index i. Borrowed
// from the descriptor.
func (a RenderPassColorAttachmentDescriptorArray) At(i int) RenderPassColorAttachmentDescriptor {
	return RenderPassColorAttachmentDescriptor{renderPassAttachment{id: a.id.Send(selObjectAtIndexedSubscript, i)}}
}

// renderPassAttachment carries the configuration shared by color, depth
// and stencil attachments.
type renderPassAttachment struct {
	id objc.ID
}

// Raw returns the underlying pointer without transferring ownership.
func (a renderPassAttachment) Raw() objc.ID { return a.id }

// Texture returns the attached texture. Borrowed; reports false when none
// is attached.
func (a renderPassAttachment) Texture() (Texture, bool) {
	raw := a.id.Send(selTexture)
	if raw == 0 {
		return Texture{}, false
	}
	return Texture{resource{id: raw}}, true
}

// SetTexture attaches the texture rendered into during the pass.
func (a renderPassAttachment) SetTexture(t Texture) { a.id.Send(selSetTexture, t.id) }

func (a renderPassAttachment) Level() int     { return int(a.id.Send(selLevel)) }
func (a renderPassAttachment) SetLevel(l int) { a.id.Send(selSetLevel, l) }

func (a renderPassAttachment) Slice() int     { return int(a.id.Send(selSlice)) }
func (a renderPassAttachment) SetSlice(s int) { a.id.Send(selSetSlice, s) }

func (a renderPassAttachment) LoadAction() LoadAction {
	return LoadAction(a.id.Send(selLoadAction))
}

// SetLoadAction chooses what happens to the attachment contents when the
// pass begins.
func (a renderPassAttachment) SetLoadAction(action LoadAction) {
	a.id.Send(selSetLoadAction, uint(action))
}

func (a renderPassAttachment) StoreAction() StoreAction {
	return StoreAction(a.id.Send(selStoreAction))
}

// SetStoreAction chooses what happens to the attachment contents when the
// pass ends.
func (a renderPassAttachment) SetStoreAction(action StoreAction) {
	a.id.Send(selSetStoreAction, uint(action))
}

// ResolveTexture returns the multisample resolve target. Borrowed; reports
// false when none is set.
func (a renderPassAttachment) ResolveTexture() (Texture, bool) {
	raw := a.id.Send(selResolveTexture)
	if raw == 0 {
		return Texture{}, false
	}
	return Texture{resource{id: raw}}, true
}

// SetResolveTexture sets the target multisample contents resolve into when
// the store action resolves.
func (a renderPassAttachment) SetResolveTexture(t Texture) {
	a.id.Send(selSetResolveTexture, t.id)
}

// RenderPassColorAttachmentDescriptor configures one color attachment of
// a render pass.
type RenderPassColorAttachmentDescriptor struct {
	renderPassAttachment
}

func (a RenderPassColorAttachmentDescriptor) ClearColor() ClearColor {
	return msgSendClearColor(a.id, selClearColor)
}

// SetClearColor sets the color written when the load action is
// LoadActionClear.
func (a RenderPassColorAttachmentDescriptor) SetClearColor(c ClearColor) {
	a.id.Send(selSetClearColor, c)
}

// RenderPassDepthAttachmentDescriptor configures the depth attachment of
// a render pass.
type RenderPassDepthAttachmentDescriptor struct {
	renderPassAttachment
}

func (a RenderPassDepthAttachmentDescriptor) ClearDepth() float64 {
	return msgSendF64(a.id, selClearDepth)
}

// SetClearDepth sets the depth written when the load action is
// LoadActionClear.
func (a RenderPassDepthAttachmentDescriptor) SetClearDepth(depth float64) {
	a.id.Send(selSetClearDepth, depth)
}

// RenderPassStencilAttachmentDescriptor configures the stencil attachment
// of a render pass.
type RenderPassStencilAttachmentDescriptor struct {
	renderPassAttachment
}

func (a RenderPassStencilAttachmentDescriptor) ClearStencil() uint32 {
	return msgSendU32(a.id, selClearStencil)
}

// SetClearStencil sets the stencil value written when the load action is
// LoadActionClear.
func (a RenderPassStencilAttachmentDescriptor) SetClearStencil(value uint32) {
	a.id.Send(selSetClearStencil, value)
}
