//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selVertexFunction                  = objc.RegisterName("vertexFunction")
	selSetVertexFunction               = objc.RegisterName("setVertexFunction:")
	selFragmentFunction                = objc.RegisterName("fragmentFunction")
	selSetFragmentFunction             = objc.RegisterName("setFragmentFunction:")
	selVertexDescriptor                = objc.RegisterName("vertexDescriptor")
	selSetVertexDescriptor             = objc.RegisterName("setVertexDescriptor:")
	selColorAttachments                = objc.RegisterName("colorAttachments")
	selObjectAtIndexedSubscript        = objc.RegisterName("objectAtIndexedSubscript:")
	selDepthAttachmentPixelFormat      = objc.RegisterName("depthAttachmentPixelFormat")
	selSetDepthAttachmentPixelFormat   = objc.RegisterName("setDepthAttachmentPixelFormat:")
	selStencilAttachmentPixelFormat    = objc.RegisterName("stencilAttachmentPixelFormat")
	selSetStencilAttachmentPixelFormat = objc.RegisterName("setStencilAttachmentPixelFormat:")
	selRasterSampleCount               = objc.RegisterName("rasterSampleCount")
	selSetRasterSampleCount            = objc.RegisterName("setRasterSampleCount:")
	selIsAlphaToCoverageEnabled        = objc.RegisterName("isAlphaToCoverageEnabled")
	selSetAlphaToCoverageEnabled       = objc.RegisterName("setAlphaToCoverageEnabled:")
	selIsAlphaToOneEnabled             = objc.RegisterName("isAlphaToOneEnabled")
	selSetAlphaToOneEnabled            = objc.RegisterName("setAlphaToOneEnabled:")
	selIsRasterizationEnabled          = objc.RegisterName("isRasterizationEnabled")
	selSetRasterizationEnabled         = objc.RegisterName("setRasterizationEnabled:")
	selReset                           = objc.RegisterName("reset")

	selIsBlendingEnabled              = objc.RegisterName("isBlendingEnabled")
	selSetBlendingEnabled             = objc.RegisterName("setBlendingEnabled:")
	selSourceRGBBlendFactor           = objc.RegisterName("sourceRGBBlendFactor")
	selSetSourceRGBBlendFactor        = objc.RegisterName("setSourceRGBBlendFactor:")
	selDestinationRGBBlendFactor      = objc.RegisterName("destinationRGBBlendFactor")
	selSetDestinationRGBBlendFactor   = objc.RegisterName("setDestinationRGBBlendFactor:")
	selRGBBlendOperation              = objc.RegisterName("rgbBlendOperation")
	selSetRGBBlendOperation           = objc.RegisterName("setRgbBlendOperation:")
	selSourceAlphaBlendFactor         = objc.RegisterName("sourceAlphaBlendFactor")
	selSetSourceAlphaBlendFactor      = objc.RegisterName("setSourceAlphaBlendFactor:")
	selDestinationAlphaBlendFactor    = objc.RegisterName("destinationAlphaBlendFactor")
	selSetDestinationAlphaBlendFactor = objc.RegisterName("setDestinationAlphaBlendFactor:")
	selAlphaBlendOperation            = objc.RegisterName("alphaBlendOperation")
	selSetAlphaBlendOperation         = objc.RegisterName("setAlphaBlendOperation:")
	selWriteMask                      = objc.RegisterName("writeMask")
	selSetWriteMask                   = objc.RegisterName("setWriteMask:")

	selMaxTotalThreadsPerThreadgroup = objc.RegisterName("maxTotalThreadsPerThreadgroup")
	selThreadExecutionWidth          = objc.RegisterName("threadExecutionWidth")
	selStaticThreadgroupMemoryLength = objc.RegisterName("staticThreadgroupMemoryLength")
)

// RenderPipelineDescriptor configures the programmable and fixed-function
// stages of a render pipeline. Compile it with
// Device.NewRenderPipelineState.
type RenderPipelineDescriptor struct {
	id objc.ID
}

// NewRenderPipelineDescriptor creates an empty descriptor. The caller owns
// the result and must set at least a vertex function before compiling.
func NewRenderPipelineDescriptor() RenderPipelineDescriptor {
	return RenderPipelineDescriptor{id: alloc("MTLRenderPipelineDescriptor")}
}

// RenderPipelineDescriptorFromRaw wraps a raw descriptor pointer without
// touching its reference count. It reports false when raw is nil.
func RenderPipelineDescriptorFromRaw(raw objc.ID) (RenderPipelineDescriptor, bool) {
	if raw == 0 {
		return RenderPipelineDescriptor{}, false
	}
	return RenderPipelineDescriptor{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d RenderPipelineDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d RenderPipelineDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d RenderPipelineDescriptor) Release() { release(d.id) }

// Label returns the debug label baked into compiled pipeline states.
func (d RenderPipelineDescriptor) Label() string { return stringValue(d.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (d RenderPipelineDescriptor) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	d.id.Send(selSetLabel, ns.Raw())
}

// VertexFunction returns the bound vertex function. Borrowed; reports
// false when none is set.
func (d RenderPipelineDescriptor) VertexFunction() (Function, bool) {
	raw := d.id.Send(selVertexFunction)
	if raw == 0 {
		return Function{}, false
	}
	return Function{id: raw}, true
}

// SetVertexFunction binds the vertex stage entry point.
func (d RenderPipelineDescriptor) SetVertexFunction(fn Function) {
	d.id.Send(selSetVertexFunction, fn.id)
}

// FragmentFunction returns the bound fragment function. Borrowed; reports
// false when none is set.
func (d RenderPipelineDescriptor) FragmentFunction() (Function, bool) {
	raw := d.id.Send(selFragmentFunction)
	if raw == 0 {
		return Function{}, false
	}
	return Function{id: raw}, true
}

// SetFragmentFunction binds the fragment stage entry point. Optional for
// depth-only pipelines.
func (d RenderPipelineDescriptor) SetFragmentFunction(fn Function) {
	d.id.Send(selSetFragmentFunction, fn.id)
}

// VertexDescriptor returns the vertex fetch layout. Borrowed; reports
// false when none is set.
func (d RenderPipelineDescriptor) VertexDescriptor() (VertexDescriptor, bool) {
	raw := d.id.Send(selVertexDescriptor)
	if raw == 0 {
		return VertexDescriptor{}, false
	}
	return VertexDescriptor{id: raw}, true
}

// SetVertexDescriptor declares the vertex fetch layout for pipelines using
// per-attribute fetching.
func (d RenderPipelineDescriptor) SetVertexDescriptor(vd VertexDescriptor) {
	d.id.Send(selSetVertexDescriptor, vd.id)
}

// ColorAttachments accesses the per-attachment pipeline configuration.
// Borrowed.
func (d RenderPipelineDescriptor) ColorAttachments() RenderPipelineColorAttachmentDescriptorArray {
	return RenderPipelineColorAttachmentDescriptorArray{id: d.id.Send(selColorAttachments)}
}

func (d RenderPipelineDescriptor) DepthAttachmentPixelFormat() PixelFormat {
	return PixelFormat(d.id.Send(selDepthAttachmentPixelFormat))
}

// SetDepthAttachmentPixelFormat must match the render pass depth texture.
func (d RenderPipelineDescriptor) SetDepthAttachmentPixelFormat(pf PixelFormat) {
	d.id.Send(selSetDepthAttachmentPixelFormat, uint(pf))
}

func (d RenderPipelineDescriptor) StencilAttachmentPixelFormat() PixelFormat {
	return PixelFormat(d.id.Send(selStencilAttachmentPixelFormat))
}

// SetStencilAttachmentPixelFormat must match the render pass stencil
// texture.
func (d RenderPipelineDescriptor) SetStencilAttachmentPixelFormat(pf PixelFormat) {
	d.id.Send(selSetStencilAttachmentPixelFormat, uint(pf))
}

func (d RenderPipelineDescriptor) RasterSampleCount() int {
	return int(d.id.Send(selRasterSampleCount))
}

// SetRasterSampleCount enables multisampling at the given sample count.
func (d RenderPipelineDescriptor) SetRasterSampleCount(n int) {
	d.id.Send(selSetRasterSampleCount, n)
}

func (d RenderPipelineDescriptor) AlphaToCoverageEnabled() bool {
	return msgSendB(d.id, selIsAlphaToCoverageEnabled)
}
func (d RenderPipelineDescriptor) SetAlphaToCoverageEnabled(enabled bool) {
	d.id.Send(selSetAlphaToCoverageEnabled, enabled)
}

func (d RenderPipelineDescriptor) AlphaToOneEnabled() bool {
	return msgSendB(d.id, selIsAlphaToOneEnabled)
}
func (d RenderPipelineDescriptor) SetAlphaToOneEnabled(enabled bool) {
	d.id.Send(selSetAlphaToOneEnabled, enabled)
}

func (d RenderPipelineDescriptor) RasterizationEnabled() bool {
	return msgSendB(d.id, selIsRasterizationEnabled)
}

// SetRasterizationEnabled(false) runs only the vertex stage, for
// transform feedback style pipelines.
func (d RenderPipelineDescriptor) SetRasterizationEnabled(enabled bool) {
	d.id.Send(selSetRasterizationEnabled, enabled)
}

// Reset restores every field to its default.
func (d RenderPipelineDescriptor) Reset() { d.id.Send(selReset) }

// RenderPipelineColorAttachmentDescriptorArray indexes the color
// attachment configurations of a pipeline descriptor.
type RenderPipelineColorAttachmentDescriptorArray struct {
	id objc.ID
}

// At returns the attachment configuration for color attachment index i.
// Borrowed from the descriptor.
func (a RenderPipelineColorAttachmentDescriptorArray) At(i int) RenderPipelineColorAttachmentDescriptor {
	return RenderPipelineColorAttachmentDescriptor{id: a.id.Send(selObjectAtIndexedSubscript, i)}
}

// RenderPipelineColorAttachmentDescriptor configures blending and the
// pixel format of one color attachment.
type RenderPipelineColorAttachmentDescriptor struct {
	id objc.ID
}

func (d RenderPipelineColorAttachmentDescriptor) PixelFormat() PixelFormat {
	return PixelFormat(d.id.Send(selPixelFormat))
}

// SetPixelFormat must match the texture attached at the same index in the
// render pass.
func (d RenderPipelineColorAttachmentDescriptor) SetPixelFormat(pf PixelFormat) {
	d.id.Send(selSetPixelFormat, uint(pf))
}

func (d RenderPipelineColorAttachmentDescriptor) BlendingEnabled() bool {
	return msgSendB(d.id, selIsBlendingEnabled)
}
func (d RenderPipelineColorAttachmentDescriptor) SetBlendingEnabled(enabled bool) {
	d.id.Send(selSetBlendingEnabled, enabled)
}

func (d RenderPipelineColorAttachmentDescriptor) SourceRGBBlendFactor() BlendFactor {
	return BlendFactor(d.id.Send(selSourceRGBBlendFactor))
}
func (d RenderPipelineColorAttachmentDescriptor) SetSourceRGBBlendFactor(f BlendFactor) {
	d.id.Send(selSetSourceRGBBlendFactor, uint(f))
}

func (d RenderPipelineColorAttachmentDescriptor) DestinationRGBBlendFactor() BlendFactor {
	return BlendFactor(d.id.Send(selDestinationRGBBlendFactor))
}
func (d RenderPipelineColorAttachmentDescriptor) SetDestinationRGBBlendFactor(f BlendFactor) {
	d.id.Send(selSetDestinationRGBBlendFactor, uint(f))
}

func (d RenderPipelineColorAttachmentDescriptor) RGBBlendOperation() BlendOperation {
	return BlendOperation(d.id.Send(selRGBBlendOperation))
}
func (d RenderPipelineColorAttachmentDescriptor) SetRGBBlendOperation(op BlendOperation) {
	d.id.Send(selSetRGBBlendOperation, uint(op))
}

func (d RenderPipelineColorAttachmentDescriptor) SourceAlphaBlendFactor() BlendFactor {
	return BlendFactor(d.id.Send(selSourceAlphaBlendFactor))
}
func (d RenderPipelineColorAttachmentDescriptor) SetSourceAlphaBlendFactor(f BlendFactor) {
	d.id.Send(selSetSourceAlphaBlendFactor, uint(f))
}

func (d RenderPipelineColorAttachmentDescriptor) DestinationAlphaBlendFactor() BlendFactor {
	return BlendFactor(d.id.Send(selDestinationAlphaBlendFactor))
}
func (d RenderPipelineColorAttachmentDescriptor) SetDestinationAlphaBlendFactor(f BlendFactor) {
	d.id.Send(selSetDestinationAlphaBlendFactor, uint(f))
}

func (d RenderPipelineColorAttachmentDescriptor) AlphaBlendOperation() BlendOperation {
	return BlendOperation(d.id.Send(selAlphaBlendOperation))
}
func (d RenderPipelineColorAttachmentDescriptor) SetAlphaBlendOperation(op BlendOperation) {
	d.id.Send(selSetAlphaBlendOperation, uint(op))
}

func (d RenderPipelineColorAttachmentDescriptor) WriteMask() ColorWriteMask {
	return ColorWriteMask(d.id.Send(selWriteMask))
}

// SetWriteMask limits which channels draws may write.
func (d RenderPipelineColorAttachmentDescriptor) SetWriteMask(mask ColorWriteMask) {
	d.id.Send(selSetWriteMask, uint(mask))
}

// RenderPipelineState is a compiled, immutable render pipeline.
type RenderPipelineState struct {
	id objc.ID
}

// RenderPipelineStateFromRaw wraps a raw pipeline state pointer without
// touching its reference count. It reports false when raw is nil.
func RenderPipelineStateFromRaw(raw objc.ID) (RenderPipelineState, bool) {
	if raw == 0 {
		return RenderPipelineState{}, false
	}
	return RenderPipelineState{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (s RenderPipelineState) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s RenderPipelineState) Retain() { retain(s.id) }

// Release gives up the caller's reference.
func (s RenderPipelineState) Release() { release(s.id) }

// Label returns the label the descriptor carried when the pipeline was
// compiled.
func (s RenderPipelineState) Label() string { return stringValue(s.id.Send(selLabel)) }

// Device returns the device that compiled this pipeline. Borrowed.
func (s RenderPipelineState) Device() Device { return Device{id: s.id.Send(selDevice)} }
