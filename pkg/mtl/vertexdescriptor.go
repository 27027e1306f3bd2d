//go:build darwin

package mtl

import "github.com/ebitengine/purego/objc"

var (
	selAttributes      = objc.RegisterName("attributes")
	selLayouts         = objc.RegisterName("layouts")
	selFormat          = objc.RegisterName("format")
	selSetFormat       = objc.RegisterName("setFormat:")
	selAttributeOffset = objc.RegisterName("offset")
	selSetOffset       = objc.RegisterName("setOffset:")
	selBufferIndex     = objc.RegisterName("bufferIndex")
	selSetBufferIndex  = objc.RegisterName("setBufferIndex:")
	selStride          = objc.RegisterName("stride")
	selSetStride       = objc.RegisterName("setStride:")
	selStepFunction    = objc.RegisterName("stepFunction")
	selSetStepFunction = objc.RegisterName("setStepFunction:")
	selStepRate        = objc.RegisterName("stepRate")
	selSetStepRate     = objc.RegisterName("setStepRate:")
)

// VertexDescriptor maps vertex buffer bytes to the attributes a vertex
// function declares with [[stage_in]].
type VertexDescriptor struct {
	id objc.ID
}

// NewVertexDescriptor creates an empty layout description. The caller owns
// the result.
func NewVertexDescriptor() VertexDescriptor {
	frameworkMust()
	raw := objc.ID(objc.GetClass("MTLVertexDescriptor")).Send(selVertexDescriptor)
	// Convenience constructors hand out autoreleased objects.
	retain(raw)
	return VertexDescriptor{id: raw}
}

// Raw returns the underlying pointer without transferring ownership.
func (d VertexDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d VertexDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d VertexDescriptor) Release() { release(d.id) }

// Attributes indexes the per-attribute format descriptions. Borrowed.
func (d VertexDescriptor) Attributes() VertexAttributeDescriptorArray {
	return VertexAttributeDescriptorArray{id: d.id.Send(selAttributes)}
}

// Layouts indexes the per-buffer stride descriptions. Borrowed.
func (d VertexDescriptor) Layouts() VertexBufferLayoutDescriptorArray {
	return VertexBufferLayoutDescriptorArray{id: d.id.Send(selLayouts)}
}

// Reset restores every attribute and layout to its default.
func (d VertexDescriptor) Reset() { d.id.Send(selReset) }

// VertexAttributeDescriptorArray indexes attribute descriptions by shader
// attribute index.
type VertexAttributeDescriptorArray struct {
	id objc.ID
}

// At returns the description for attribute index i. Borrowed from the
// descriptor.
func (a VertexAttributeDescriptorArray) At(i int) VertexAttributeDescriptor {
	return VertexAttributeDescriptor{id: a.id.Send(selObjectAtIndexedSubscript, i)}
}

// VertexAttributeDescriptor describes the format and position of one
// vertex attribute within its buffer.
type VertexAttributeDescriptor struct {
	id objc.ID
}

func (d VertexAttributeDescriptor) Format() VertexFormat {
	return VertexFormat(d.id.Send(selFormat))
}
func (d VertexAttributeDescriptor) SetFormat(f VertexFormat) {
	d.id.Send(selSetFormat, uint(f))
}

// Offset is the attribute's byte offset from the start of each vertex
// entry.
func (d VertexAttributeDescriptor) Offset() int     { return int(d.id.Send(selAttributeOffset)) }
func (d VertexAttributeDescriptor) SetOffset(o int) { d.id.Send(selSetOffset, o) }

// BufferIndex selects which vertex buffer binding the attribute reads
// from.
func (d VertexAttributeDescriptor) BufferIndex() int     { return int(d.id.Send(selBufferIndex)) }
func (d VertexAttributeDescriptor) SetBufferIndex(i int) { d.id.Send(selSetBufferIndex, i) }

// VertexBufferLayoutDescriptorArray indexes buffer layouts by vertex
// buffer binding index.
type VertexBufferLayoutDescriptorArray struct {
	id objc.ID
}

// At returns the layout for buffer binding index i. Borrowed from the
// descriptor.
func (a VertexBufferLayoutDescriptorArray) At(i int) VertexBufferLayoutDescriptor {
	return VertexBufferLayoutDescriptor{id: a.id.Send(selObjectAtIndexedSubscript, i)}
}

// VertexBufferLayoutDescriptor describes how vertex entries are spaced
// within one vertex buffer.
type VertexBufferLayoutDescriptor struct {
	id objc.ID
}

// Stride is the byte distance between consecutive entries.
func (d VertexBufferLayoutDescriptor) Stride() int     { return int(d.id.Send(selStride)) }
func (d VertexBufferLayoutDescriptor) SetStride(s int) { d.id.Send(selSetStride, s) }

func (d VertexBufferLayoutDescriptor) StepFunction() VertexStepFunction {
	return VertexStepFunction(d.id.Send(selStepFunction))
}

// SetStepFunction chooses whether entries advance per vertex, per
// instance, or not at all.
func (d VertexBufferLayoutDescriptor) SetStepFunction(fn VertexStepFunction) {
	d.id.Send(selSetStepFunction, uint(fn))
}

// StepRate is the number of instances that share one entry when stepping
// per instance.
func (d VertexBufferLayoutDescriptor) StepRate() int     { return int(d.id.Send(selStepRate)) }
func (d VertexBufferLayoutDescriptor) SetStepRate(r int) { d.id.Send(selSetStepRate, r) }
