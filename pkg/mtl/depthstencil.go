//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selDepthCompareFunction         = objc.RegisterName("depthCompareFunction")
	selSetDepthCompareFunction      = objc.RegisterName("setDepthCompareFunction:")
	selIsDepthWriteEnabled          = objc.RegisterName("isDepthWriteEnabled")
	selSetDepthWriteEnabled         = objc.RegisterName("setDepthWriteEnabled:")
	selFrontFaceStencil             = objc.RegisterName("frontFaceStencil")
	selSetFrontFaceStencil          = objc.RegisterName("setFrontFaceStencil:")
	selBackFaceStencil              = objc.RegisterName("backFaceStencil")
	selSetBackFaceStencil           = objc.RegisterName("setBackFaceStencil:")
	selStencilCompareFunction       = objc.RegisterName("stencilCompareFunction")
	selSetStencilCompareFunction    = objc.RegisterName("setStencilCompareFunction:")
	selStencilFailureOperation      = objc.RegisterName("stencilFailureOperation")
	selSetStencilFailureOperation   = objc.RegisterName("setStencilFailureOperation:")
	selDepthFailureOperation        = objc.RegisterName("depthFailureOperation")
	selSetDepthFailureOperation     = objc.RegisterName("setDepthFailureOperation:")
	selDepthStencilPassOperation    = objc.RegisterName("depthStencilPassOperation")
	selSetDepthStencilPassOperation = objc.RegisterName("setDepthStencilPassOperation:")
	selReadMask                     = objc.RegisterName("readMask")
	selSetReadMask                  = objc.RegisterName("setReadMask:")
)

// DepthStencilDescriptor configures the depth and stencil tests. Compile
// it with Device.NewDepthStencilState.
type DepthStencilDescriptor struct {
	id objc.ID
}

// NewDepthStencilDescriptor creates a descriptor with the depth test
// disabled and both stencil faces passing unconditionally. The caller owns
// the result.
func NewDepthStencilDescriptor() DepthStencilDescriptor {
	return DepthStencilDescriptor{id: alloc("MTLDepthStencilDescriptor")}
}

// Raw returns the underlying pointer without transferring ownership.
func (d DepthStencilDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d DepthStencilDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d DepthStencilDescriptor) Release() { release(d.id) }

// Label returns the debug label baked into compiled states.
func (d DepthStencilDescriptor) Label() string { return stringValue(d.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (d DepthStencilDescriptor) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	d.id.Send(selSetLabel, ns.Raw())
}

func (d DepthStencilDescriptor) DepthCompareFunction() CompareFunction {
	return CompareFunction(d.id.Send(selDepthCompareFunction))
}

// SetDepthCompareFunction picks the comparison fragments must pass against
// the stored depth value.
func (d DepthStencilDescriptor) SetDepthCompareFunction(fn CompareFunction) {
	d.id.Send(selSetDepthCompareFunction, uint(fn))
}

func (d DepthStencilDescriptor) DepthWriteEnabled() bool {
	return msgSendB(d.id, selIsDepthWriteEnabled)
}

// SetDepthWriteEnabled controls whether passing fragments update the depth
// attachment.
func (d DepthStencilDescriptor) SetDepthWriteEnabled(enabled bool) {
	d.id.Send(selSetDepthWriteEnabled, enabled)
}

// FrontFaceStencil returns the stencil configuration applied to
// front-facing primitives. Borrowed; the descriptor vends one on demand.
func (d DepthStencilDescriptor) FrontFaceStencil() StencilDescriptor {
	return StencilDescriptor{id: d.id.Send(selFrontFaceStencil)}
}

// SetFrontFaceStencil replaces the front-face stencil configuration.
func (d DepthStencilDescriptor) SetFrontFaceStencil(s StencilDescriptor) {
	d.id.Send(selSetFrontFaceStencil, s.id)
}

// BackFaceStencil returns the stencil configuration applied to back-facing
// primitives. Borrowed.
func (d DepthStencilDescriptor) BackFaceStencil() StencilDescriptor {
	return StencilDescriptor{id: d.id.Send(selBackFaceStencil)}
}

// SetBackFaceStencil replaces the back-face stencil configuration.
func (d DepthStencilDescriptor) SetBackFaceStencil(s StencilDescriptor) {
	d.id.Send(selSetBackFaceStencil, s.id)
}

// StencilDescriptor configures the stencil test for one face orientation.
type StencilDescriptor struct {
	id objc.ID
}

// NewStencilDescriptor creates a standalone stencil configuration. The
// caller owns the result.
func NewStencilDescriptor() StencilDescriptor {
	return StencilDescriptor{id: alloc("MTLStencilDescriptor")}
}

// Raw returns the underlying pointer without transferring ownership.
func (s StencilDescriptor) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s StencilDescriptor) Retain() { retain(s.id) }

// Release gives up the caller's reference.
func (s StencilDescriptor) Release() { release(s.id) }

func (s StencilDescriptor) StencilCompareFunction() CompareFunction {
	return CompareFunction(s.id.Send(selStencilCompareFunction))
}
func (s StencilDescriptor) SetStencilCompareFunction(fn CompareFunction) {
	s.id.Send(selSetStencilCompareFunction, uint(fn))
}

// StencilFailureOperation runs when the stencil test fails.
func (s StencilDescriptor) StencilFailureOperation() StencilOperation {
	return StencilOperation(s.id.Send(selStencilFailureOperation))
}
func (s StencilDescriptor) SetStencilFailureOperation(op StencilOperation) {
	s.id.Send(selSetStencilFailureOperation, uint(op))
}

// DepthFailureOperation runs when the stencil test passes but the depth
// test fails.
func (s StencilDescriptor) DepthFailureOperation() StencilOperation {
	return StencilOperation(s.id.Send(selDepthFailureOperation))
}
func (s StencilDescriptor) SetDepthFailureOperation(op StencilOperation) {
	s.id.Send(selSetDepthFailureOperation, uint(op))
}

// DepthStencilPassOperation runs when both tests pass.
func (s StencilDescriptor) DepthStencilPassOperation() StencilOperation {
	return StencilOperation(s.id.Send(selDepthStencilPassOperation))
}
func (s StencilDescriptor) SetDepthStencilPassOperation(op StencilOperation) {
	s.id.Send(selSetDepthStencilPassOperation, uint(op))
}

func (s StencilDescriptor) ReadMask() uint32     { return msgSendU32(s.id, selReadMask) }
func (s StencilDescriptor) SetReadMask(m uint32) { s.id.Send(selSetReadMask, m) }

func (s StencilDescriptor) WriteMask() uint32     { return msgSendU32(s.id, selWriteMask) }
func (s StencilDescriptor) SetWriteMask(m uint32) { s.id.Send(selSetWriteMask, m) }

// DepthStencilState is a compiled, immutable depth and stencil
// configuration.
type DepthStencilState struct {
	id objc.ID
}

// DepthStencilStateFromRaw wraps a raw state pointer without touching its
// reference count. It reports false when raw is nil.
func DepthStencilStateFromRaw(raw objc.ID) (DepthStencilState, bool) {
	if raw == 0 {
		return DepthStencilState{}, false
	}
	return DepthStencilState{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (s DepthStencilState) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s DepthStencilState) Retain() { retain(s.id) }

// Release gives up the caller's reference.
func (s DepthStencilState) Release() { release(s.id) }

// Label returns the label the descriptor carried when the state was
// compiled.
func (s DepthStencilState) Label() string { return stringValue(s.id.Send(selLabel)) }

// Device returns the device that compiled this state. Borrowed.
func (s DepthStencilState) Device() Device { return Device{id: s.id.Send(selDevice)} }
