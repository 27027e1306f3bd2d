//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selMinFilter                = objc.RegisterName("minFilter")
	selSetMinFilter             = objc.RegisterName("setMinFilter:")
	selMagFilter                = objc.RegisterName("magFilter")
	selSetMagFilter             = objc.RegisterName("setMagFilter:")
	selMipFilter                = objc.RegisterName("mipFilter")
	selSetMipFilter             = objc.RegisterName("setMipFilter:")
	selMaxAnisotropy            = objc.RegisterName("maxAnisotropy")
	selSetMaxAnisotropy         = objc.RegisterName("setMaxAnisotropy:")
	selSAddressMode             = objc.RegisterName("sAddressMode")
	selSetSAddressMode          = objc.RegisterName("setSAddressMode:")
	selTAddressMode             = objc.RegisterName("tAddressMode")
	selSetTAddressMode          = objc.RegisterName("setTAddressMode:")
	selRAddressMode             = objc.RegisterName("rAddressMode")
	selSetRAddressMode          = objc.RegisterName("setRAddressMode:")
	selBorderColor              = objc.RegisterName("borderColor")
	selSetBorderColor           = objc.RegisterName("setBorderColor:")
	selNormalizedCoordinates    = objc.RegisterName("normalizedCoordinates")
	selSetNormalizedCoordinates = objc.RegisterName("setNormalizedCoordinates:")
	selLodMinClamp              = objc.RegisterName("lodMinClamp")
	selSetLodMinClamp           = objc.RegisterName("setLodMinClamp:")
	selLodMaxClamp              = objc.RegisterName("lodMaxClamp")
	selSetLodMaxClamp           = objc.RegisterName("setLodMaxClamp:")
	selCompareFunction          = objc.RegisterName("compareFunction")
	selSetCompareFunction       = objc.RegisterName("setCompareFunction:")
)

// SamplerDescriptor configures texture sampling. Bake it into an immutable
// SamplerState with Device.NewSamplerState.
type SamplerDescriptor struct {
	id objc.ID
}

// NewSamplerDescriptor creates a descriptor with Metal's defaults:
// nearest filtering, clamp-to-edge addressing, normalized coordinates.
// The caller owns the result.
func NewSamplerDescriptor() SamplerDescriptor {
	return SamplerDescriptor{id: alloc("MTLSamplerDescriptor")}
}

// SamplerDescriptorFromRaw wraps a raw descriptor pointer without touching
// its reference count. It reports false when raw is nil.
func SamplerDescriptorFromRaw(raw objc.ID) (SamplerDescriptor, bool) {
	if raw == 0 {
		return SamplerDescriptor{}, false
	}
	return SamplerDescriptor{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d SamplerDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d SamplerDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d SamplerDescriptor) Release() { release(d.id) }

// Label returns the debug label baked into created sampler states.
func (d SamplerDescriptor) Label() string { return stringValue(d.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (d SamplerDescriptor) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	d.id.Send(selSetLabel, ns.Raw())
}

func (d SamplerDescriptor) MinFilter() SamplerMinMagFilter {
	return SamplerMinMagFilter(d.id.Send(selMinFilter))
}
func (d SamplerDescriptor) SetMinFilter(f SamplerMinMagFilter) {
	d.id.Send(selSetMinFilter, uint(f))
}

func (d SamplerDescriptor) MagFilter() SamplerMinMagFilter {
	return SamplerMinMagFilter(d.id.Send(selMagFilter))
}
func (d SamplerDescriptor) SetMagFilter(f SamplerMinMagFilter) {
	d.id.Send(selSetMagFilter, uint(f))
}

func (d SamplerDescriptor) MipFilter() SamplerMipFilter {
	return SamplerMipFilter(d.id.Send(selMipFilter))
}
func (d SamplerDescriptor) SetMipFilter(f SamplerMipFilter) {
	d.id.Send(selSetMipFilter, uint(f))
}

// MaxAnisotropy is the number of anisotropic samples, 1 through 16.
func (d SamplerDescriptor) MaxAnisotropy() int { return int(d.id.Send(selMaxAnisotropy)) }
func (d SamplerDescriptor) SetMaxAnisotropy(n int) {
	d.id.Send(selSetMaxAnisotropy, n)
}

func (d SamplerDescriptor) SAddressMode() SamplerAddressMode {
	return SamplerAddressMode(d.id.Send(selSAddressMode))
}
func (d SamplerDescriptor) SetSAddressMode(m SamplerAddressMode) {
	d.id.Send(selSetSAddressMode, uint(m))
}

func (d SamplerDescriptor) TAddressMode() SamplerAddressMode {
	return SamplerAddressMode(d.id.Send(selTAddressMode))
}
func (d SamplerDescriptor) SetTAddressMode(m SamplerAddressMode) {
	d.id.Send(selSetTAddressMode, uint(m))
}

func (d SamplerDescriptor) RAddressMode() SamplerAddressMode {
	return SamplerAddressMode(d.id.Send(selRAddressMode))
}
func (d SamplerDescriptor) SetRAddressMode(m SamplerAddressMode) {
	d.id.Send(selSetRAddressMode, uint(m))
}

func (d SamplerDescriptor) BorderColor() SamplerBorderColor {
	return SamplerBorderColor(d.id.Send(selBorderColor))
}
func (d SamplerDescriptor) SetBorderColor(c SamplerBorderColor) {
	d.id.Send(selSetBorderColor, uint(c))
}

func (d SamplerDescriptor) NormalizedCoordinates() bool {
	return msgSendB(d.id, selNormalizedCoordinates)
}
func (d SamplerDescriptor) SetNormalizedCoordinates(normalized bool) {
	d.id.Send(selSetNormalizedCoordinates, normalized)
}

func (d SamplerDescriptor) LodMinClamp() float32 { return msgSendF32(d.id, selLodMinClamp) }
func (d SamplerDescriptor) SetLodMinClamp(v float32) {
	d.id.Send(selSetLodMinClamp, v)
}

func (d SamplerDescriptor) LodMaxClamp() float32 { return msgSendF32(d.id, selLodMaxClamp) }
func (d SamplerDescriptor) SetLodMaxClamp(v float32) {
	d.id.Send(selSetLodMaxClamp, v)
}

// CompareFunction configures comparison sampling for percentage-closer
// filtering.
func (d SamplerDescriptor) CompareFunction() CompareFunction {
	return CompareFunction(d.id.Send(selCompareFunction))
}
func (d SamplerDescriptor) SetCompareFunction(f CompareFunction) {
	d.id.Send(selSetCompareFunction, uint(f))
}

// SamplerState is an immutable, baked sampler configuration.
type SamplerState struct {
	id objc.ID
}

// SamplerStateFromRaw wraps a raw MTLSamplerState pointer without touching
// its reference count. It reports false when raw is nil.
func SamplerStateFromRaw(raw objc.ID) (SamplerState, bool) {
	if raw == 0 {
		return SamplerState{}, false
	}
	return SamplerState{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (s SamplerState) Raw() objc.ID { return s.id }

// Retain takes an additional reference to the underlying object.
func (s SamplerState) Retain() { retain(s.id) }

// Release gives up the caller's reference.
func (s SamplerState) Release() { release(s.id) }

// Label returns the label the descriptor carried when the state was baked.
func (s SamplerState) Label() string { return stringValue(s.id.Send(selLabel)) }

// Device returns the device that created this state. Borrowed.
func (s SamplerState) Device() Device { return Device{id: s.id.Send(selDevice)} }
