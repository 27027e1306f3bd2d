//go:build darwin

package mtl

import (
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/block"
)

var (
	selPresent             = objc.RegisterName("present")
	selPresentAtTime       = objc.RegisterName("presentAtTime:")
	selPresentedTime       = objc.RegisterName("presentedTime")
	selDrawableID          = objc.RegisterName("drawableID")
	selAddPresentedHandler = objc.RegisterName("addPresentedHandler:")
)

// Drawable is a displayable resource vended by a presentation layer.
// Creating drawables is the layer's job; wrap the pointer it hands out
// with DrawableFromRaw.
type Drawable struct {
	id objc.ID
}

// DrawableFromRaw wraps a raw drawable pointer without touching its
// reference count. It reports false when raw is nil.
func DrawableFromRaw(raw objc.ID) (Drawable, bool) {
	if raw == 0 {
		return Drawable{}, false
	}
	return Drawable{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (d Drawable) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d Drawable) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d Drawable) Release() { release(d.id) }

// Present displays the drawable as soon as possible. Prefer
// CommandBuffer.PresentDrawable so presentation waits for rendering.
func (d Drawable) Present() { d.id.Send(selPresent) }

// PresentAtTime displays the drawable at the given host time, in seconds.
func (d Drawable) PresentAtTime(t float64) { d.id.Send(selPresentAtTime, t) }

// PresentedTime is the host time the drawable appeared on screen, or zero
// if it has not been presented.
func (d Drawable) PresentedTime() float64 { return msgSendF64(d.id, selPresentedTime) }

// DrawableID is a monotonically increasing identifier within the
// drawable's layer.
func (d Drawable) DrawableID() uint64 { return uint64(d.id.Send(selDrawableID)) }

// AddPresentedHandler registers fn to run once the drawable is on screen.
// The Drawable passed to fn is borrowed for the duration of the call. Must
// be called before presenting.
func (d Drawable) AddPresentedHandler(fn func(Drawable)) {
	handler := block.Once1(func(raw uintptr) {
		fn(Drawable{id: objc.ID(raw)})
	})
	d.id.Send(selAddPresentedHandler, handler)
}
