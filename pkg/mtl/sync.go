//go:build darwin

package mtl

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/block"
	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selSignaledValue         = objc.RegisterName("signaledValue")
	selSetSignaledValue      = objc.RegisterName("setSignaledValue:")
	selNotifyListener        = objc.RegisterName("notifyListener:atValue:block:")
	selInitWithDispatchQueue = objc.RegisterName("initWithDispatchQueue:")
)

// Fence tracks work completion between encoders within a single command
// queue.
type Fence struct {
	id objc.ID
}

// FenceFromRaw wraps a raw fence pointer without touching its reference
// count. It reports false when raw is nil.
func FenceFromRaw(raw objc.ID) (Fence, bool) {
	if raw == 0 {
		return Fence{}, false
	}
	return Fence{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (f Fence) Raw() objc.ID { return f.id }

// Retain takes an additional reference to the underlying object.
func (f Fence) Retain() { retain(f.id) }

// Release gives up the caller's reference.
func (f Fence) Release() { release(f.id) }

func (f Fence) Label() string { return stringValue(f.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (f Fence) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	f.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device the fence was created on. Borrowed.
func (f Fence) Device() Device { return Device{id: f.id.Send(selDevice)} }

// Event is a monotonically increasing 64-bit counter signaled and awaited
// across command buffers on one device.
type Event struct {
	id objc.ID
}

// EventFromRaw wraps a raw event pointer without touching its reference
// count. It reports false when raw is nil.
func EventFromRaw(raw objc.ID) (Event, bool) {
	if raw == 0 {
		return Event{}, false
	}
	return Event{id: raw}, true
}

// Raw returns the underlying pointer without transferring ownership.
func (e Event) Raw() objc.ID { return e.id }

// Retain takes an additional reference to the underlying object.
func (e Event) Retain() { retain(e.id) }

// Release gives up the caller's reference.
func (e Event) Release() { release(e.id) }

func (e Event) Label() string { return stringValue(e.id.Send(selLabel)) }

// SetLabel attaches a debug label shown by GPU tooling.
func (e Event) SetLabel(label string) {
	ns := foundation.NewString(label)
	defer ns.Release()
	e.id.Send(selSetLabel, ns.Raw())
}

// Device returns the device the event was created on. Borrowed.
func (e Event) Device() Device { return Device{id: e.id.Send(selDevice)} }

// SharedEvent is an event that can additionally be signaled from the CPU
// and observed through listeners. Pass its embedded Event to command
// buffer signal and wait calls.
type SharedEvent struct {
	Event
}

// SharedEventFromRaw wraps a raw shared event pointer without touching its
// reference count. It reports false when raw is nil.
func SharedEventFromRaw(raw objc.ID) (SharedEvent, bool) {
	if raw == 0 {
		return SharedEvent{}, false
	}
	return SharedEvent{Event{id: raw}}, true
}

// SignaledValue reads the event's current value.
func (e SharedEvent) SignaledValue() uint64 {
	return uint64(e.id.Send(selSignaledValue))
}

// SetSignaledValue signals the event from the CPU. Values must only ever
// increase.
func (e SharedEvent) SetSignaledValue(value uint64) {
	e.id.Send(selSetSignaledValue, value)
}

// NotifyListener invokes fn once on the listener's queue when the event
// reaches value. The SharedEvent passed to fn is borrowed for the duration
// of the call; Retain it to keep it.
func (e SharedEvent) NotifyListener(l SharedEventListener, value uint64, fn func(SharedEvent, uint64)) {
	handler := block.Once2(func(ev, val uintptr) {
		fn(SharedEvent{Event{id: objc.ID(ev)}}, uint64(val))
	})
	e.id.Send(selNotifyListener, l.id, value, handler)
}

// dispatch_queue_create and friends live in libSystem, which is loaded in
// every process.
var (
	dispatchOnce sync.Once
	dispatchErr  error

	dispatchQueueCreate func(label *byte, attr uintptr) uintptr
	dispatchRelease     func(object uintptr)
)

func ensureDispatch() error {
	dispatchOnce.Do(func() {
		lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			dispatchErr = fmt.Errorf("%w: %v", ErrNotAvailable, err)
			return
		}
		purego.RegisterLibFunc(&dispatchQueueCreate, lib, "dispatch_queue_create")
		purego.RegisterLibFunc(&dispatchRelease, lib, "dispatch_release")
	})
	return dispatchErr
}

// SharedEventListener dispatches shared event notifications on a private
// serial queue.
type SharedEventListener struct {
	id objc.ID
}

// NewSharedEventListener creates a listener backed by a dedicated serial
// dispatch queue. The caller owns the result.
func NewSharedEventListener() (SharedEventListener, error) {
	frameworkMust()
	if err := ensureDispatch(); err != nil {
		return SharedEventListener{}, err
	}
	label := []byte("com.lunarbyte.metalbind.events\x00")
	queue := dispatchQueueCreate(&label[0], 0)
	if queue == 0 {
		return SharedEventListener{}, ErrEventCreation
	}
	raw := objc.ID(objc.GetClass("MTLSharedEventListener")).
		Send(selAlloc).
		Send(selInitWithDispatchQueue, queue)
	// The listener retains its queue; drop the creation reference.
	dispatchRelease(queue)
	if raw == 0 {
		return SharedEventListener{}, ErrEventCreation
	}
	return SharedEventListener{id: raw}, nil
}

// Raw returns the underlying pointer without transferring ownership.
func (l SharedEventListener) Raw() objc.ID { return l.id }

// Retain takes an additional reference to the underlying object.
func (l SharedEventListener) Retain() { retain(l.id) }

// Release gives up the caller's reference.
func (l SharedEventListener) Release() { release(l.id) }
