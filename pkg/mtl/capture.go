//go:build darwin

package mtl

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/lunarbyte/metalbind/pkg/foundation"
)

var (
	selSharedCaptureManager       = objc.RegisterName("sharedCaptureManager")
	selSupportsDestination        = objc.RegisterName("supportsDestination:")
	selStartCaptureWithDescriptor = objc.RegisterName("startCaptureWithDescriptor:error:")
	selStopCapture                = objc.RegisterName("stopCapture")
	selIsCapturing                = objc.RegisterName("isCapturing")

	selCaptureObject    = objc.RegisterName("captureObject")
	selSetCaptureObject = objc.RegisterName("setCaptureObject:")
	selDestination      = objc.RegisterName("destination")
	selSetDestination   = objc.RegisterName("setDestination:")
	selOutputURL        = objc.RegisterName("outputURL")
	selSetOutputURL     = objc.RegisterName("setOutputURL:")
)

// CaptureDescriptor configures what a GPU capture records and where the
// recording goes.
type CaptureDescriptor struct {
	id objc.ID
}

// NewCaptureDescriptor creates an empty capture configuration. The caller
// owns the result and must set a capture object before starting.
func NewCaptureDescriptor() CaptureDescriptor {
	return CaptureDescriptor{id: alloc("MTLCaptureDescriptor")}
}

// Raw returns the underlying pointer without transferring ownership.
func (d CaptureDescriptor) Raw() objc.ID { return d.id }

// Retain takes an additional reference to the underlying object.
func (d CaptureDescriptor) Retain() { retain(d.id) }

// Release gives up the caller's reference.
func (d CaptureDescriptor) Release() { release(d.id) }

// CaptureObject returns the raw device or queue being captured.
func (d CaptureDescriptor) CaptureObject() objc.ID { return d.id.Send(selCaptureObject) }

// SetCaptureDevice records all queues of dev.
func (d CaptureDescriptor) SetCaptureDevice(dev Device) {
	d.id.Send(selSetCaptureObject, dev.id)
}

// SetCaptureCommandQueue records a single queue.
func (d CaptureDescriptor) SetCaptureCommandQueue(q CommandQueue) {
	d.id.Send(selSetCaptureObject, q.id)
}

func (d CaptureDescriptor) Destination() CaptureDestination {
	return CaptureDestination(d.id.Send(selDestination))
}

// SetDestination routes the capture to attached developer tools or to a
// trace document on disk.
func (d CaptureDescriptor) SetDestination(dest CaptureDestination) {
	d.id.Send(selSetDestination, int(dest))
}

// OutputURL returns the trace document location. Borrowed; reports false
// when none is set.
func (d CaptureDescriptor) OutputURL() (foundation.URL, bool) {
	return foundation.URLFromRaw(d.id.Send(selOutputURL))
}

// SetOutputURL sets where the .gputrace document is written when the
// destination is CaptureDestinationGPUTraceDocument.
func (d CaptureDescriptor) SetOutputURL(u foundation.URL) {
	d.id.Send(selSetOutputURL, u.Raw())
}

// CaptureManager starts and stops GPU command captures for the whole
// process.
type CaptureManager struct {
	id objc.ID
}

// SharedCaptureManager returns the process-wide capture manager. The
// singleton is never released.
func SharedCaptureManager() CaptureManager {
	frameworkMust()
	raw := objc.ID(objc.GetClass("MTLCaptureManager")).Send(selSharedCaptureManager)
	return CaptureManager{id: raw}
}

// Raw returns the underlying pointer without transferring ownership.
func (m CaptureManager) Raw() objc.ID { return m.id }

// SupportsDestination reports whether captures can be routed to dest in
// this environment. Trace documents require the right entitlement or
// environment variable.
func (m CaptureManager) SupportsDestination(dest CaptureDestination) bool {
	return msgSendB1(m.id, selSupportsDestination, uintptr(dest))
}

// StartCapture begins recording per the descriptor. It fails if a capture
// is already running or the destination is unsupported.
func (m CaptureManager) StartCapture(desc CaptureDescriptor) error {
	var nsErr objc.ID
	ok := msgSendB2(m.id, selStartCaptureWithDescriptor, uintptr(desc.id), unsafe.Pointer(&nsErr))
	if !ok {
		return errorOrFallback(nsErr, ErrCapture)
	}
	return nil
}

// StopCapture ends the running capture, if any.
func (m CaptureManager) StopCapture() { m.id.Send(selStopCapture) }

// IsCapturing reports whether a capture is in progress.
func (m CaptureManager) IsCapturing() bool { return msgSendB(m.id, selIsCapturing) }
