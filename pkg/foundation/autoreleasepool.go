//go:build darwin

package foundation

import (
	"runtime"

	"github.com/ebitengine/purego/objc"
)

var selDrain = objc.RegisterName("drain")

// AutoreleasePool wraps an NSAutoreleasePool.
//
// Methods documented as returning autoreleased objects need a pool in place
// on the calling thread or those objects leak. Goroutines do not get the
// implicit pool an Objective-C main thread has, so long-running work that
// touches such methods should lock its OS thread and bracket the work with
// NewAutoreleasePool and Drain.
type AutoreleasePool struct {
	id objc.ID
}

// NewAutoreleasePool pushes a fresh pool onto the calling thread's pool
// stack.
func NewAutoreleasePool() AutoreleasePool {
	ensureLoaded()
	pool := objc.ID(objc.GetClass("NSAutoreleasePool")).Send(selAlloc).Send(selInit)
	return AutoreleasePool{id: pool}
}

// Drain pops the pool and releases every object added to it since the pool
// was created. Drain consumes the pool itself; draining on a different
// thread than the one that created it corrupts the pool stack.
func (p AutoreleasePool) Drain() {
	p.id.Send(selDrain)
}

// WithAutoreleasePool runs fn with an autorelease pool in place and drains
// it afterwards. The goroutine is pinned to its OS thread for the duration
// so the pool is created and drained on the same thread.
func WithAutoreleasePool(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pool := NewAutoreleasePool()
	defer pool.Drain()
	fn()
}
