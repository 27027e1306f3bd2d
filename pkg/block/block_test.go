//go:build darwin

package block

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literalOf fetches the pinned literal for a block that has not fired yet.
func literalOf(blk Block) *literal {
	mu.Lock()
	defer mu.Unlock()
	return pending[uintptr(blk)].lit
}

// invoke1Native calls a block's invoke pointer through the C ABI, the same
// way the Objective-C runtime fires a completion handler.
func invoke1Native(blk Block, arg0 uintptr) {
	var call func(blk, arg0 uintptr) uintptr
	purego.RegisterFunc(&call, literalOf(blk).invoke)
	call(uintptr(blk), arg0)
}

func invoke2Native(blk Block, arg0, arg1 uintptr) {
	var call func(blk, arg0, arg1 uintptr) uintptr
	purego.RegisterFunc(&call, literalOf(blk).invoke)
	call(uintptr(blk), arg0, arg1)
}

func TestLiteralLayout(t *testing.T) {
	// The block ABI fixes the layout of the literal. A drifted field breaks
	// every completion handler, so pin it down.
	assert.Equal(t, uintptr(32), unsafe.Sizeof(literal{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(literal{}.isa))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(literal{}.flags))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(literal{}.invoke))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(literal{}.descriptor))
}

func TestOnce1(t *testing.T) {
	var got uintptr
	blk := Once1(func(arg0 uintptr) { got = arg0 })

	lit := literalOf(blk)
	require.NotNil(t, lit)
	require.Equal(t, concreteGlobalBlock, lit.isa)
	require.Equal(t, int32(blockIsGlobal), lit.flags)
	require.NotZero(t, lit.invoke)

	invoke1Native(blk, 42)
	assert.Equal(t, uintptr(42), got)
}

func TestOnce2(t *testing.T) {
	var a, b uintptr
	blk := Once2(func(arg0, arg1 uintptr) { a, b = arg0, arg1 })

	invoke2Native(blk, 7, 9)
	assert.Equal(t, uintptr(7), a)
	assert.Equal(t, uintptr(9), b)
}

func TestOnceIsOneShot(t *testing.T) {
	blk := Once1(func(uintptr) {})
	invoke := literalOf(blk).invoke
	invoke1Native(blk, 0)

	var call func(blk, arg0 uintptr) uintptr
	purego.RegisterFunc(&call, invoke)

	defer func() {
		r := recover()
		require.NotNil(t, r, "second invocation must panic")
	}()
	call(uintptr(blk), 0)
}

func TestLive(t *testing.T) {
	before := Live()

	blk := Once1(func(uintptr) {})
	assert.Equal(t, before+1, Live())

	invoke1Native(blk, 0)
	assert.Equal(t, before, Live())
}

func TestConcurrentCreateAndInvoke(t *testing.T) {
	const n = 64

	var fired sync.WaitGroup
	fired.Add(n)

	blocks := make([]Block, n)
	for i := range blocks {
		blocks[i] = Once1(func(uintptr) { fired.Done() })
	}

	var wg sync.WaitGroup
	for _, blk := range blocks {
		wg.Add(1)
		go func(b Block) {
			defer wg.Done()
			invoke1Native(b, 1)
		}(blk)
	}
	wg.Wait()
	fired.Wait()
}
