//go:build darwin

// Package block builds Objective-C block objects around Go functions.
//
// Several Metal and Foundation methods take a completion handler in the form
// of an Objective-C block. A block is a C structure whose first field points
// to a block class and whose invoke field points to the function the runtime
// calls when the block fires. This package assembles such structures at
// runtime so that pure Go callbacks can be handed to native APIs without CGO.
//
// Blocks created here are global blocks (the runtime never copies or frees
// them) and are strictly one-shot: the native side must invoke each block
// exactly once. The backing Go function is dropped after the first
// invocation, and a second invocation panics. This matches how completion
// handlers behave in practice; handlers that fire repeatedly need a
// different shape and are deliberately not supported.
//
// Platform support is limited to 64-bit Darwin. Callbacks are dispatched
// through a fixed set of shared trampolines, so the number of live blocks is
// bounded only by memory, not by callback slots.
package block

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Block flag bits, from the Clang blocks ABI.
const (
	blockIsGlobal = 1 << 28
)

// descriptor mirrors struct Block_descriptor_1.
type descriptor struct {
	reserved uintptr
	size     uintptr
}

// literal mirrors struct Block_literal_1 for a block with no captured
// variables. All state lives in the registry keyed by the literal's address.
type literal struct {
	isa        uintptr
	flags      int32
	reserved   int32
	invoke     uintptr
	descriptor *descriptor
}

// Block is a pointer to a native block object. Pass it wherever a method
// expects a block argument.
type Block uintptr

var (
	// concreteGlobalBlock is the address of _NSConcreteGlobalBlock, the
	// class used for blocks with no captured state.
	concreteGlobalBlock uintptr

	// One trampoline per supported arity, shared by every block. The
	// callback pool behind purego.NewCallback is small and never reclaimed,
	// so blocks must not mint their own.
	invoke1 uintptr
	invoke2 uintptr

	blockDescriptor = descriptor{size: unsafe.Sizeof(literal{})}
)

type handler struct {
	arity int
	fn    func(arg0, arg1 uintptr)

	// lit pins the literal so the garbage collector cannot reclaim it while
	// the native side still holds the pointer.
	lit *literal
}

var (
	mu      sync.Mutex
	pending = make(map[uintptr]handler)
)

func init() {
	lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		panic(fmt.Sprintf("block: load libSystem: %v", err))
	}
	concreteGlobalBlock, err = purego.Dlsym(lib, "_NSConcreteGlobalBlock")
	if err != nil {
		panic(fmt.Sprintf("block: resolve _NSConcreteGlobalBlock: %v", err))
	}

	invoke1 = purego.NewCallback(func(blk, arg0 uintptr) uintptr {
		consume(blk, 1).fn(arg0, 0)
		return 0
	})
	invoke2 = purego.NewCallback(func(blk, arg0, arg1 uintptr) uintptr {
		consume(blk, 2).fn(arg0, arg1)
		return 0
	})
}

// Once1 returns a one-shot block taking a single pointer-sized argument.
// The native runtime must invoke it exactly once; fn runs on whatever thread
// the runtime chooses.
func Once1(fn func(arg0 uintptr)) Block {
	return register(1, func(arg0, _ uintptr) { fn(arg0) })
}

// Once2 returns a one-shot block taking two pointer-sized arguments.
func Once2(fn func(arg0, arg1 uintptr)) Block {
	return register(2, func(arg0, arg1 uintptr) { fn(arg0, arg1) })
}

func register(arity int, fn func(arg0, arg1 uintptr)) Block {
	lit := &literal{
		isa:        concreteGlobalBlock,
		flags:      blockIsGlobal,
		descriptor: &blockDescriptor,
	}
	switch arity {
	case 1:
		lit.invoke = invoke1
	case 2:
		lit.invoke = invoke2
	}
	addr := uintptr(unsafe.Pointer(lit))

	mu.Lock()
	pending[addr] = handler{arity: arity, fn: fn, lit: lit}
	mu.Unlock()

	return Block(addr)
}

func consume(blk uintptr, arity int) handler {
	mu.Lock()
	h, ok := pending[blk]
	if ok {
		delete(pending, blk)
	}
	mu.Unlock()

	if !ok {
		panic("block: block invoked twice or not created by this package")
	}
	if h.arity != arity {
		panic(fmt.Sprintf("block: block created with arity %d invoked with arity %d", h.arity, arity))
	}
	return h
}

// Live reports how many blocks have been created but not yet invoked.
// A block handed to a native API that never fires stays live forever; this
// count makes such leaks visible in tests.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(pending)
}
