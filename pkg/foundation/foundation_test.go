//go:build darwin

package foundation

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego/objc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every wrapper is exactly one pointer wide. Anything else breaks the
// assumption that wrappers can stand in for raw object pointers.
func TestWrapperSizes(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))
	assert.Equal(t, ptr, unsafe.Sizeof(String{}))
	assert.Equal(t, ptr, unsafe.Sizeof(Array{}))
	assert.Equal(t, ptr, unsafe.Sizeof(URL{}))
	assert.Equal(t, ptr, unsafe.Sizeof(AutoreleasePool{}))
}

func TestRangeLayout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(uintptr(0))*2, unsafe.Sizeof(Range{}))
	assert.Equal(t, unsafe.Sizeof(uintptr(0)), unsafe.Offsetof(Range{}.Length))
}

func TestFromRawNil(t *testing.T) {
	if _, ok := StringFromRaw(0); ok {
		t.Error("StringFromRaw(0) must report false")
	}
	if _, ok := ArrayFromRaw(0); ok {
		t.Error("ArrayFromRaw(0) must report false")
	}
	if _, ok := URLFromRaw(0); ok {
		t.Error("URLFromRaw(0) must report false")
	}
	assert.Nil(t, WrapError(0))
}

func TestStringRoundTrip(t *testing.T) {
	for _, want := range []string{"", "hello", "日本語", "mixed ascii 日本"} {
		s := NewString(want)
		assert.Equal(t, want, s.String())
		s.Release()
	}
}

func TestStringLenVersusGoLen(t *testing.T) {
	// length counts UTF-16 code units, not bytes.
	s := NewString("日本語")
	defer s.Release()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 9, len(s.String()))
}

func TestZeroStringIsInert(t *testing.T) {
	var s String
	assert.Equal(t, "", s.String())
	assert.Equal(t, 0, s.Len())
}

func TestStringRetainRelease(t *testing.T) {
	s := NewString("refcount")
	s.Retain()
	s.Release()
	// Still usable: one reference remains.
	assert.Equal(t, "refcount", s.String())
	s.Release()
}

func TestArrayStrings(t *testing.T) {
	pool := NewAutoreleasePool()
	defer pool.Drain()

	a := NewString("alpha")
	defer a.Release()
	b := NewString("beta")
	defer b.Release()

	ids := []objc.ID{a.Raw(), b.Raw()}
	raw := objc.ID(objc.GetClass("NSArray")).Send(
		objc.RegisterName("arrayWithObjects:count:"),
		unsafe.Pointer(&ids[0]), len(ids),
	)
	arr, ok := ArrayFromRaw(raw)
	require.True(t, ok)

	assert.Equal(t, 2, arr.Count())
	assert.Equal(t, []string{"alpha", "beta"}, arr.Strings())
}

func TestWrapError(t *testing.T) {
	pool := NewAutoreleasePool()
	defer pool.Drain()

	domain := NewString("MetalbindTestDomain")
	defer domain.Release()

	raw := objc.ID(objc.GetClass("NSError")).Send(
		objc.RegisterName("errorWithDomain:code:userInfo:"),
		domain.Raw(), -42, objc.ID(0),
	)
	require.NotZero(t, raw)

	err := WrapError(raw)
	require.NotNil(t, err)
	assert.Equal(t, "MetalbindTestDomain", err.Domain)
	assert.Equal(t, -42, err.Code)
	assert.NotEmpty(t, err.Error())
}

func TestWithAutoreleasePool(t *testing.T) {
	ran := false
	WithAutoreleasePool(func() {
		// Autoreleased without an explicit retain; the pool drains it.
		s, ok := StringFromRaw(objc.ID(objc.GetClass("NSString")).Send(
			objc.RegisterName("stringWithUTF8String:"),
			unsafe.Pointer(&[]byte("pooled\x00")[0]),
		))
		require.True(t, ok)
		assert.Equal(t, "pooled", s.String())
		ran = true
	})
	assert.True(t, ran)
}

func TestFileURLPath(t *testing.T) {
	u := FileURLWithPath("/tmp/shaders.metallib")
	defer u.Release()
	assert.Equal(t, "/tmp/shaders.metallib", u.Path())
}
