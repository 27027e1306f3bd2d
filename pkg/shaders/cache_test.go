package shaders

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(CacheOptions{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestKeyStability(t *testing.T) {
	src := []byte("kernel void f() {}")

	k1 := Key(src, "2.4", true)
	k2 := Key(src, "2.4", true)
	assert.Equal(t, k1, k2, "same inputs must produce the same key")
	assert.True(t, bytes.HasPrefix(k1, []byte(keyPrefix)))
}

func TestKeySensitivity(t *testing.T) {
	src := []byte("kernel void f() {}")
	base := Key(src, "2.4", true)

	assert.NotEqual(t, base, Key([]byte("kernel void g() {}"), "2.4", true), "source change")
	assert.NotEqual(t, base, Key(src, "3.1", true), "language version change")
	assert.NotEqual(t, base, Key(src, "2.4", false), "fast math change")

	// Length framing: moving a byte across the source/version boundary must
	// change the digest.
	assert.NotEqual(t, Key([]byte("ab"), "c", false), Key([]byte("a"), "bc", false))
}

func TestCacheHitMiss(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("kernel void f() {}"), "", false)

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	want := Result{Functions: []string{"f", "g"}}
	require.NoError(t, c.Put(key, want))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, got.OK())
}

func TestCacheStoresDiagnostics(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("kernel void broken("), "", false)

	want := Result{Diagnostics: "program_source:1:20: error: expected parameter declarator"}
	require.NoError(t, c.Put(key, want))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.OK())
	assert.Equal(t, want.Diagnostics, got.Diagnostics)
}

func TestCachePutReplaces(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("kernel void f() {}"), "", false)

	require.NoError(t, c.Put(key, Result{Diagnostics: "transient failure"}))
	require.NoError(t, c.Put(key, Result{Functions: []string{"f"}}))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.OK())
	assert.Equal(t, []string{"f"}, got.Functions)
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	key := Key([]byte("kernel void f() {}"), "2.4", false)

	c, err := Open(CacheOptions{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, c.Put(key, Result{Functions: []string{"f"}}))
	require.NoError(t, c.Close())

	c, err = Open(CacheOptions{Dir: dir})
	require.NoError(t, err)
	defer c.Close()

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"f"}, got.Functions)
}
