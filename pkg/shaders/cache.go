package shaders

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/blake2b"
)

// keyPrefix versions the cache layout. Bumping it orphans old entries
// instead of misreading them.
const keyPrefix = "compile/v1/"

// Result is the cached outcome of one shader compile.
type Result struct {
	// Functions lists the entry points of the compiled library, in library
	// order. Empty when the compile failed.
	Functions []string `json:"functions,omitempty"`

	// Diagnostics carries the compiler error text for failed compiles.
	Diagnostics string `json:"diagnostics,omitempty"`
}

// OK reports whether the cached compile succeeded.
func (r Result) OK() bool { return r.Diagnostics == "" }

// Key digests a shader source and its compile options into a cache key.
// Fields are length-framed so no two distinct inputs collide by
// concatenation.
func Key(source []byte, languageVersion string, fastMath bool) []byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only possible with an oversized key argument
	}
	var frame [8]byte
	binary.LittleEndian.PutUint64(frame[:], uint64(len(source)))
	h.Write(frame[:])
	h.Write(source)
	binary.LittleEndian.PutUint64(frame[:], uint64(len(languageVersion)))
	h.Write(frame[:])
	h.Write([]byte(languageVersion))
	if fastMath {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)

	key := make([]byte, 0, len(keyPrefix)+len(sum))
	key = append(key, keyPrefix...)
	key = append(key, sum...)
	return key
}

// CacheOptions configures Open.
type CacheOptions struct {
	// Dir is the cache directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the cache in RAM, for tests.
	InMemory bool
}

// Cache is a persistent shader compile cache backed by BadgerDB.
//
// Safe for concurrent use from multiple goroutines.
type Cache struct {
	db *badger.DB
}

// Open opens or creates a compile cache.
func Open(opts CacheOptions) (*Cache, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	// A compile cache holds a handful of small records; keep Badger's
	// footprint far below its server-grade defaults.
	badgerOpts = badgerOpts.
		WithMemTableSize(8 << 20).
		WithValueLogFileSize(32 << 20).
		WithNumMemtables(1).
		WithBlockCacheSize(8 << 20).
		WithIndexCacheSize(4 << 20)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open compile cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close flushes and closes the cache.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get looks up a cached compile result. The second return value reports
// whether the key was present.
func (c *Cache) Get(key []byte) (Result, bool, error) {
	var res Result
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("compile cache get: %w", err)
	}
	return res, true, nil
}

// Put stores a compile result under key, replacing any previous entry.
func (c *Cache) Put(key []byte, res Result) error {
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("compile cache encode: %w", err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return fmt.Errorf("compile cache put: %w", err)
	}
	return nil
}
