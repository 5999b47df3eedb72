package config

import (
	"errors"
	"fmt"
	"sync"
)

// Store holds the parsed configuration mapping and serves
// lookups. A nil items map is the uninitialized state; a store
// that completed initialization always holds a non-nil map, so
// an empty configuration is still "initialized".
//
// SetItems and Reset publish under the write lock and lookups
// read under the read lock: readers never observe a partially
// initialized mapping, and concurrent lookups run in parallel.
type Store struct {
	mu    sync.RWMutex
	items map[string]interface{}
}

// NewStore returns an uninitialized store.
func NewStore() *Store {
	return &Store{}
}

// SetItems publishes items as the configuration in a single
// step. It fails with ErrAlreadyInitialized if the store
// already holds a configuration; it never merges or partially
// replaces. A nil map is stored as an empty configuration.
func (st *Store) SetItems(
	items map[string]interface{},
) error {
	const errCtx = "setting config items"

	if items == nil {
		items = map[string]interface{}{}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.items != nil {
		return fmt.Errorf(
			"%s: %w", errCtx, ErrAlreadyInitialized,
		)
	}

	st.items = items

	return nil
}

// Get returns a deep copy of the value under the given key
// path. Each key is looked up as an entry of the mapping
// reached by the previous keys; an absent key fails with
// ErrKeyNotFound, as does descending into any value that is
// not a mapping. In particular a string value is never
// traversed, so a key appearing as a substring of a string
// value does not match. No keys returns a deep copy of the
// whole configuration. Fails with ErrNotInitialized before the
// first successful initialization.
func (st *Store) Get(
	keys ...string,
) (interface{}, error) {
	const errCtx = "getting config value"

	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.items == nil {
		return nil, fmt.Errorf(
			"%s: %w", errCtx, ErrNotInitialized,
		)
	}

	var value interface{} = st.items

	for _, key := range keys {
		mp, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf(
				"%s: %w: %s",
				errCtx, ErrKeyNotFound, key,
			)
		}

		value, ok = mp[key]
		if !ok {
			return nil, fmt.Errorf(
				"%s: %w: %s",
				errCtx, ErrKeyNotFound, key,
			)
		}
	}

	return deepCopy(value), nil
}

// HasKey reports whether the given key path resolves to a
// value. A missing key is false rather than an error; calling
// HasKey before initialization still fails with
// ErrNotInitialized.
func (st *Store) HasKey(
	keys ...string,
) (bool, error) {
	_, err := st.Get(keys...)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Reset unconditionally discards the configuration and returns
// the store to the uninitialized state so it can be
// initialized again. Intended for test teardown between
// initialization cycles, not for production reloading.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.items = nil
}

// initialized reports whether the store holds a configuration.
func (st *Store) initialized() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.items != nil
}
