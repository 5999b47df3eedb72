// Package config provides process-wide configuration loaded from
// a templated YAML document. A template source (string or file) is
// rendered with explicit variables, parsed, and held by a Store
// that serves read-only lookups; every read returns a deep copy,
// so callers can never mutate the stored configuration.
//
// Initialization is one-shot: a store accepts exactly one
// successful Init per lifecycle and must be explicitly Reset
// before it can be initialized again. The package-level functions
// operate on a default store for applications that want ambient
// access; components preferring explicit wiring construct their
// own Store and Loader.
package config
