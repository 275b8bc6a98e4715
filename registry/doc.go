// Package registry provides a thread-safe registry of named object
// pools.
//
// Pools are created lazily on first use.
// A row lock guarantees that the factory function runs at most once per
// name, even when multiple goroutines ask for the same name at the same
// time.
package registry
