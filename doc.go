// Package objectpool provides a thread-safe pool of reusable objects.
//
// A Pool stores exclusively-owned object handles in last-in-first-out
// order: Pop removes and returns the most recently pushed handle, and
// Push puts a handle (back) on top.
//
// The Pop function does not block on an empty pool,
// and the Push function does not block on a full pool.
// Both report failures through returned errors instead.
package objectpool
