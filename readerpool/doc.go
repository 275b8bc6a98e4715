// Package readerpool provides pooled, reusable gzip readers.
//
// Allocating a gzip reader per payload is expensive on hot paths.
// Gzip keeps finished readers around and resets them onto the next
// payload instead.
//
// Borrowed readers are handed out as io.ReadCloser:
// closing one returns the underlying gzip reader to the pool.
package readerpool
