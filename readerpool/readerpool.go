package readerpool

import (
	"compress/gzip"
	"io"

	"github.com/fishy/wrapreader"

	"github.com/fishy/objectpool"
)

// Gzip is a pool of reusable gzip readers.
type Gzip struct {
	pool *objectpool.Pool[gzip.Reader]
}

// NewGzip creates a new Gzip pool with the given capacity.
//
// The capacity is enforced:
// readers returned while the pool is already full are dropped and left
// to the garbage collector, so the pool never grows beyond capacity.
func NewGzip(capacity int) *Gzip {
	return &Gzip{
		pool: objectpool.NewWithOptions[gzip.Reader](
			objectpool.NewDefaultOptions[gzip.Reader](capacity).
				SetEnforceCapacity(true).
				Build(),
		),
	}
}

// Get returns an io.ReadCloser decompressing src.
//
// It reuses a pooled gzip reader when one is available,
// and creates a new one otherwise.
//
// It's the caller's responsibility to close the ReadCloser returned.
// Closing it finishes the gzip stream and returns the underlying
// reader to the pool.
// It does not close src.
func (g *Gzip) Get(src io.Reader) (io.ReadCloser, error) {
	zr, err := g.pool.Pop()
	if err != nil {
		if !objectpool.IsEmptyPoolError(err) {
			return nil, err
		}
		zr = new(gzip.Reader)
	}
	if err := zr.Reset(src); err != nil {
		// A failed Reset doesn't make the reader unusable,
		// so keep it around for the next payload.
		// Push can only fail with FullPoolError here,
		// and dropping the reader on a full pool is fine.
		g.pool.Push(zr)
		return nil, err
	}
	return wrapreader.Wrap(zr, putCloser{pool: g.pool, reader: zr}), nil
}

// Len returns the number of readers currently idle in the pool.
func (g *Gzip) Len() int {
	return g.pool.Count()
}

type putCloser struct {
	pool   *objectpool.Pool[gzip.Reader]
	reader *gzip.Reader
}

func (c putCloser) Close() error {
	err := c.pool.Push(c.reader)
	if objectpool.IsFullPoolError(err) {
		return nil
	}
	return err
}
