package registry_test

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fishy/objectpool"
	"github.com/fishy/objectpool/registry"
)

type conn struct {
	pool string
}

func newFactory(calls *int64) registry.Factory[conn] {
	return func(name string) *objectpool.Pool[conn] {
		atomic.AddInt64(calls, 1)
		p := objectpool.New[conn](10)
		p.Push(&conn{pool: name})
		return p
	}
}

func TestSameNameSamePool(t *testing.T) {
	var calls int64
	r := registry.New(newFactory(&calls))

	p1 := r.Pool("db")
	p2 := r.Pool("db")
	if p1 != p2 {
		t.Error("lookups of the same name should return the same pool")
	}
	if calls != 1 {
		t.Errorf("factory expected to be called once, got %d", calls)
	}

	p3 := r.Pool("cache")
	if p3 == p1 {
		t.Error("different names should return different pools")
	}
	if calls != 2 {
		t.Errorf("factory expected to be called twice, got %d", calls)
	}
}

func TestNames(t *testing.T) {
	var calls int64
	r := registry.New(newFactory(&calls))
	if names := r.Names(); len(names) != 0 {
		t.Errorf("Names on empty registry expected none, got %v", names)
	}

	r.Pool("db")
	r.Pool("cache")
	names := r.Names()
	sort.Strings(names)
	expect := []string{"cache", "db"}
	if len(names) != len(expect) {
		t.Fatalf("Names expected %v, got %v", expect, names)
	}
	for i, name := range expect {
		if names[i] != name {
			t.Errorf("Names expected %v, got %v", expect, names)
			break
		}
	}
}

func TestConcurrentLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}

	var calls int64
	r := registry.New(newFactory(&calls))
	workers := 20

	var wg sync.WaitGroup
	wg.Add(workers)
	pools := make([]*objectpool.Pool[conn], workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			pools[i] = r.Pool("shared")
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf(
			"factory expected to be called once under concurrency, got %d",
			calls,
		)
	}
	for i := 1; i < workers; i++ {
		if pools[i] != pools[0] {
			t.Errorf("lookup #%d returned a different pool", i)
		}
	}
}

func TestClose(t *testing.T) {
	released := make(map[string]int)
	var lock sync.Mutex
	r := registry.New(func(name string) *objectpool.Pool[conn] {
		return objectpool.NewWithOptions[conn](
			objectpool.NewDefaultOptions[conn](10).
				SetReleaser(func(c *conn) error {
					lock.Lock()
					defer lock.Unlock()
					released[c.pool]++
					return nil
				}).
				Build(),
		)
	})

	r.Pool("db").Push(&conn{pool: "db"})
	r.Pool("db").Push(&conn{pool: "db"})
	r.Pool("cache").Push(&conn{pool: "cache"})

	if err := r.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
	if released["db"] != 2 {
		t.Errorf("db pool expected 2 releases, got %d", released["db"])
	}
	if released["cache"] != 1 {
		t.Errorf("cache pool expected 1 release, got %d", released["cache"])
	}
	if names := r.Names(); len(names) != 0 {
		t.Errorf("Names after Close expected none, got %v", names)
	}
}
