package objectpool

// Default options values.
const (
	DefaultEnforceCapacity = false
)

// Releaser defines a type of function used by Close to release an
// object still owned by the pool.
type Releaser[T any] func(item *T) error

// Options defines a read only view of options used by a Pool.
type Options[T any] interface {
	// GetCapacity returns the declared capacity of the pool.
	//
	// The value is fixed at construction and reported back verbatim,
	// including zero or negative values.
	GetCapacity() int

	// GetEnforceCapacity returns whether Push rejects objects beyond
	// the declared capacity.
	GetEnforceCapacity() bool

	// GetReleaser returns the function used by Close to release
	// still-pooled objects, or nil if none was set.
	GetReleaser() Releaser[T]
}

// OptionsBuilder defines a read-write view of options used by a Pool.
type OptionsBuilder[T any] interface {
	Options[T]

	// Build returns the read-only version of options.
	Build() Options[T]

	// SetEnforceCapacity sets whether Push rejects objects beyond the
	// declared capacity.
	//
	// By default the capacity is advisory:
	// it's reported by Capacity but Push never checks against it.
	//
	// Note that with enforcement on,
	// a pool declared with a non-positive capacity rejects every Push.
	SetEnforceCapacity(enforce bool) OptionsBuilder[T]

	// SetReleaser sets the function used by Close to release
	// still-pooled objects.
	//
	// If no releaser is set and the pooled type implements io.Closer,
	// Close falls back to calling its Close function.
	SetReleaser(f Releaser[T]) OptionsBuilder[T]
}

type options[T any] struct {
	capacity int
	enforce  bool
	releaser Releaser[T]
}

// NewDefaultOptions creates an OptionsBuilder with the given capacity
// and default options.
func NewDefaultOptions[T any](capacity int) OptionsBuilder[T] {
	return &options[T]{
		capacity: capacity,
		enforce:  DefaultEnforceCapacity,
	}
}

func (opts *options[T]) GetCapacity() int {
	return opts.capacity
}

func (opts *options[T]) GetEnforceCapacity() bool {
	return opts.enforce
}

func (opts *options[T]) GetReleaser() Releaser[T] {
	return opts.releaser
}

func (opts *options[T]) Build() Options[T] {
	return opts
}

func (opts *options[T]) SetEnforceCapacity(enforce bool) OptionsBuilder[T] {
	opts.enforce = enforce
	return opts
}

func (opts *options[T]) SetReleaser(f Releaser[T]) OptionsBuilder[T] {
	opts.releaser = f
	return opts
}
