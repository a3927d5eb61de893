package try

// Fataler is something which can stop the process (or the test) with a message.
//
// *testing.T and *log.Logger are Fatalers.
type Fataler interface {
	Fatal(...any)
}

// Either is a pair of a value and an error.
//
// When the error is nil, the Either is "ok" and its value is valid.
type Either[T any] interface {
	// Get returns (value, nil) for ok, or (zero value, error) otherwise.
	Get() (T, error)

	// OrFatal returns the value if ok. Otherwise, it calls ftl.Fatal(err).
	//
	// If ftl has a Helper method (like *testing.T), it is called before Fatal.
	OrFatal(ftl Fataler) T

	// OrDefault returns the value if ok, d otherwise.
	OrDefault(d T) T
}

// To wraps a result of a function returning (T, error).
func To[T any](v T, err error) Either[T] {
	if err == nil {
		return ok[T]{v}
	}
	return ng[T]{err}
}

type ok[T any] struct{ v T }

type ng[T any] struct{ err error }

func (o ok[T]) Get() (T, error) { return o.v, nil }

func (o ok[T]) OrFatal(Fataler) T { return o.v }

func (o ok[T]) OrDefault(T) T { return o.v }

func (n ng[T]) Get() (T, error) { return *new(T), n.err }

func (n ng[T]) OrFatal(ftl Fataler) T {
	if h, ok := ftl.(interface{ Helper() }); ok {
		h.Helper()
	}
	ftl.Fatal(n.err)
	return *new(T)
}

func (n ng[T]) OrDefault(d T) T { return d }
