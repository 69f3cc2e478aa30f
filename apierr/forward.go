package apierr

// Route maps one inner error type to a variant of an outer error type.
type Route[V comparable] struct {
	match   func(error) bool
	Variant V
}

// On builds a Route for errors whose dynamic type is exactly E.
//
// IMPORTANT:
// Matching looks at the error itself, not at its wrap chain. An outer layer
// error that wraps an ExpectedError is routed as the outer layer error.
func On[E error, V comparable](variant V) Route[V] {
	return Route[V]{
		match: func(err error) bool {
			_, ok := err.(E)
			return ok
		},
		Variant: variant,
	}
}

// Table is the forwarding table of one error layer: the static mapping from
// every inner error type the layer may receive to the outer variant that
// represents it.
//
// Usage:
//
//	var messageRoutes = apierr.Table[MessageParseVariant]{
//		apierr.On[*parser.ExpectedError](MessageParseExpected),
//		apierr.On[*MessageEventParseError](MessageParseEvent),
//	}
type Table[V comparable] []Route[V]

// Variant returns the outer variant for err. The boolean is false when no
// route accepts err.
func (t Table[V]) Variant(err error) (V, bool) {
	for _, route := range t {
		if route.match(err) {
			return route.Variant, true
		}
	}

	var zero V
	return zero, false
}

// Forward wraps err using wrap and the variant chosen by the table. A nil err
// stays nil; an error no route accepts is returned unchanged so it is never
// swallowed.
func (t Table[V]) Forward(err error, wrap func(V, error) error) error {
	if err == nil {
		return nil
	}

	variant, ok := t.Variant(err)
	if !ok {
		return err
	}

	return wrap(variant, err)
}
