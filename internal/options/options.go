// Package options implements the functional options shared by the
// constructors of the store, the drivers and the marshaller.
package options

// OptionConstructor returns the defaults options are applied over.
type OptionConstructor[T any] func() T

// OptionCallback changes one or more options.
type OptionCallback[T any] func(*T)

// ApplyOptions builds the defaults with constructor, or starts from the zero
// value when it is nil, and applies cbs in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
