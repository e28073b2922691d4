package configs

import (
	"errors"
	"iter"
)

// First decodes the first definition of path, or returns the zero value.
// Decoding errors panic: they indicate a schema mismatch.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

func FirstOr[T comparable](loader Loader, path string, fallback T) T {
	var zero T
	if v := First[T](loader, path); v != zero {
		return v
	}
	return fallback
}

// All decodes every definition of path, in file order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
