// Package slicesx provides utility functions for slices
package slicesx

// Filter returns the values matching the predicate.
func Filter[T any](pred func(T) bool, values ...T) (result []T) {
	for _, v := range values {
		if pred(v) {
			result = append(result, v)
		}
	}

	return result
}

// Find the first value matching the predicate.
func Find[T any](pred func(T) bool, values ...T) (zero T, _ bool) {
	for _, v := range values {
		if pred(v) {
			return v, true
		}
	}

	return zero, false
}

// MapTransform applies the transform to every value.
func MapTransform[T, U any](fn func(T) U, values ...T) (result []U) {
	result = make([]U, 0, len(values))
	for _, v := range values {
		result = append(result, fn(v))
	}

	return result
}
