package util

/**
 * Generic shared utilities
 */

// SliceIncludes returns true is string slice includes value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// SliceCount returns the number of elements fn reports true for
func SliceCount[T any](s []T, fn func(T) bool) int {
	count := 0
	for _, v := range s {
		if fn(v) {
			count++
		}
	}
	return count
}
