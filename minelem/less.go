package minelem

import "cmp"

// LessFunc reports whether a is strictly ordered before b. It must be a strict
// weak ordering: irreflexive, asymmetric, transitive, and with transitive
// incomparability.
type LessFunc[T any] func(a, b T) bool

// Less returns the natural ascending ordering a < b.
func Less[T cmp.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Greater returns the descending ordering a > b. With Greater, the "minimum"
// functions report the largest elements.
func Greater[T cmp.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a > b }
}

// Counted wraps less and counts its invocations in *calls.
func Counted[T any](less LessFunc[T]) (LessFunc[T], *int) {
	calls := new(int)
	return func(a, b T) bool {
		*calls++
		return less(a, b)
	}, calls
}

// byIndex lifts less over indices into s.
func byIndex[T any](s []T, less LessFunc[T]) func(i, j int) bool {
	return func(i, j int) bool { return less(s[i], s[j]) }
}
