package utils

// Unique returns the distinct elements of items in first-occurrence order
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, identity[T])
}

// UniqueBy is Unique comparing elements by the key returned by fn
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		key := fn(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

// Intersection returns the elements of a that are present in b, keeping the
// order and duplicates of a
func Intersection[T comparable](a, b []T) []T {
	return filterByMembership(a, b, identity[T], true)
}

// IntersectionBy is Intersection comparing elements by the key returned by fn
func IntersectionBy[T any, K comparable](a, b []T, fn func(T) K) []T {
	return filterByMembership(a, b, fn, true)
}

// Difference returns the elements of a that are not present in b, keeping the
// order and duplicates of a
func Difference[T comparable](a, b []T) []T {
	return filterByMembership(a, b, identity[T], false)
}

// DifferenceBy is Difference comparing elements by the key returned by fn
func DifferenceBy[T any, K comparable](a, b []T, fn func(T) K) []T {
	return filterByMembership(a, b, fn, false)
}

func filterByMembership[T any, K comparable](a, b []T, fn func(T) K, keep bool) []T {
	set := SliceToSet(b, fn)

	filtered := make([]T, 0, len(a))
	for _, item := range a {
		if _, ok := set[fn(item)]; ok == keep {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SliceToSet takes a slice and returns the set of keys produced by fn
func SliceToSet[T any, K comparable](slice []T, fn func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(slice))
	for _, value := range slice {
		set[fn(value)] = struct{}{}
	}
	return set
}

func identity[T any](v T) T { return v }
