package slices

func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}
	return result
}

func Filter[T any](ts []T, keep func(T) bool) []T {
	result := []T{}
	for _, t := range ts {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
