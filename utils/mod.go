package utils

// FindIndex returns the index of the first element equal to item, or -1.
// With duplicate cards in a hand this deliberately picks the first copy.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
