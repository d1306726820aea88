package ptr

// PointTo returns a pointer to the given value.
func PointTo[T any](value T) *T {
	return &value
}
