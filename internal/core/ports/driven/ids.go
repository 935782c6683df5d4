package driven

// IDGenerator hands out unique identifiers.
type IDGenerator interface {
	NewID() string
}

// Random is a source of pseudo-random integers.
type Random interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}
