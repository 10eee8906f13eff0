package datetime

// between reports a <= x <= b. It backs field, bound, and timezone range
// checks throughout the package.
func between(x, a, b int) bool {
	return a <= x && x <= b
}
