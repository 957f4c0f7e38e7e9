package vector

// debugAssert panics with msg when cond is false and the package was built with
// the vectordebug tag. Release builds compile the check away.
func debugAssert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("vector: " + msg)
	}
}
