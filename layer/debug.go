package layer

// SetDebugAssertions toggles the expensive cross-layer invariant checks
// AddSet runs after every insertion. Off by default; pdr.WithDebugAssertions
// turns it on for tests and diagnostic runs.
func SetDebugAssertions(enabled bool) {
	debugAsserts = enabled
}
