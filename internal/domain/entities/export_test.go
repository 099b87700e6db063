package entities

// ResolveToken exposes resolveToken for testing.
func ResolveToken(raw string) string {
	return resolveToken(raw)
}
