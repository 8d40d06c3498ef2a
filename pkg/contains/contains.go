package contains

// String returns true if value s appears in items.
func String(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
