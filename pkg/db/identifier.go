package db

// ValidIdentifier reports whether a derived table name is safe to use as a
// SQL identifier: ASCII letters, digits and underscores only, and not
// starting with a digit. Names come from entry filenames, so anything
// outside the allow-list is rejected rather than quoted.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
