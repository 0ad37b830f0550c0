package pathext

import "strings"

// ContainsPattern reports whether pattern appears anywhere in the
// stringified path.
func ContainsPattern(path, pattern string) bool {
	return strings.Contains(path, pattern)
}

// StartsOrEndsWith reports whether pattern appears at the beginning or
// at the end of the stringified path.
func StartsOrEndsWith(path, pattern string) bool {
	return strings.HasPrefix(path, pattern) || strings.HasSuffix(path, pattern)
}
