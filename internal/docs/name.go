package docs

import "regexp"

// MaxNameLen caps document names well below any filesystem or URL limit.
const MaxNameLen = 64

// Document names are path segments interpolated into the upstream URL, so
// anything resembling traversal or a separator is rejected outright. Dots are
// allowed only between word characters, which rules out "..", leading dots
// and trailing dots.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+(\.[a-zA-Z0-9_-]+)*$`)

// ValidName reports whether name is safe to interpolate into the upstream URL.
func ValidName(name string) bool {
	if name == "" || len(name) > MaxNameLen {
		return false
	}
	return namePattern.MatchString(name)
}
