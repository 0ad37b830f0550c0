package pathext

import (
	"slices"
	"strings"
)

// suffixParts splits an extension suffix such as ".tar.gz" or "tar.gz"
// into its dot-delimited parts. The leading dot is optional and carries
// no meaning. Returns nil when the suffix has no parts at all ("" or a
// bare dot).
func suffixParts(suffix string) []string {
	parts := strings.Split(suffix, ".")
	if parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return nil
	}
	return parts
}

// segmentParts splits a filename into its dot-delimited parts. A leading
// dot marks a hidden file and stays attached to the first part instead
// of starting an extension, so ".gitignore" is a single part and
// ".config.tar.gz" splits into ".config", "tar", "gz". The first part is
// the base name; everything after it is the extension chain, empty parts
// included.
func segmentParts(segment string) []string {
	hidden := strings.HasPrefix(segment, ".")
	if hidden {
		segment = segment[1:]
	}
	parts := strings.Split(segment, ".")
	if hidden {
		parts[0] = "." + parts[0]
	}
	return parts
}

func endsWithExtensions(segment, suffix string) bool {
	expected := suffixParts(suffix)
	if expected == nil {
		return false
	}
	parts := segmentParts(segment)
	if len(parts) < len(expected) {
		return false
	}
	return slices.Equal(parts[len(parts)-len(expected):], expected)
}

func stripExtensions(segment string) string {
	return segmentParts(segment)[0]
}

// finalSegment extracts the filename part of path, where separators
// lists the platform separator characters. Reports false when the path
// is empty, ends in a separator, or names a directory marker.
func finalSegment(path, separators string) (string, bool) {
	if path == "" {
		return "", false
	}
	if strings.ContainsRune(separators, rune(path[len(path)-1])) {
		return "", false
	}
	segment := path
	if i := strings.LastIndexAny(path, separators); i >= 0 {
		segment = path[i+1:]
	}
	if segment == "." || segment == ".." {
		return "", false
	}
	return segment, true
}
