// Package pathext provides convenience checks on filesystem path values:
// extension-chain matching, component lookups and extension stripping,
// layered on top of the platform path rules. No operation touches the
// filesystem or mutates its input.
package pathext

// Path is used for manipulation/checks of a path depending on the OS.
// Each supported OS needs to have its own implementation.
type Path interface {
	Join(elem ...string) string
	IsAbs(path string) bool
	IsRoot(path string) bool
	Contains(basePath, targetPath string) bool

	// Components returns the ordered decomposition of path: the root
	// marker (if any), then every non-empty segment. The path is not
	// cleaned; "." and ".." are ordinary segments.
	Components(path string) []string

	// FinalSegment returns the last component of path as a filename.
	// It reports false when the path has no filename: the empty path,
	// a root, a path ending in a separator, or a path whose last
	// segment is "." or "..".
	FinalSegment(path string) (string, bool)

	// HasComponent reports whether component equals one of the
	// segments returned by Components. Whole segments only, never
	// substrings.
	HasComponent(path, component string) bool

	// EndsWithExtensions reports whether the final segment of path
	// ends with the given extension suffix, compared as whole
	// dot-delimited parts: "archive.tar.gz" ends with ".tar.gz", "gz"
	// and "tar.gz", but not "tar". The leading dot of the suffix is
	// optional. A suffix with no extension parts ("" or ".") never
	// matches.
	EndsWithExtensions(path, suffix string) bool

	// StripExtensions returns the final segment of path with all of
	// its extension parts removed, reporting false when the path has
	// no final segment. A leading dot marks a hidden file and is not
	// an extension: StripExtensions(".gitignore") is ".gitignore".
	StripExtensions(path string) (string, bool)
}
