package pathstore

import "strings"

// Path is the key type accepted by the store. Implementations provide a
// sequence of named segments and tell whether the path is rooted at the
// top of the hierarchy. The store performs no normalization beyond the
// absolute check; resolving "." or ".." is up to the implementation.
type Path interface {
	// IsAbs reports whether the path is absolute.
	IsAbs() bool
	// Segments returns the named components of the path in order. The
	// root itself is not a segment.
	Segments() []string
}

// SlashPath is a slash-separated Path, e.g. "/f/FDrive/files". Empty
// segments are skipped, so "/f//g" and "/f/g/" name the same nodes as
// "/f/g".
type SlashPath string

func (p SlashPath) IsAbs() bool {
	return strings.HasPrefix(string(p), "/")
}

func (p SlashPath) Segments() []string {
	parts := strings.Split(string(p), "/")
	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
