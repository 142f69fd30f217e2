package pgnfile

import (
	"regexp"
	"strings"
)

// PGNFile is one upstream file record exposed to clients. Filename carries the
// fully-qualified public id, DisplayName its last path segment.
type PGNFile struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	DisplayName string `json:"displayName"`
}

// Level keys end up inside the upstream search expression, so anything outside
// this charset is rejected before a query is built.
var levelKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidLevelKey reports whether key is a well-formed level identifier.
func ValidLevelKey(key string) bool {
	return levelKeyPattern.MatchString(key)
}

// DisplayNameOf extracts the display name from a fully-qualified public id.
func DisplayNameOf(publicID string) string {
	segments := strings.Split(publicID, "/")
	return segments[len(segments)-1]
}
