package media

import (
	"net/url"
	"strings"
)

// PublicIDFromURL derives the media host's asset identifier from a delivery
// URL. For a URL like
//
//	https://res.cloudinary.com/demo/image/upload/v1712345678/villasol/slides/beach.jpg
//
// the public ID is "villasol/slides/beach": everything after the upload
// segment, minus the version marker and the file extension. Returns "" when
// the URL does not look like a delivery URL, so callers can skip deletion of
// assets this service never uploaded.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	const marker = "/upload/"
	idx := strings.Index(u.Path, marker)
	if idx < 0 {
		return ""
	}
	rest := u.Path[idx+len(marker):]

	// Drop the version segment if present ("v" followed by digits).
	if first, remainder, found := strings.Cut(rest, "/"); found && isVersionSegment(first) {
		rest = remainder
	}
	if rest == "" {
		return ""
	}

	// Strip the file extension from the last segment.
	if dot := strings.LastIndex(rest, "."); dot > strings.LastIndex(rest, "/") {
		rest = rest[:dot]
	}
	return rest
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
