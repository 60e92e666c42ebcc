package hentry

import (
	"encoding/base64"
	"strings"
)

// URIID derives a stable entry identifier from a URL: the path with a
// single leading slash removed, encoded as unpadded URL-safe base64.
func URIID(rawURL string) string {
	path := strings.TrimPrefix(urlPath(rawURL), "/")
	return base64.RawURLEncoding.EncodeToString([]byte(path))
}

// urlPath returns the path component exactly as written. url.URL.Path is
// percent-decoded, which would change the identifier.
func urlPath(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ':'); i > 0 && isScheme(s[:i]) {
		s = s[i+1:]
	}
	if strings.HasPrefix(s, "//") {
		s = s[2:]
		i := strings.IndexByte(s, '/')
		if i < 0 {
			return ""
		}
		s = s[i:]
	}
	return s
}

func isScheme(s string) bool {
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
