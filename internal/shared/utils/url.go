package utils

import "strings"

// ToPublicURL rewrites a relative /uploads path into an absolute URL on the
// configured base. Absolute URLs and empty values pass through unchanged.
func ToPublicURL(baseURL, path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(baseURL, "/") + path
}
