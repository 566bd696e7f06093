// Package jsonpointer provides RFC 6901 JSON pointer construction and
// parsing helpers shared by the loader and checker.
package jsonpointer

import "strings"

// Escape escapes a single reference token per RFC 6901:
// "~" becomes "~0" and "/" becomes "~1".
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// Unescape reverses Escape. Order matters: "~1" must be decoded before "~0"
// so that "~01" round-trips to "~1" rather than "/".
func Unescape(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// Append extends a pointer with one reference token, escaping the token.
// Append("", "paths") returns "/paths";
// Append("/paths", "/teams") returns "/paths/~1teams".
func Append(ptr, token string) string {
	return ptr + "/" + Escape(token)
}

// Split parses a pointer into its unescaped reference tokens.
// The empty pointer ("" or "/") yields no tokens.
func Split(ptr string) []string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}
	parts := strings.Split(ptr, "/")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = Unescape(p)
	}
	return tokens
}
