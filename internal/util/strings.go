// Package util provides shared string helpers used by the colour engine's
// hex decoding and the importer's colour parser.
package util

import "strings"

// StripHash removes the # prefix from a hex colour string.
// This is useful for formats that don't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}
