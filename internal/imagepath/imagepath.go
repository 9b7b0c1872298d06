// Package imagepath scans free text for embedded image file paths.
package imagepath

import (
	"os"
	"regexp"
	"strings"
)

// pathPattern matches Windows-style (drive letter, backslashes) and
// Unix-style (leading slash) absolute paths ending in a recognized image
// extension, in either casing.
var pathPattern = regexp.MustCompile(`([A-Za-z]:\\[^:\n]*?\.(?:png|jpg|jpeg|PNG|JPG|JPEG))|(/[^:\n]*?\.(?:png|jpg|jpeg|PNG|JPG|JPEG))`)

// Find returns the most probable existing image file path embedded in
// text, or the empty string if none is found.
//
// Every regex match is also considered with its backslashes stripped,
// which recovers paths that arrived escaped or with mixed separators.
// Candidates that do not exist on the filesystem are discarded; among
// the rest the longest wins. At equal length the candidate appearing
// earliest in scan order wins, so an untouched spelling is preferred
// over its stripped variant.
func Find(text string) string {
	matches := pathPattern.FindAllString(text, -1)

	candidates := make([]string, 0, len(matches)*2)
	candidates = append(candidates, matches...)
	for _, m := range matches {
		if stripped := strings.ReplaceAll(m, `\`, ""); stripped != m {
			candidates = append(candidates, stripped)
		}
	}

	best := ""
	for _, c := range candidates {
		if len(c) <= len(best) {
			continue
		}
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			best = c
		}
	}
	return best
}
