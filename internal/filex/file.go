// Package filex holds small filesystem path helpers.
package filex

import "path/filepath"

// ResolveRelative interprets path relative to the directory holding
// baseFile. Absolute paths, empty paths and an empty baseFile leave path
// unchanged.
func ResolveRelative(baseFile, path string) string {
	if path == "" || baseFile == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(baseFile), path)
}
