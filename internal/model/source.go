// Package model holds the configuration and data types shared by the
// e2ecov commands.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// File represents a file inside a source or staged tree.
type File struct {
	// Path is the location relative to the working directory, the form
	// the instrumenter matches exclusion globs against (e.g. "www/app.js").
	Path Path
	// Rel is the location relative to the tree root (e.g. "app.js").
	Rel  Path
	Hash string
	Size int64
}
