// Package filesystem abstracts the path operations the traversal
// engine consumes, so callers can substitute their own implementation
// and tests can run against an in-memory tree.
package filesystem

// FileSystem provides an abstraction over file operations for testability
type FileSystem interface {
	// Abs resolves path to its canonical absolute form. Relative
	// paths are resolved against the working directory.
	Abs(path string) (string, error)

	// IsDir reports whether path names a directory. It fails when
	// the path does not exist or is inaccessible.
	IsDir(path string) (bool, error)

	// ReadDirNames returns the names of the entries in dir, sorted.
	// It fails under the same conditions as IsDir.
	ReadDirNames(dir string) ([]string, error)

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}
