package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// MockFileSystem provides an in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	errs       map[string]error
	currentDir string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	IsDir   bool
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		errs:       make(map[string]error),
		currentDir: "/workspace",
	}
}

// AddFile adds a file to the mock filesystem, creating parent
// directories as needed.
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{Content: content}
	mfs.addParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem, creating parent
// directories as needed.
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if existing, exists := mfs.files[cleanPath]; !exists || !existing.IsDir {
		mfs.files[cleanPath] = &MockFile{IsDir: true}
	}
	mfs.addParents(cleanPath)
}

func (mfs *MockFileSystem) addParents(path string) {
	dir := filepath.Dir(path)
	for dir != path {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{IsDir: true}
		}
		path = dir
		dir = filepath.Dir(dir)
	}
}

// SetErr makes every operation on path fail with err, simulating
// permission or IO failures.
func (mfs *MockFileSystem) SetErr(path string, err error) {
	mfs.errs[filepath.Clean(path)] = err
}

// Chdir sets the working directory relative paths resolve against.
func (mfs *MockFileSystem) Chdir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
}

// Remove deletes a path from the mock filesystem.
func (mfs *MockFileSystem) Remove(path string) {
	delete(mfs.files, filepath.Clean(path))
}

func (mfs *MockFileSystem) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(mfs.currentDir, path), nil
}

func (mfs *MockFileSystem) IsDir(path string) (bool, error) {
	cleanPath := filepath.Clean(path)
	if err := mfs.errs[cleanPath]; err != nil {
		return false, err
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return false, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return file.IsDir, nil
}

func (mfs *MockFileSystem) ReadDirNames(dir string) ([]string, error) {
	cleanDir := filepath.Clean(dir)
	if err := mfs.errs[cleanDir]; err != nil {
		return nil, err
	}

	file, exists := mfs.files[cleanDir]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}

	var names []string
	for p := range mfs.files {
		if filepath.Dir(p) == cleanDir && p != cleanDir {
			names = append(names, filepath.Base(p))
		}
	}

	sort.Strings(names)
	return names, nil
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)
	if err := mfs.errs[cleanPath]; err != nil {
		return nil, err
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	return file.Content, nil
}
