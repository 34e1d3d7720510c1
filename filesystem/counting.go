package filesystem

import "sync"

// Counts holds the number of calls made through a CountingFileSystem,
// per operation.
type Counts struct {
	Abs          int
	IsDir        int
	ReadDirNames int
	ReadFile     int
}

// Total returns the sum of all operation counts.
func (c Counts) Total() int {
	return c.Abs + c.IsDir + c.ReadDirNames + c.ReadFile
}

// CountingFileSystem wraps a FileSystem and records how often each
// operation is invoked. Tests use it to verify that cached lookups
// skip the filesystem entirely.
type CountingFileSystem struct {
	inner FileSystem

	mu     sync.Mutex
	counts Counts
}

// NewCountingFileSystem wraps inner with call counting.
func NewCountingFileSystem(inner FileSystem) *CountingFileSystem {
	return &CountingFileSystem{inner: inner}
}

// Counts returns a snapshot of the call counts so far.
func (cfs *CountingFileSystem) Counts() Counts {
	cfs.mu.Lock()
	defer cfs.mu.Unlock()
	return cfs.counts
}

// Reset zeroes all call counts.
func (cfs *CountingFileSystem) Reset() {
	cfs.mu.Lock()
	defer cfs.mu.Unlock()
	cfs.counts = Counts{}
}

func (cfs *CountingFileSystem) Abs(path string) (string, error) {
	cfs.mu.Lock()
	cfs.counts.Abs++
	cfs.mu.Unlock()
	return cfs.inner.Abs(path)
}

func (cfs *CountingFileSystem) IsDir(path string) (bool, error) {
	cfs.mu.Lock()
	cfs.counts.IsDir++
	cfs.mu.Unlock()
	return cfs.inner.IsDir(path)
}

func (cfs *CountingFileSystem) ReadDirNames(dir string) ([]string, error) {
	cfs.mu.Lock()
	cfs.counts.ReadDirNames++
	cfs.mu.Unlock()
	return cfs.inner.ReadDirNames(dir)
}

func (cfs *CountingFileSystem) ReadFile(path string) ([]byte, error) {
	cfs.mu.Lock()
	cfs.counts.ReadFile++
	cfs.mu.Unlock()
	return cfs.inner.ReadFile(path)
}
