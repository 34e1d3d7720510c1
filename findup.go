// Package findup locates a file or directory by walking upward from a
// starting path through its ancestor directories, consulting a
// caller-supplied callback at each level until it signals a match or
// the filesystem root is reached. This is the mechanism behind
// "find nearest config file" and "find project root" tooling.
//
// Lookups are memoized through three bounded caches (final results,
// directory metadata, directory listings); see Caches for the
// trade-offs that implies.
package findup

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/jakoblorz/go-findup/filesystem"
)

// Callback decides, for one ancestor directory and its entry names,
// whether the walk should stop. Returning a non-empty string stops
// the walk: a relative value is resolved against dir, an absolute
// value is returned unchanged. Returning "" continues to the parent.
type Callback func(dir string, entries []string) (string, error)

// ContextCallback is a Callback that may itself block on the given
// context, for use with Finder.Locate.
type ContextCallback func(ctx context.Context, dir string, entries []string) (string, error)

// Finder is the upward-traversal engine. The zero value is not
// usable; construct with NewFinder.
type Finder struct {
	fs            filesystem.FileSystem
	caches        *Caches
	skipDirs      map[string]struct{}
	noResultCache bool
}

// NewFinder creates a Finder over fs. Unless WithCaches is given, the
// Finder owns a private cache set.
func NewFinder(fs filesystem.FileSystem, options ...Option) *Finder {
	f := &Finder{
		fs:       fs,
		skipDirs: make(map[string]struct{}),
	}

	for _, option := range options {
		option(f)
	}

	if f.caches == nil {
		f.caches = NewCaches()
	}

	return f
}

// Locate walks upward from start, invoking cb at each ancestor
// directory until it returns a non-empty path or the root is reached.
// It returns the resolved absolute path and true on a match, and
// ("", false, nil) on exhaustion. A start path that does not exist,
// any filesystem failure during the walk, a callback error, and
// context cancellation all abort the call with an error.
//
// The context is consulted before every filesystem operation and
// passed through to cb.
func (f *Finder) Locate(ctx context.Context, start string, cb ContextCallback) (string, bool, error) {
	return f.locate(ctx, start, callbackKey(cb), cb)
}

// LocateBlocking is Locate without a context: the callback cannot
// block on external work and the walk runs to completion or failure.
func (f *Finder) LocateBlocking(start string, cb Callback) (string, bool, error) {
	return f.locate(context.Background(), start, callbackKey(cb),
		func(_ context.Context, dir string, entries []string) (string, error) {
			return cb(dir, entries)
		})
}

// callbackKey derives the result-cache identity of a callback from
// its code pointer. Closures created at the same source location
// share a code pointer; see Caches.
func callbackKey(cb any) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

func (f *Finder) locate(ctx context.Context, start string, cbKey uintptr, cb ContextCallback) (string, bool, error) {
	abs, err := f.fs.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start path %q: %w", start, err)
	}

	key := resultKey{start: abs, callback: cbKey}
	if !f.noResultCache {
		if cached, ok := f.caches.results.Get(key); ok {
			return cached.path, cached.found, nil
		}
	}

	// A file start resolves to its containing directory as the
	// first examined level. A missing start path is an error, not
	// a not-found.
	isDir, err := f.isDir(ctx, abs)
	if err != nil {
		return "", false, err
	}
	dir := abs
	if !isDir {
		dir = filepath.Dir(abs)
	}

	visited := make(map[string]struct{})
	for {
		// Guards against pathological configurations where a
		// parent resolves back to an already-examined level
		// other than at the true root.
		if _, seen := visited[dir]; seen {
			break
		}
		visited[dir] = struct{}{}

		if ok, err := f.isDir(ctx, dir); err != nil {
			return "", false, err
		} else if !ok {
			return "", false, fmt.Errorf("not a directory: %s", dir)
		}

		if _, skip := f.skipDirs[filepath.Base(dir)]; skip {
			break
		}

		entries, err := f.readDirNames(ctx, dir)
		if err != nil {
			return "", false, err
		}

		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		match, err := cb(ctx, dir, entries)
		if err != nil {
			return "", false, fmt.Errorf("callback failed at %s: %w", dir, err)
		}
		if match != "" {
			resolved := match
			if !filepath.IsAbs(resolved) {
				resolved = filepath.Join(dir, resolved)
			}
			f.storeResult(key, result{path: resolved, found: true})
			return resolved, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	f.storeResult(key, result{})
	return "", false, nil
}

func (f *Finder) storeResult(key resultKey, r result) {
	if f.noResultCache {
		return
	}
	f.caches.results.Set(key, r)
}

func (f *Finder) isDir(ctx context.Context, path string) (bool, error) {
	if cached, ok := f.caches.metadata.Get(path); ok {
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	isDir, err := f.fs.IsDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f.caches.metadata.Set(path, isDir)
	return isDir, nil
}

func (f *Finder) readDirNames(ctx context.Context, dir string) ([]string, error) {
	if cached, ok := f.caches.listings.Get(dir); ok {
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := f.fs.ReadDirNames(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	f.caches.listings.Set(dir, names)
	return names, nil
}

var defaultFinder = sync.OnceValue(func() *Finder {
	return NewFinder(filesystem.NewOSFileSystem())
})

// Locate walks upward from start on the OS filesystem, using a
// process-wide shared Finder and cache set.
func Locate(ctx context.Context, start string, cb ContextCallback) (string, bool, error) {
	return defaultFinder().Locate(ctx, start, cb)
}

// LocateBlocking walks upward from start on the OS filesystem, using
// a process-wide shared Finder and cache set.
func LocateBlocking(start string, cb Callback) (string, bool, error) {
	return defaultFinder().LocateBlocking(start, cb)
}
