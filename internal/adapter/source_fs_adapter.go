// Package adapter contains the filesystem, process and network adapters
// the e2ecov workflows are built on.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "github.com/rehagoal/e2ecov/internal/model"
	"golang.org/x/sync/errgroup"
)

// SourceFSAdapter abstracts the filesystem operations the workflows rely on
// when staging trees and report files. It hides direct `os` access so the
// orchestration logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk visits every file and directory under root.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// Remove removes a single file.
	Remove(ctx context.Context, path m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// CopyDir recursively copies a directory tree. dst must not exist.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// CopyFile copies a regular file, replacing dst.
	CopyFile(ctx context.Context, src, dst m.Path) error

	// Glob returns the sorted paths matching a doublestar pattern.
	Glob(ctx context.Context, pattern string) ([]m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct {
	copyWorkers int
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter that copies
// files with one worker per CPU.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{copyWorkers: runtime.NumCPU()}
}

// Walk iterates over every entry under root, descending into symbolic links
// to directories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return walkTree(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers do not mistake a permission problem for absence.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// Remove removes a single file.
func (a *LocalSourceFSAdapter) Remove(_ context.Context, path m.Path) error {
	return os.Remove(string(path))
}

// MkdirAll creates path and its parents.
func (a *LocalSourceFSAdapter) MkdirAll(_ context.Context, path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// CopyDir recursively copies a directory tree. Directories are created while
// walking; file contents are copied by a bounded pool of workers. Symbolic
// links are followed and their targets copied.
func (a *LocalSourceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	if _, err := os.Stat(string(dst)); err == nil {
		return fmt.Errorf("copy destination %s already exists", dst)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(a.copyWorkers, 1))

	walkErr := walkTree(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := groupCtx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		}

		group.Go(func() error {
			return a.copyFile(path, targetPath, info.Mode())
		})

		return nil
	})

	waitErr := group.Wait()
	if walkErr != nil {
		return walkErr
	}

	return waitErr
}

// CopyFile copies a single file, creating dst's parent directory.
func (a *LocalSourceFSAdapter) CopyFile(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("source %s is not a regular file (mode %s)", src, info.Mode())
	}

	return a.copyFile(string(src), string(dst), info.Mode())
}

// copyFile copies a single file.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src comes from walking the configured source tree
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the configured staging directory
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, mode.Perm())
}

// walkTree is filepath.Walk that follows symbolic links. Entries below a
// linked directory are reported under the link's path, and a link is reported
// with its target's FileInfo. A link to one of its own ancestors is an error.
func walkTree(root string, fn filepath.WalkFunc) error {
	return walkFrom(root, root, fn)
}

// walkFrom walks dir, reporting each path with dir replaced by shownRoot.
func walkFrom(dir, shownRoot string, fn filepath.WalkFunc) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		shown := shownRoot
		if rel, relErr := filepath.Rel(dir, path); relErr == nil && rel != "." {
			shown = filepath.Join(shownRoot, rel)
		}

		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return fn(shown, info, err)
		}

		target, err := os.Stat(path)
		if err != nil {
			return fn(shown, info, err)
		}

		if !target.IsDir() {
			return fn(shown, target, nil)
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fn(shown, info, err)
		}

		if linksToAncestor(path, resolved) {
			return fmt.Errorf("symlink %s points to its own ancestor %s", shown, resolved)
		}

		return walkFrom(resolved, shown, fn)
	})
}

// linksToAncestor reports whether link, resolving to target, lives inside
// target.
func linksToAncestor(link, target string) bool {
	parent, err := filepath.EvalSymlinks(filepath.Dir(link))
	if err != nil {
		return false
	}

	parent, err = filepath.Abs(parent)
	if err != nil {
		return false
	}

	target, err = filepath.Abs(target)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(target, parent)

	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Glob returns the paths matching pattern in lexical order.
func (a *LocalSourceFSAdapter) Glob(_ context.Context, pattern string) ([]m.Path, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
