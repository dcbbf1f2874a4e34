// Package gitignore reads and writes ignore files on disk.
package gitignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Mode selects what Write does when the target file already exists.
type Mode int

const (
	// FailIfExists leaves an existing file untouched and returns ErrExists.
	FailIfExists Mode = iota
	// Overwrite replaces an existing file.
	Overwrite
)

func (m Mode) String() string {
	switch m {
	case FailIfExists:
		return "fail-if-exists"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrExists is returned by Write in FailIfExists mode when the target exists.
var ErrExists = errors.New("file already exists")

// Read returns the content of the ignore file at path, or "" if it does not exist.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Write stores content at path. The content is staged in a temporary file
// next to path and moved into place, so path either holds all of content or
// is left as it was. When path is a symlink, Overwrite replaces the file it
// points to and keeps the link.
func Write(path, content string, mode Mode) error {
	if mode == Overwrite {
		path = resolveLink(path)
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if mode == FailIfExists {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := stage(filepath.Dir(path), content, perm)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp)

	if mode == Overwrite {
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}

	// Link fails if path appeared since the Stat above.
	err = os.Link(tmp, path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s: %w", path, ErrExists)
	default:
		// Some filesystems have no hard links.
		return createExclusive(path, content, perm)
	}
}

// resolveLink returns the file a symlink at path points to, or path itself
// when it is not a symlink or the link is dangling.
func resolveLink(path string) string {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return path
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return target
}

// stage writes content to a new temporary file in dir and returns its name.
func stage(dir, content string, perm fs.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, ".gig-*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

// createExclusive creates path with O_EXCL and removes it again if the write
// does not complete.
func createExclusive(path, content string, perm fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, werr := f.WriteString(content)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, errors.Join(werr, cerr))
	}
	return nil
}
