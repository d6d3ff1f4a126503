// Package scratch stages uploaded audio on disk for the duration of a single
// request. Every upload gets its own directory so concurrent uploads sharing a
// filename never touch each other's bytes.
package scratch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	dirPattern      = "upload-*"
	defaultFilename = "upload"
)

// Store creates per-request artifacts beneath a root directory.
type Store struct {
	root string
}

// NewStore returns a Store rooted at root, creating it if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		root = os.TempDir()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the directory artifacts are created under.
func (s *Store) Root() string {
	return s.root
}

// Artifact is one staged upload. Release removes it.
type Artifact struct {
	// Path is the file holding the upload bytes.
	Path string
	// Name is the sanitized client filename.
	Name string
	// Size is the number of bytes written.
	Size int64
	// SHA256 is the hex digest of the upload bytes.
	SHA256 string

	dir     string
	once    sync.Once
	release error
}

// Acquire streams r into a new artifact named after filename. On error
// nothing is left behind.
func (s *Store) Acquire(filename string, r io.Reader) (*Artifact, error) {
	dir, err := os.MkdirTemp(s.root, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	name := SanitizeFilename(filename)
	artifact := &Artifact{
		Path: filepath.Join(dir, name),
		Name: name,
		dir:  dir,
	}

	f, err := os.OpenFile(artifact.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		artifact.Release()
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}

	hash := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, hash), r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		artifact.Release()
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	artifact.Size = n
	artifact.SHA256 = hex.EncodeToString(hash.Sum(nil))
	return artifact, nil
}

// Release deletes the artifact and its directory. Only the first call does
// any work; later calls return the first result.
func (a *Artifact) Release() error {
	a.once.Do(func() {
		if err := os.RemoveAll(a.dir); err != nil {
			a.release = fmt.Errorf("failed to remove %s: %w", a.dir, err)
		}
	})
	return a.release
}

// SanitizeFilename reduces a client supplied filename to a safe base name.
func SanitizeFilename(filename string) string {
	// Clients on Windows send backslash separated paths.
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return defaultFilename
	}
	return name
}
