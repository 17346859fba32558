// Package filesystem provides filesystem-based storage implementations.
package filesystem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/graphs/domain/artifact"
)

const filePerm = 0o644

// ArtifactStore implements artifact.Store in a single directory. Each name
// maps to one file that is replaced on every save. Content is written to a
// temporary file beside it and renamed into place, so a failed save leaves
// the previous file untouched.
type ArtifactStore struct {
	basePath string
}

// NewArtifactStore creates a store rooted at basePath, creating the
// directory if needed.
func NewArtifactStore(basePath string) (*ArtifactStore, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &ArtifactStore{basePath: abs}, nil
}

// Dir returns the absolute directory documents are written to.
func (s *ArtifactStore) Dir() string {
	return s.basePath
}

// Save writes content to <dir>/<name>, replacing any previous file.
func (s *ArtifactStore) Save(ctx context.Context, name string, content io.Reader) (artifact.Ref, error) {
	if err := artifact.ValidateName(name); err != nil {
		return artifact.Ref{}, err
	}
	if err := ctx.Err(); err != nil {
		return artifact.Ref{}, err
	}

	path := s.path(name)
	file, err := os.CreateTemp(s.basePath, "."+name+".*.tmp")
	if err != nil {
		return artifact.Ref{}, fmt.Errorf("%w: %w", artifact.ErrWriteFailed, err)
	}
	tmp := file.Name()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hasher), content)
	if err == nil {
		err = file.Chmod(filePerm)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp) // #nosec G104 -- best-effort cleanup in error path
		return artifact.Ref{}, fmt.Errorf("%w: %w", artifact.ErrWriteFailed, err)
	}

	return artifact.NewRef(name).
		WithPath(path).
		WithContentType(artifact.ContentTypeOf(name)).
		WithSize(size).
		WithChecksum(hex.EncodeToString(hasher.Sum(nil))), nil
}

// Retrieve opens the file stored under name.
func (s *ArtifactStore) Retrieve(_ context.Context, name string) (io.ReadCloser, error) {
	if err := artifact.ValidateName(name); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path(name)) // #nosec G304 -- name is validated to a bare file name
	if err != nil {
		if os.IsNotExist(err) {
			return nil, artifact.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	return file, nil
}

// Exists checks if a file is stored under name.
func (s *ArtifactStore) Exists(_ context.Context, name string) (bool, error) {
	if err := artifact.ValidateName(name); err != nil {
		return false, err
	}

	_, err := os.Stat(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ArtifactStore) path(name string) string {
	return filepath.Join(s.basePath, name)
}
