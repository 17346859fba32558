package memory

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/felixgeelhaar/graphs/domain/artifact"
)

// ArtifactStore is an in-memory implementation of artifact.Store.
// Paths in returned references use the mem:// scheme.
type ArtifactStore struct {
	mu    sync.RWMutex
	items map[string][]byte
	saves int
}

// NewArtifactStore creates an empty in-memory store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{
		items: make(map[string][]byte),
	}
}

// Save stores a copy of content under name, replacing any previous value.
func (s *ArtifactStore) Save(ctx context.Context, name string, content io.Reader) (artifact.Ref, error) {
	if err := artifact.ValidateName(name); err != nil {
		return artifact.Ref{}, err
	}
	if err := ctx.Err(); err != nil {
		return artifact.Ref{}, err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return artifact.Ref{}, fmt.Errorf("%w: %w", artifact.ErrWriteFailed, err)
	}
	sum := sha256.Sum256(data)

	s.mu.Lock()
	s.items[name] = data
	s.saves++
	s.mu.Unlock()

	return artifact.NewRef(name).
		WithPath("mem://" + name).
		WithContentType(artifact.ContentTypeOf(name)).
		WithSize(int64(len(data))).
		WithChecksum(hex.EncodeToString(sum[:])), nil
}

// Retrieve returns a reader over the content stored under name.
func (s *ArtifactStore) Retrieve(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.Content(name)
	if !ok {
		return nil, artifact.ErrArtifactNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Exists checks if content is stored under name.
func (s *ArtifactStore) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.Content(name)
	return ok, nil
}

// Content returns the bytes stored under name.
func (s *ArtifactStore) Content(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.items[name]
	return data, ok
}

// Saves returns how many successful saves have been made.
func (s *ArtifactStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
