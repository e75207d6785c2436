package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/projectmap/internal/model"
)

// FileStore keeps the comment log in a single pretty-printed JSON array
// file, rewritten in full on every mutation. Concurrent writers race on
// the read-modify-write cycle; that matches the documented storage
// semantics and no locking is layered on top.
type FileStore struct {
	path string
}

// NewFileStore creates a comment store backed by the JSON file at path.
// The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) List(ctx context.Context) ([]model.Comment, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Comment{}, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "filestore: read comment log")
	}

	var comments []model.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, eris.Wrap(err, "filestore: parse comment log")
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func (s *FileStore) Append(ctx context.Context, c model.Comment) (model.Comment, error) {
	comments, err := s.List(ctx)
	if err != nil {
		return model.Comment{}, err
	}

	comments = append(comments, c)

	if err := s.writeAll(comments); err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (s *FileStore) DeleteAll(ctx context.Context) error {
	return s.writeAll([]model.Comment{})
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) writeAll(comments []model.Comment) error {
	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return eris.Wrap(err, "filestore: marshal comment log")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return eris.Wrap(err, "filestore: create data dir")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return eris.Wrap(err, "filestore: write comment log")
	}
	return nil
}
