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

// UserStore reads credential records from a JSON user file. The file is
// re-read on every lookup so out-of-band edits take effect immediately.
type UserStore struct {
	path string
}

// NewUserStore creates a user store backed by the JSON file at path.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// FindByEmail returns the first record whose email matches exactly.
// Returns ErrUserNotFound when no record matches; an unreadable or
// malformed user file is an error, not a miss.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// List returns every credential record in the user file. A missing file
// yields an empty list.
func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.User{}, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "users: read user file")
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, eris.Wrap(err, "users: parse user file")
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Add appends a credential record and rewrites the user file. Used by
// the CLI only; the HTTP surface never mutates users.
func (s *UserStore) Add(ctx context.Context, user model.User) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}

	users = append(users, user)

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return eris.Wrap(err, "users: marshal user file")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return eris.Wrap(err, "users: create data dir")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return eris.Wrap(err, "users: write user file")
	}
	return nil
}

func (s *UserStore) load() ([]model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, eris.Wrap(err, "users: read user file")
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, eris.Wrap(err, "users: parse user file")
	}
	return users, nil
}
