package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/projectmap/internal/config"
	"github.com/sells-group/projectmap/internal/model"
)

// Sentinel errors for callers that map storage outcomes to HTTP statuses.
var (
	ErrUserNotFound    = eris.New("store: user not found")
	ErrDatasetNotFound = eris.New("store: dataset not found")
)

// CommentStore persists the visitor comment log. Comments are only ever
// appended or wiped wholesale; there is no per-record update or delete.
type CommentStore interface {
	// List returns every comment in append order. An empty store yields
	// an empty slice, never an error.
	List(ctx context.Context) ([]model.Comment, error)

	// Append stores one comment at the end of the log and returns it.
	Append(ctx context.Context, c model.Comment) (model.Comment, error)

	// DeleteAll unconditionally empties the log.
	DeleteAll(ctx context.Context) error

	Close() error
}

// OpenComments constructs the comment store for the configured driver.
func OpenComments(cfg *config.Config) (CommentStore, error) {
	switch cfg.Store.Driver {
	case "file", "":
		return NewFileStore(cfg.Data.CommentsPath()), nil
	case "sqlite":
		return NewSQLite(cfg.Store.SQLitePath)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Store.Driver)
	}
}
