package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/projectmap/internal/model"
)

// SQLiteStore implements CommentStore using modernc.org/sqlite. It
// offers the same observable List/Append/DeleteAll behavior as the
// file driver with real transactional writes underneath.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS comments (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id TEXT NOT NULL DEFAULT '',
	name       TEXT NOT NULL DEFAULT '',
	comment    TEXT NOT NULL DEFAULT '',
	timestamp  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_comments_project_id ON comments(project_id);
`

// NewSQLite opens a SQLite database at the given path, configures WAL
// mode, and ensures the schema exists.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	if _, err := db.Exec(sqliteMigration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "sqlite: migrate")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, name, comment, timestamp FROM comments ORDER BY id`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list comments")
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ProjectID, &c.Name, &c.Comment, &c.Timestamp); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan comment")
		}
		comments = append(comments, c)
	}
	return comments, eris.Wrap(rows.Err(), "sqlite: list comments iterate")
}

func (s *SQLiteStore) Append(ctx context.Context, c model.Comment) (model.Comment, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (project_id, name, comment, timestamp) VALUES (?, ?, ?, ?)`,
		c.ProjectID, c.Name, c.Comment, c.Timestamp,
	)
	if err != nil {
		return model.Comment{}, eris.Wrap(err, "sqlite: insert comment")
	}
	return c, nil
}

func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM comments`)
	return eris.Wrap(err, "sqlite: delete comments")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
