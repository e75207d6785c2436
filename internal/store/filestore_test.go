package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/projectmap/internal/model"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "comments.json"))
}

func TestFileStoreListMissingFile(t *testing.T) {
	s := newTestFileStore(t)

	comments, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestFileStoreAppendThenList(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	c := model.Comment{
		ProjectID: "42",
		Name:      "A",
		Comment:   "hi",
		Timestamp: "2024-01-01T00:00:00Z",
	}

	stored, err := s.Append(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, c, stored)

	comments, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, c, comments[0])
}

func TestFileStoreAppendOrderPreserved(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Append(ctx, model.Comment{ProjectID: "1", Name: name})
		require.NoError(t, err)
	}

	comments, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Name)
	assert.Equal(t, "second", comments[1].Name)
	assert.Equal(t, "third", comments[2].Name)
}

func TestFileStoreDuplicatesPermitted(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	c := model.Comment{ProjectID: "7", Name: "B", Comment: "same", Timestamp: "2024-06-01T12:00:00Z"}
	_, err := s.Append(ctx, c)
	require.NoError(t, err)
	_, err = s.Append(ctx, c)
	require.NoError(t, err)

	comments, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestFileStoreDeleteAll(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	_, err := s.Append(ctx, model.Comment{ProjectID: "1", Name: "A"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAll(ctx))

	comments, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// The file itself must hold a JSON array, not be removed.
	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStoreWritesPrettyPrintedArray(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	_, err := s.Append(ctx, model.Comment{ProjectID: "9", Name: "C", Comment: "x", Timestamp: "2024-02-02T00:00:00Z"})
	require.NoError(t, err)

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")

	var parsed []model.Comment
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "9", parsed[0].ProjectID)
}

func TestFileStoreListCorruptFile(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0o755))
	require.NoError(t, os.WriteFile(s.path, []byte("{not an array"), 0o644))

	_, err := s.List(context.Background())
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	in := model.Comment{
		ProjectID: "RT-1",
		Name:      "Quote \"tester\"",
		Comment:   "line one\nline two",
		Timestamp: "2024-03-15T08:30:00Z",
	}

	_, err := s.Append(ctx, in)
	require.NoError(t, err)

	out, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}
