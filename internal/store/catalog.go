package store

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DatasetExt is the filename suffix that marks a catalog entry as a
// GeoJSON dataset.
const DatasetExt = ".geojson"

// Catalog is the on-disk GeoJSON dataset catalog: a directory of
// *.geojson files plus a single-line pointer file naming the active
// one. Filenames are stored verbatim as supplied by the caller.
type Catalog struct {
	dir        string
	activePath string
}

// NewCatalog creates a catalog over dir with the active pointer kept at
// activePath. Neither needs to exist yet.
func NewCatalog(dir, activePath string) *Catalog {
	return &Catalog{dir: dir, activePath: activePath}
}

// List returns the dataset filenames in directory enumeration order.
// A missing catalog directory yields an empty list.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read dir")
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), DatasetExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ActiveFilename returns the filename recorded in the pointer file, or
// "" when no dataset has been activated.
func (c *Catalog) ActiveFilename(ctx context.Context) (string, error) {
	data, err := os.ReadFile(c.activePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", eris.Wrap(err, "catalog: read active pointer")
	}
	return strings.TrimSpace(string(data)), nil
}

// Active returns the active dataset's filename and raw content. When no
// pointer is set it returns ("", nil, nil). A pointer naming a missing
// or unreadable file is an error; the pointer can dangle after external
// deletion of its target.
func (c *Catalog) Active(ctx context.Context) (string, []byte, error) {
	name, err := c.ActiveFilename(ctx)
	if err != nil {
		return "", nil, err
	}
	if name == "" {
		return "", nil, nil
	}

	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return "", nil, eris.Wrapf(err, "catalog: read active dataset %s", name)
	}
	return name, data, nil
}

// SetActive points the catalog at filename. The target must already
// exist in the catalog; a missing target returns ErrDatasetNotFound and
// leaves the pointer unchanged. Only existence is checked, not content.
func (c *Catalog) SetActive(ctx context.Context, filename string) error {
	if _, err := os.Stat(filepath.Join(c.dir, filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrDatasetNotFound
		}
		return eris.Wrapf(err, "catalog: stat dataset %s", filename)
	}

	if err := os.WriteFile(c.activePath, []byte(filename), 0o644); err != nil {
		return eris.Wrap(err, "catalog: write active pointer")
	}
	return nil
}

// Save stores an uploaded dataset under the caller-supplied filename,
// replacing any existing file of the same name.
func (c *Catalog) Save(ctx context.Context, filename string, r io.Reader) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return eris.Wrap(err, "catalog: create dir")
	}

	f, err := os.Create(filepath.Join(c.dir, filename))
	if err != nil {
		return eris.Wrapf(err, "catalog: create dataset %s", filename)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return eris.Wrapf(err, "catalog: write dataset %s", filename)
	}
	return nil
}

// DeleteAll removes every dataset file and then the active pointer. A
// failed dataset unlink aborts; a failed pointer unlink is logged but
// not fatal since an absent pointer is a legitimate state.
func (c *Catalog) DeleteAll(ctx context.Context) error {
	names, err := c.List(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil {
			return eris.Wrapf(err, "catalog: remove dataset %s", name)
		}
	}

	if err := os.Remove(c.activePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Warn("catalog: remove active pointer failed", zap.Error(err))
	}
	return nil
}
