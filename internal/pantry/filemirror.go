package pantry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erazemk/shramba/internal/model"
)

// FileMirror persists the collection as a JSON array in a single file. Every
// mutation rewrites the full snapshot.
type FileMirror struct {
	path string
}

// NewFileMirror creates a mirror backed by the given file path.
func NewFileMirror(path string) *FileMirror {
	return &FileMirror{path: path}
}

// Load reads the persisted snapshot. A missing file is an empty collection.
// An undecodable file is also treated as an empty collection, with a logged
// warning, so a corrupt snapshot never blocks startup.
func (m *FileMirror) Load(_ context.Context) ([]model.Item, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("snapshot not decodable, starting empty", "path", m.path, "error", err)
		return nil, nil
	}
	return items, nil
}

// Put writes the full snapshot.
func (m *FileMirror) Put(ctx context.Context, _ model.Item, snapshot []model.Item) error {
	return m.save(snapshot)
}

// Delete writes the full snapshot.
func (m *FileMirror) Delete(ctx context.Context, _ string, snapshot []model.Item) error {
	return m.save(snapshot)
}

// save writes the snapshot atomically: temp file in the same directory,
// then rename, so a crash mid-write cannot corrupt the previous snapshot.
func (m *FileMirror) save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), m.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
