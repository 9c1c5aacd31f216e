package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mindtree/internal/logger"
	"mindtree/internal/model"
)

// FileStore keeps the document as pretty-printed JSON in one file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) model.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.From(ctx).Warn("store.file.read failed, using default document", "path", s.path, "err", err)
		}
		return model.NewDocument()
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.From(ctx).Warn("store.file.corrupt, using default document", "path", s.path, "err", err)
		return model.NewDocument()
	}
	return normalize(doc)
}

func (s *FileStore) Save(ctx context.Context, doc model.Document) error {
	if err := atomicWriteFileJSON(s.path, normalize(doc)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// atomicWriteFileJSON writes to a sibling temp file, syncs it and renames it
// over filePath so readers never see a partial document.
func atomicWriteFileJSON(filePath string, data any) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

var _ DocumentStore = (*FileStore)(nil)
