// Package filestore keeps user documents in flat JSON files, one file per
// document kind holding every user's document keyed by username.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/utils"
)

// DirPermission is used when creating the data directory.
const DirPermission = 0o755

// Documents is a file-backed database.Documents backend.
type Documents struct {
	dir string
	mu  sync.Mutex
}

// New creates the data directory if needed and returns the backend.
func New(dir string) (*Documents, error) {
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Documents{dir: dir}, nil
}

// NewStore returns a DocumentStore backed by files under dir.
func NewStore(dir string) (*database.DocumentStore, error) {
	docs, err := New(dir)
	if err != nil {
		return nil, err
	}
	return database.NewDocumentStore(docs), nil
}

func (d *Documents) path(kind database.Kind) string {
	return filepath.Join(d.dir, string(kind)+".json")
}

// readAll loads one kind file. A missing file is an empty set.
func (d *Documents) readAll(kind database.Kind) (map[string]json.RawMessage, error) {
	all := map[string]json.RawMessage{}
	err := utils.LoadJSON(d.path(kind), &all)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string]json.RawMessage{}
	}
	return all, nil
}

func (d *Documents) Get(_ context.Context, userID string, kind database.Kind) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	all, err := d.readAll(kind)
	if err != nil {
		return nil, err
	}
	body, ok := all[userID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return body, nil
}

func (d *Documents) Put(_ context.Context, userID string, kind database.Kind, body []byte) error {
	if !json.Valid(body) {
		return fmt.Errorf("%s: body for %s is not valid JSON", database.ErrMsgFailedToEncodeDocument, kind)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	all, err := d.readAll(kind)
	if err != nil {
		return err
	}
	all[userID] = json.RawMessage(append([]byte(nil), body...))
	return utils.SaveJSON(d.path(kind), all)
}

// Ping verifies the data directory is still reachable.
func (d *Documents) Ping(context.Context) error {
	info, err := os.Stat(d.dir)
	if err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", d.dir)
	}
	return nil
}

func (d *Documents) Close() error { return nil }
