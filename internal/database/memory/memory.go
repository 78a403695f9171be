// Package memory keeps user documents in process memory. Contents are lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/PetCalendar_Go/internal/database"
	"github.com/osse101/PetCalendar_Go/internal/domain"
)

type docKey struct {
	user string
	kind database.Kind
}

// Documents is an in-memory database.Documents backend.
type Documents struct {
	mu   sync.RWMutex
	docs map[docKey][]byte
}

// New creates an empty in-memory backend.
func New() *Documents {
	return &Documents{docs: make(map[docKey][]byte)}
}

// NewStore returns a DocumentStore backed by process memory.
func NewStore() *database.DocumentStore {
	return database.NewDocumentStore(New())
}

func (d *Documents) Get(_ context.Context, userID string, kind database.Kind) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	body, ok := d.docs[docKey{userID, kind}]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return append([]byte(nil), body...), nil
}

func (d *Documents) Put(_ context.Context, userID string, kind database.Kind, body []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[docKey{userID, kind}] = append([]byte(nil), body...)
	return nil
}

func (d *Documents) Ping(context.Context) error { return nil }

func (d *Documents) Close() error { return nil }
