package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory implements Store in process memory with the same observable
// semantics as PG. It backs unit tests for services and handlers.
type Memory struct {
	mu    sync.RWMutex
	docs  map[string]map[string]Document
	order map[string][]string
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
		now:   time.Now,
	}
}

func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (m *Memory) Insert(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	stored := copyDoc(clean(doc))
	stored["created_at"] = m.now().UTC().Format(time.RFC3339)

	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]Document)
	}
	m.docs[collection][id] = stored
	m.order[collection] = append(m.order[collection], id)
	return id, nil
}

func (m *Memory) FindAll(_ context.Context, collection string, filter Document) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := []Document{}
	for _, id := range m.order[collection] {
		doc, ok := m.docs[collection][id]
		if !ok || !matches(doc, filter) {
			continue
		}
		out := copyDoc(doc)
		out["id"] = id
		docs = append(docs, out)
	}
	return docs, nil
}

func matches(doc, filter Document) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func (m *Memory) FindByID(_ context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyDoc(doc)
	out["id"] = id
	return out, nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields Document) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[collection][id]
	if !ok {
		return false, nil
	}
	patch := clean(fields)
	changed := false
	for k, v := range patch {
		if !reflect.DeepEqual(doc[k], v) {
			changed = true
			break
		}
	}
	if !changed {
		return false, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	doc["updated_at"] = m.now().UTC().Format(time.RFC3339)
	return true, nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[collection][id]; !ok {
		return false, nil
	}
	delete(m.docs[collection], id)
	return true, nil
}
