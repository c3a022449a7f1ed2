package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"sgf_keeper/internal/domain/record"
	sgferrors "sgf_keeper/internal/errors"
)

// RecordMapStorage keeps records and the sgf cache in memory. It is used
// when no MONGO_URI is configured.
type RecordMapStorage struct {
	mu      sync.RWMutex
	records map[string]record.Record
	cache   map[string]string
}

func NewMapRecordStorage() *RecordMapStorage {
	return &RecordMapStorage{
		records: make(map[string]record.Record),
		cache:   make(map[string]string),
	}
}

func (m *RecordMapStorage) NewRecordID() string {
	return uuid.New().String()
}

func (m *RecordMapStorage) PutRecord(_ context.Context, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *RecordMapStorage) GetRecord(_ context.Context, id string) (record.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return record.Record{}, sgferrors.ErrRecordNotFound
	}
	return rec, nil
}

func (m *RecordMapStorage) ListRecords(_ context.Context, player string, page, limit int) ([]record.Record, int64, error) {
	m.mu.RLock()
	matched := make([]record.Record, 0, len(m.records))
	for _, rec := range m.records {
		if player == "" || rec.PlayerBlack == player || rec.PlayerWhite == player {
			rec.SGF = ""
			matched = append(matched, rec)
		}
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []record.Record{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *RecordMapStorage) DeleteRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return sgferrors.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *RecordMapStorage) CacheSGF(_ context.Context, id string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[id] = text
	return nil
}

func (m *RecordMapStorage) LoadCachedSGF(_ context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.cache[id]
	if !ok {
		return "", sgferrors.ErrRecordNotFound
	}
	return text, nil
}

func (m *RecordMapStorage) DropCachedSGF(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, id)
	return nil
}
