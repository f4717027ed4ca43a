/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Client for testing
package mock

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/storagemodels"
)

// DataStore is an in-memory datastore.Client. Numeric IDs are allocated
// sequentially per kind starting at 1. Cursors are base-10 offsets.
type DataStore struct {
	mu          sync.RWMutex
	data        map[string]*entity.Record
	nextID      map[string]int64
	queryFunc   func(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error)
	getError    error
	putError    error
	deleteError error
	queryError  error
}

// New creates a new empty mock DataStore
func New() *DataStore {
	return &DataStore{
		data:   make(map[string]*entity.Record),
		nextID: make(map[string]int64),
	}
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore) WithQueryFunc(f func(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error)) *DataStore {
	m.queryFunc = f
	return m
}

// WithGetError makes Get operations return an error
func (m *DataStore) WithGetError(err error) *DataStore {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore) WithPutError(err error) *DataStore {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	m.deleteError = err
	return m
}

// WithQueryError makes RunQuery operations return an error
func (m *DataStore) WithQueryError(err error) *DataStore {
	m.queryError = err
	return m
}

// Get retrieves the record at key, or nil when absent
func (m *DataStore) Get(ctx context.Context, key *entity.Key) (*entity.Record, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if key == nil || key.Incomplete() {
		return nil, errors.NewValidationError("key", "complete key required")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.data[storageKey(key)]
	if !exists {
		return nil, nil
	}
	return cloneRecord(rec), nil
}

// Put replaces the record at rec.Key, allocating an ID for incomplete keys
func (m *DataStore) Put(ctx context.Context, rec *entity.Record) (*entity.Key, error) {
	if m.putError != nil {
		return nil, m.putError
	}
	if rec == nil || rec.Key == nil {
		return nil, errors.NewValidationError("key", "record key required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := *rec.Key
	if key.Incomplete() {
		m.nextID[key.Kind]++
		key.ID = m.nextID[key.Kind]
	} else if key.Name == "" && key.ID > m.nextID[key.Kind] {
		// caller-supplied IDs are never handed out again
		m.nextID[key.Kind] = key.ID
	}

	stored := cloneRecord(rec)
	stored.Key = &key
	m.data[storageKey(&key)] = stored

	committed := key
	return &committed, nil
}

// Delete removes the record at key. Deleting an absent key is not an error.
func (m *DataStore) Delete(ctx context.Context, key *entity.Key) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if key == nil || key.Incomplete() {
		return errors.NewValidationError("key", "complete key required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, storageKey(key))
	return nil
}

// RunQuery returns one page of q.Kind ordered by key
func (m *DataStore) RunQuery(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error) {
	if m.queryError != nil {
		return nil, storagemodels.QueryInfo{}, m.queryError
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, q)
	}

	offset := 0
	if q.StartCursor != "" {
		n, err := strconv.Atoi(q.StartCursor)
		if err != nil || n < 0 {
			return nil, storagemodels.QueryInfo{}, errors.NewValidationError("cursor", fmt.Sprintf("malformed cursor %q", q.StartCursor))
		}
		offset = n
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []*entity.Record
	for _, rec := range m.data {
		if rec.Key.Kind == q.Kind {
			all = append(all, rec)
		}
	}
	sort.Slice(all, func(i, j int) bool { return lessKey(all[i].Key, all[j].Key) })

	if offset > len(all) {
		offset = len(all)
	}
	end := len(all)
	if q.Limit > 0 && offset+q.Limit < end {
		end = offset + q.Limit
	}

	page := make([]*entity.Record, 0, end-offset)
	for _, rec := range all[offset:end] {
		page = append(page, cloneRecord(rec))
	}

	info := storagemodels.QueryInfo{
		EndCursor:   strconv.Itoa(end),
		MoreResults: end < len(all),
	}
	return page, info, nil
}

// Helper methods for testing

// Count returns the number of stored records
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Records returns copies of every stored record of kind
func (m *DataStore) Records(kind string) []*entity.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*entity.Record
	for _, rec := range m.data {
		if rec.Key.Kind == kind {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessKey(out[i].Key, out[j].Key) })
	return out
}

// Clear removes all data and resets ID allocation
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*entity.Record)
	m.nextID = make(map[string]int64)
}

func storageKey(key *entity.Key) string {
	if key.Name != "" {
		return key.Kind + "|name|" + key.Name
	}
	return key.Kind + "|id|" + strconv.FormatInt(key.ID, 10)
}

// lessKey orders numeric IDs before names.
func lessKey(a, b *entity.Key) bool {
	if (a.Name == "") != (b.Name == "") {
		return a.Name == ""
	}
	if a.Name != "" {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func cloneRecord(rec *entity.Record) *entity.Record {
	out := &entity.Record{Properties: slices.Clone(rec.Properties)}
	if rec.Key != nil {
		k := *rec.Key
		out.Key = &k
	}
	if rec.Data != nil {
		out.Data = make(entity.Entity, len(rec.Data))
		for name, v := range rec.Data {
			out.Data[name] = v
		}
	}
	return out
}
