/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/suparena/kindstore/datastore"
	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/registry"
	"github.com/suparena/kindstore/storagemodels"
)

// DefaultLimit is the List page size used when the caller passes none.
const DefaultLimit = 10

// Store is the entity access façade. It holds no state besides the shared
// client and is safe for concurrent use.
type Store struct {
	client       datastore.Client
	logger       *slog.Logger
	defaultLimit int
	unindexed    func(kind string) []string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLimit sets the page size List uses when limit <= 0.
func WithDefaultLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithUnindexed replaces the lookup of non-indexed property names.
// The default is registry.Unindexed.
func WithUnindexed(fn func(kind string) []string) Option {
	return func(s *Store) {
		if fn != nil {
			s.unindexed = fn
		}
	}
}

// New creates a Store over client.
func New(client datastore.Client, opts ...Option) *Store {
	s := &Store{
		client:       client,
		logger:       slog.Default(),
		defaultLimit: DefaultLimit,
		unindexed:    registry.Unindexed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores data under a newly allocated key and returns it with the
// store-assigned id attached.
func (s *Store) Create(ctx context.Context, kind string, data entity.Entity) (entity.Entity, error) {
	return s.Update(ctx, kind, "", data)
}

// Read returns the entity stored at (kind, id). It fails with a NotFound
// error (code 404) when nothing is stored there.
func (s *Store) Read(ctx context.Context, kind, id string) (entity.Entity, error) {
	key, err := idKey(kind, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.client.Get(ctx, key)
	if err != nil {
		return nil, s.clientError("read", kind, id, err)
	}
	if rec == nil {
		return nil, errors.NewNotFoundError(kind, id)
	}
	return entity.FromStoreFormat(rec), nil
}

// Update replaces the record at (kind, id) with data, or allocates a new key
// when id is empty. The whole record is replaced; fields missing from data
// are gone afterwards. On success data["id"] is set from the committed key,
// overriding any id the caller put there, and data is returned.
func (s *Store) Update(ctx context.Context, kind, id string, data entity.Entity) (entity.Entity, error) {
	key := entity.IncompleteKey(kind)
	if id != "" {
		var err error
		if key, err = idKey(kind, id); err != nil {
			return nil, err
		}
	}
	if data == nil {
		data = entity.Entity{}
	}

	rec := &entity.Record{
		Key:        key,
		Properties: entity.ToStoreFormat(data, s.unindexed(kind)...),
	}
	committed, err := s.client.Put(ctx, rec)
	if err != nil {
		return nil, s.clientError("update", kind, id, err)
	}

	data[entity.IDProperty] = committed.IDValue()
	s.logger.Debug("entity saved", "kind", kind, "key", committed.String())
	return data, nil
}

// Delete removes the record at (kind, id).
func (s *Store) Delete(ctx context.Context, kind, id string) error {
	key, err := idKey(kind, id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, key); err != nil {
		return s.clientError("delete", kind, id, err)
	}
	s.logger.Debug("entity deleted", "kind", kind, "id", id)
	return nil
}

// ReserveID saves an empty record to obtain a store-assigned id before the
// caller has the full entity. A later Update with that id fills it in.
func (s *Store) ReserveID(ctx context.Context, kind string) (int64, error) {
	committed, err := s.client.Put(ctx, &entity.Record{Key: entity.IncompleteKey(kind)})
	if err != nil {
		return 0, s.clientError("reserve", kind, "", err)
	}
	return committed.ID, nil
}

// List returns up to limit entities of kind starting at cursor, and the
// cursor of the next page, which is empty once the kind is exhausted.
// limit <= 0 uses the default limit. No ordering is applied.
func (s *Store) List(ctx context.Context, kind string, limit int, cursor string) ([]entity.Entity, string, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	q := storagemodels.NewQuery(kind).WithLimit(limit).WithStart(cursor)
	recs, info, err := s.client.RunQuery(ctx, q)
	if err != nil {
		return nil, "", s.clientError("list", kind, "", err)
	}

	entities := make([]entity.Entity, 0, len(recs))
	for _, rec := range recs {
		entities = append(entities, entity.FromStoreFormat(rec))
	}
	return entities, info.NextCursor(), nil
}

// clientError classifies a client failure. Input rejected by the client is
// returned as is; anything else is logged and wrapped as a backend error.
func (s *Store) clientError(op, kind, id string, err error) error {
	if errors.IsValidationError(err) {
		s.logger.Debug(op+" rejected", "kind", kind, "id", id, "error", err)
		return err
	}
	s.logger.Error(op+" failed", "kind", kind, "id", id, "error", err)
	return errors.NewBackendError(op, kind, err)
}

// idKey parses a base-10 id into a numeric key.
func idKey(kind, id string) (*entity.Key, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError("id", "must be a base-10 integer, got "+strconv.Quote(id))
	}
	if n <= 0 {
		return nil, errors.NewValidationError("id", "must be positive, got "+id)
	}
	return entity.IDKey(kind, n), nil
}
