/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"context"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/storagemodels"
)

// Kind is a Store bound to one kind.
type Kind struct {
	store *Store
	name  string
}

// Kind returns a handle for kind.
func (s *Store) Kind(kind string) *Kind {
	return &Kind{store: s, name: kind}
}

// Name returns the bound kind.
func (k *Kind) Name() string {
	return k.name
}

func (k *Kind) Create(ctx context.Context, data entity.Entity) (entity.Entity, error) {
	return k.store.Create(ctx, k.name, data)
}

func (k *Kind) Read(ctx context.Context, id string) (entity.Entity, error) {
	return k.store.Read(ctx, k.name, id)
}

func (k *Kind) Update(ctx context.Context, id string, data entity.Entity) (entity.Entity, error) {
	return k.store.Update(ctx, k.name, id, data)
}

func (k *Kind) Delete(ctx context.Context, id string) error {
	return k.store.Delete(ctx, k.name, id)
}

func (k *Kind) ReserveID(ctx context.Context) (int64, error) {
	return k.store.ReserveID(ctx, k.name)
}

func (k *Kind) List(ctx context.Context, limit int, cursor string) ([]entity.Entity, string, error) {
	return k.store.List(ctx, k.name, limit, cursor)
}

func (k *Kind) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	return k.store.Stream(ctx, k.name, opts...)
}
