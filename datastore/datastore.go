/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/storagemodels"
)

// Client is the managed document store as seen by the façade.
type Client interface {
	// Get returns the record stored at key, or nil, nil when there is none.
	Get(ctx context.Context, key *entity.Key) (*entity.Record, error)

	// Put replaces the record at rec.Key in full. An incomplete key is
	// completed with a store-assigned numeric ID; the committed key is returned.
	Put(ctx context.Context, rec *entity.Record) (*entity.Key, error)

	Delete(ctx context.Context, key *entity.Key) error

	// RunQuery returns one page of records of q.Kind and where the page ended.
	RunQuery(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error)
}
