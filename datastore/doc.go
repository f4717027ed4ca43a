/*
Package datastore defines the boundary between kindstore and the managed
document store behind it.

	type Client interface {
	    Get(ctx context.Context, key *entity.Key) (*entity.Record, error)
	    Put(ctx context.Context, rec *entity.Record) (*entity.Key, error)
	    Delete(ctx context.Context, key *entity.Key) error
	    RunQuery(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error)
	}

Keys are built with entity.IDKey, entity.NameKey and entity.IncompleteKey;
queries with storagemodels.NewQuery.

Implementations:
  - ddb: Amazon DynamoDB, one table holding every kind
  - mock: in-memory implementation for tests and local runs

A Client is created once at process start and shared by every caller.
*/
package datastore
