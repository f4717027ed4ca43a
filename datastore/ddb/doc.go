/*
Package ddb provides a DynamoDB implementation of datastore.Client.

Every kind lives in one table:

	_kind (partition key, S)   the kind name
	_id   (sort key, S)        zero-padded numeric id, or "name#<name>"
	_unindexed (SS)            names written with ExcludeFromIndexes
	<property>                 one top-level attribute per property

Numeric IDs come from a counter item per kind stored under the allocator
kind (default "_ids"), incremented atomically with UpdateItem.

Query pages follow the sort key. The LastEvaluatedKey of a page is handed
out as an opaque base64url cursor:

	store, _ := ddb.Open(ctx, ddb.Options{Region: "us-east-1", Table: "kindstore"})
	recs, info, _ := store.RunQuery(ctx, storagemodels.NewQuery("Book").WithLimit(25))
	next := info.NextCursor()

Endpoint may point at DynamoDB Local for development.
*/
package ddb
