/*
Package storagemodels defines the query and streaming types shared by the
façade and the datastore backends.

QueryParams:
A bounded query over one kind, built the way a store query is built:

	q := storagemodels.NewQuery("Book").WithLimit(10).WithStart(cursor)
	records, info, err := client.RunQuery(ctx, q)
	next := info.NextCursor() // "" once the kind is exhausted

StreamResult:
Results from streaming every page of a kind:

	type StreamResult struct {
	    Item  entity.Entity // The translated entity
	    Error error         // Terminal error, if any
	    Meta  StreamMeta    // Metadata about this item
	}

StreamOptions:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}

Cursors are opaque strings; only the backend that produced one can read it.
*/
package storagemodels
