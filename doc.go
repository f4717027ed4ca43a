/*
Package kindstore provides entity access over a managed document store.

Applications work with flat entities (entity.Entity, a map of property name to
value). kindstore translates them to and from the store's keyed-property
records and wraps the store client in a handful of operations:

  - Create, Read, Update, Delete by kind and base-10 id
  - ReserveID to obtain an id before the entity is assembled
  - List for cursor-based pages, Stream for walking a whole kind

Basic Usage:

	cfg, _ := config.Load("kindstore.yaml")
	store, _ := kindstore.Open(ctx, cfg, kindstore.WithLogger(logger))

	book, _ := store.Create(ctx, "Book", entity.Entity{"title": "Dune"})
	id := fmt.Sprint(book["id"])

	book, err := store.Read(ctx, "Book", id)
	if errors.IsNotFound(err) {
	    // errors.Code(err) == 404
	}

	page, next, _ := store.List(ctx, "Book", 20, "")
	for next != "" {
	    page, next, _ = store.List(ctx, "Book", 20, next)
	}

Update replaces the whole record. The "description" property, and any
property registered with registry.RegisterUnindexed, is stored without an
index.

Durability, indexing, ordering and consistency belong to the store. kindstore
adds no caching, batching or retries, and every client error surfaces as an
errors.BackendError wrapping the original.
*/
package kindstore
