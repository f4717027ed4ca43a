/*
Package entity translates between the application's flat entity representation
and the store's keyed-property records.

Read direction:

	rec := &entity.Record{
	    Key:        entity.IDKey("Book", 42),
	    Properties: []entity.Property{{Name: "title", Value: "Dune"}},
	}
	e := entity.FromStoreFormat(rec) // {"title": "Dune", "id": int64(42)}

Write direction:

	props := entity.ToStoreFormat(e, "description")

The id property is synthesized from the key on read and is never written as a
property; the key travels separately. Properties with nil values are skipped on
write, and output order is sorted by property name so results are reproducible.
*/
package entity
