/*
Package registry records which properties of a kind are stored without
indexes.

Every kind excludes DefaultUnindexed ("description") from indexes. Kinds with
other large or opaque properties add to that list during initialization:

	func init() {
	    registry.RegisterUnindexed("Book", "synopsis", "coverImage")
	}

	registry.Unindexed("Book") // [coverImage description synopsis]

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
