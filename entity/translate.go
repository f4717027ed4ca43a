/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"slices"
	"sort"
)

// FromStoreFormat flattens a stored record into an Entity. Properties are
// copied first, Data is overlaid on top, and a complete key always wins for
// the id property. It never fails; a nil record yields an empty Entity.
func FromStoreFormat(rec *Record) Entity {
	out := make(Entity)
	if rec == nil {
		return out
	}

	for _, p := range rec.Properties {
		out[p.Name] = p.Value
	}
	for name, v := range rec.Data {
		out[name] = v
	}

	if rec.Key != nil && !rec.Key.Incomplete() {
		out[IDProperty] = rec.Key.IDValue()
	}
	return out
}

// ToStoreFormat converts an Entity into properties ordered by name. Nil
// values and the id property are skipped. A property is excluded from
// indexes iff its name appears in nonIndexed.
func ToStoreFormat(data Entity, nonIndexed ...string) []Property {
	names := make([]string, 0, len(data))
	for name, v := range data {
		if v == nil || name == IDProperty {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	props := make([]Property, 0, len(names))
	for _, name := range names {
		props = append(props, Property{
			Name:               name,
			Value:              data[name],
			ExcludeFromIndexes: slices.Contains(nonIndexed, name),
		})
	}
	return props
}
