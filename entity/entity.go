/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"
	"strconv"
)

// IDProperty is the property synthesized from the key on read.
const IDProperty = "id"

// Entity is the application's flat representation of a stored record.
type Entity map[string]any

// ID returns the entity's id property and whether it is set.
func (e Entity) ID() (any, bool) {
	v, ok := e[IDProperty]
	return v, ok
}

// Key identifies a record within a kind. A key with neither ID nor Name is
// incomplete; the store assigns a numeric ID when it is saved.
type Key struct {
	Kind string
	ID   int64
	Name string
}

// IDKey builds a key with a numeric identifier.
func IDKey(kind string, id int64) *Key {
	return &Key{Kind: kind, ID: id}
}

// NameKey builds a key with a caller-supplied string identifier.
func NameKey(kind, name string) *Key {
	return &Key{Kind: kind, Name: name}
}

// IncompleteKey builds a key the store will complete on save.
func IncompleteKey(kind string) *Key {
	return &Key{Kind: kind}
}

// Incomplete reports whether the store still has to assign an identifier.
func (k *Key) Incomplete() bool {
	return k.ID == 0 && k.Name == ""
}

// IDValue returns the identifier component: the int64 ID or the Name.
func (k *Key) IDValue() any {
	if k.Name != "" {
		return k.Name
	}
	return k.ID
}

// String renders the identifier component for messages and logs.
func (k *Key) String() string {
	if k.Name != "" {
		return fmt.Sprintf("%s/%q", k.Kind, k.Name)
	}
	return k.Kind + "/" + strconv.FormatInt(k.ID, 10)
}

// Property is one stored (name, value, excludeFromIndexes) triple.
type Property struct {
	Name               string
	Value              any
	ExcludeFromIndexes bool
}

// Record is the store's native representation. Data is the optional nested
// data object; when present its entries take precedence over Properties.
type Record struct {
	Key        *Key
	Properties []Property
	Data       Entity
}
