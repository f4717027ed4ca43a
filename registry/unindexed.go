/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"slices"
	"sort"
	"sync"
)

// DefaultUnindexed lists properties excluded from indexes for every kind.
var DefaultUnindexed = []string{"description"}

// unindexedRegistry maps a kind to the extra properties it never indexes.
var (
	unindexedRegistry = make(map[string][]string)
	mu                sync.RWMutex
)

// RegisterUnindexed marks names as non-indexed for kind, on top of
// DefaultUnindexed. Repeated calls accumulate.
func RegisterUnindexed(kind string, names ...string) {
	mu.Lock()
	defer mu.Unlock()

	current := unindexedRegistry[kind]
	for _, n := range names {
		if !slices.Contains(current, n) {
			current = append(current, n)
		}
	}
	unindexedRegistry[kind] = current
}

// Unindexed returns the sorted, de-duplicated non-indexed property names
// for kind, DefaultUnindexed included.
func Unindexed(kind string) []string {
	mu.RLock()
	defer mu.RUnlock()

	names := slices.Clone(DefaultUnindexed)
	for _, n := range unindexedRegistry[kind] {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// ResetUnindexed drops every registration for kind.
func ResetUnindexed(kind string) {
	mu.Lock()
	defer mu.Unlock()
	delete(unindexedRegistry, kind)
}
