/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/suparena/kindstore/config"
	"github.com/suparena/kindstore/datastore"
	"github.com/suparena/kindstore/datastore/ddb"
	"github.com/suparena/kindstore/datastore/mock"
)

// Opener builds the datastore client named by a backend.
type Opener func(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.Client, error)

// backendRegistry is a thread-safe map of backend name to Opener.
type backendRegistry struct {
	mu      sync.RWMutex
	openers map[string]Opener
}

var backends = &backendRegistry{openers: make(map[string]Opener)}

func init() {
	RegisterBackend(config.BackendDynamoDB, openDynamoDB)
	RegisterBackend(config.BackendMemory, func(context.Context, config.Config, *slog.Logger) (datastore.Client, error) {
		return mock.New(), nil
	})
}

// RegisterBackend makes a backend available to OpenClient under name.
func RegisterBackend(name string, fn Opener) error {
	backends.mu.Lock()
	defer backends.mu.Unlock()

	if _, exists := backends.openers[name]; exists {
		return fmt.Errorf("backend %q already registered", name)
	}
	backends.openers[name] = fn
	return nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()

	names := make([]string, 0, len(backends.openers))
	for name := range backends.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenClient builds the client for cfg.Backend.
func OpenClient(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.Client, error) {
	backends.mu.RLock()
	fn, exists := backends.openers[cfg.Backend]
	backends.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %q not registered", cfg.Backend)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return fn(ctx, cfg, logger)
}

// Open builds the client for cfg and a Store over it. This is meant to run
// once at process start; the Store is then shared.
func Open(ctx context.Context, cfg config.Config, opts ...Option) (*Store, error) {
	s := New(nil, append([]Option{WithDefaultLimit(cfg.DefaultLimit)}, opts...)...)
	client, err := OpenClient(ctx, cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

func openDynamoDB(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.Client, error) {
	store, err := ddb.Open(ctx, ddb.Options{
		Region:        cfg.DynamoDB.Region,
		AccessKey:     cfg.DynamoDB.AccessKey,
		SecretKey:     cfg.DynamoDB.SecretKey,
		Table:         cfg.DynamoDB.Table,
		Endpoint:      cfg.DynamoDB.Endpoint,
		AllocatorKind: cfg.DynamoDB.AllocatorKind,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}
