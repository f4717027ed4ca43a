/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
)

// DefaultAllocatorKind is the partition holding per-kind ID counters.
const DefaultAllocatorKind = "_ids"

// API is the subset of the DynamoDB client used by DynamodbDataStore.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

var _ API = (*sdk.Client)(nil)

// Options configures the DynamoDB client and table.
type Options struct {
	Region    string
	AccessKey string
	SecretKey string
	Table     string
	// Endpoint overrides the service endpoint, e.g. DynamoDB Local.
	Endpoint string
	// AllocatorKind defaults to DefaultAllocatorKind.
	AllocatorKind string
	Logger        *slog.Logger
}

// DynamodbDataStore implements datastore.Client on a single DynamoDB table
// with partition key "_kind" and sort key "_id", both strings.
type DynamodbDataStore struct {
	api           API
	tableName     string
	allocatorKind string
	logger        *slog.Logger
}

// Option configures a DynamodbDataStore.
type Option func(*DynamodbDataStore)

// WithAllocatorKind sets the partition used for ID counters.
func WithAllocatorKind(kind string) Option {
	return func(d *DynamodbDataStore) {
		if kind != "" {
			d.allocatorKind = kind
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DynamodbDataStore) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when AccessKey is set; otherwise the default credential chain applies.
func NewDynamoDBClient(ctx context.Context, opts Options) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return client, nil
}

// New constructs a DynamodbDataStore over an existing client.
func New(api API, tableName string, opts ...Option) *DynamodbDataStore {
	d := &DynamodbDataStore{
		api:           api,
		tableName:     tableName,
		allocatorKind: DefaultAllocatorKind,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open creates the DynamoDB client described by opts and wraps it.
func Open(ctx context.Context, opts Options) (*DynamodbDataStore, error) {
	if opts.Table == "" {
		return nil, errors.NewValidationError("table", "DynamoDB table name is required")
	}
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	d := New(client, opts.Table, WithAllocatorKind(opts.AllocatorKind), WithLogger(opts.Logger))
	d.logger.Info("dynamodb datastore ready", "table", opts.Table, "region", opts.Region)
	return d, nil
}

// Get retrieves the record at key. It returns nil, nil when no item exists.
func (d *DynamodbDataStore) Get(ctx context.Context, key *entity.Key) (*entity.Record, error) {
	keyMap, err := d.itemKey(key)
	if err != nil {
		return nil, err
	}

	out, err := d.api.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	return itemToRecord(out.Item)
}

// Put replaces the item at rec.Key. Incomplete keys are completed from the
// kind's counter before the write.
func (d *DynamodbDataStore) Put(ctx context.Context, rec *entity.Record) (*entity.Key, error) {
	if rec == nil || rec.Key == nil {
		return nil, errors.NewValidationError("key", "record key required")
	}
	if err := d.checkKind(rec.Key.Kind); err != nil {
		return nil, err
	}

	key := *rec.Key
	if key.Incomplete() {
		id, err := d.allocateID(ctx, key.Kind)
		if err != nil {
			return nil, err
		}
		key.ID = id
	}

	item, err := recordToItem(&key, rec)
	if err != nil {
		return nil, err
	}

	_, err = d.api.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}

	d.logger.Debug("put item", "key", key.String(), "attributes", len(item))
	return &key, nil
}

// Delete removes the item at key. Deleting an absent item is not an error.
func (d *DynamodbDataStore) Delete(ctx context.Context, key *entity.Key) error {
	keyMap, err := d.itemKey(key)
	if err != nil {
		return err
	}

	_, err = d.api.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func (d *DynamodbDataStore) itemKey(key *entity.Key) (map[string]types.AttributeValue, error) {
	if key == nil || key.Incomplete() {
		return nil, errors.NewValidationError("key", "complete key required")
	}
	if err := d.checkKind(key.Kind); err != nil {
		return nil, err
	}
	sk, err := encodeID(key)
	if err != nil {
		return nil, err
	}
	return primaryKey(key.Kind, sk), nil
}

func (d *DynamodbDataStore) checkKind(kind string) error {
	if kind == "" {
		return errors.NewValidationError("kind", "kind is required")
	}
	if kind == d.allocatorKind {
		return errors.NewValidationError("kind", fmt.Sprintf("kind %q is reserved for ID allocation", kind))
	}
	return nil
}

func primaryKey(kind, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		kindAttr: &types.AttributeValueMemberS{Value: kind},
		idAttr:   &types.AttributeValueMemberS{Value: sk},
	}
}
