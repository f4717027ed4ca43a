/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
)

// Reserved attribute names. User properties may not use them.
const (
	kindAttr      = "_kind"
	idAttr        = "_id"
	unindexedAttr = "_unindexed"

	namePrefix = "name#"
)

func isReserved(name string) bool {
	return name == kindAttr || name == idAttr || name == unindexedAttr
}

// encodeID renders the sort key. Numeric IDs are zero-padded to 20 digits so
// that string order matches numeric order; names carry a "name#" prefix.
func encodeID(key *entity.Key) (string, error) {
	if key.Name != "" {
		return namePrefix + key.Name, nil
	}
	if key.ID < 0 {
		return "", errors.NewValidationError("id", fmt.Sprintf("negative id %d", key.ID))
	}
	return fmt.Sprintf("%020d", key.ID), nil
}

func decodeID(kind, sk string) (*entity.Key, error) {
	if name, ok := strings.CutPrefix(sk, namePrefix); ok {
		return entity.NameKey(kind, name), nil
	}
	id, err := strconv.ParseInt(sk, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed %s attribute %q: %w", idAttr, sk, err)
	}
	return entity.IDKey(kind, id), nil
}

// recordToItem builds the full item written for key. Data entries are
// written after Properties and win on conflict; nil values are skipped.
func recordToItem(key *entity.Key, rec *entity.Record) (map[string]types.AttributeValue, error) {
	sk, err := encodeID(key)
	if err != nil {
		return nil, err
	}
	item := primaryKey(key.Kind, sk)

	var unindexed []string
	put := func(name string, value any, excluded bool) error {
		if isReserved(name) {
			return errors.NewValidationError(name, "property name is reserved")
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal property %q: %w", name, err)
		}
		item[name] = av
		if excluded {
			unindexed = append(unindexed, name)
		}
		return nil
	}

	for _, p := range rec.Properties {
		if err := put(p.Name, p.Value, p.ExcludeFromIndexes); err != nil {
			return nil, err
		}
	}
	for name, v := range rec.Data {
		if v == nil || name == entity.IDProperty {
			continue
		}
		if err := put(name, v, false); err != nil {
			return nil, err
		}
	}

	if len(unindexed) > 0 {
		sort.Strings(unindexed)
		item[unindexedAttr] = &types.AttributeValueMemberSS{Value: unindexed}
	}
	return item, nil
}

// itemToRecord is the inverse of recordToItem. Properties come back sorted
// by name without the write-only unindexed flag.
func itemToRecord(item map[string]types.AttributeValue) (*entity.Record, error) {
	var kind, sk string
	if err := attributevalue.Unmarshal(item[kindAttr], &kind); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", kindAttr, err)
	}
	if err := attributevalue.Unmarshal(item[idAttr], &sk); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", idAttr, err)
	}
	key, err := decodeID(kind, sk)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(item))
	for name := range item {
		if !isReserved(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	dec := attributevalue.NewDecoder(func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	rec := &entity.Record{Key: key, Properties: make([]entity.Property, 0, len(names))}
	for _, name := range names {
		var v any
		if err := dec.Decode(item[name], &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property %q: %w", name, err)
		}
		rec.Properties = append(rec.Properties, entity.Property{Name: name, Value: fromNumbers(v)})
	}
	return rec, nil
}

// fromNumbers replaces decoded DynamoDB numbers with int64 when they are
// integral and fit, float64 otherwise, descending into maps and lists.
func fromNumbers(v any) any {
	switch t := v.(type) {
	case attributevalue.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []attributevalue.Number:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = fromNumbers(n)
		}
		return out
	case map[string]any:
		for k, e := range t {
			t[k] = fromNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fromNumbers(e)
		}
		return t
	}
	return v
}
