/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sort"
	"strconv"
	"sync"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// datastore makes. It understands only the expressions this package builds.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	err   error

	lastQuery *sdk.QueryInput
	lastPut   *sdk.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func sval(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func fakeKey(key map[string]types.AttributeValue) string {
	return sval(key[kindAttr]) + "|" + sval(key[idAttr])
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[fakeKey(in.Key)]
	if !ok {
		return &sdk.GetItemOutput{}, nil
	}
	return &sdk.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.lastPut = in
	f.items[fakeKey(in.Item)] = copyItem(in.Item)
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, fakeKey(in.Key))
	return &sdk.DeleteItemOutput{}, nil
}

// UpdateItem supports "ADD #next :one" only.
func (f *fakeDynamo) UpdateItem(ctx context.Context, in *sdk.UpdateItemInput, _ ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := fakeKey(in.Key)
	item, ok := f.items[k]
	if !ok {
		item = copyItem(in.Key)
	}
	attr := in.ExpressionAttributeNames["#next"]
	var current int64
	if n, ok := item[attr].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	step, _ := strconv.ParseInt(in.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN).Value, 10, 64)
	next := &types.AttributeValueMemberN{Value: strconv.FormatInt(current+step, 10)}
	item[attr] = next
	f.items[k] = item
	return &sdk.UpdateItemOutput{Attributes: map[string]types.AttributeValue{attr: next}}, nil
}

// Query supports "#kind = :kind" with Limit and ExclusiveStartKey, and like
// DynamoDB returns a LastEvaluatedKey whenever it stopped at the limit.
func (f *fakeDynamo) Query(ctx context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = in

	kind := sval(in.ExpressionAttributeValues[":kind"])
	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if sval(item[kindAttr]) == kind {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return sval(matched[i][idAttr]) < sval(matched[j][idAttr]) })

	start := ""
	if in.ExclusiveStartKey != nil {
		start = sval(in.ExclusiveStartKey[idAttr])
	}

	out := &sdk.QueryOutput{}
	for _, item := range matched {
		if start != "" && sval(item[idAttr]) <= start {
			continue
		}
		if in.Limit != nil && int32(len(out.Items)) == *in.Limit {
			break
		}
		out.Items = append(out.Items, copyItem(item))
	}
	if in.Limit != nil && int32(len(out.Items)) == *in.Limit && len(out.Items) > 0 {
		last := out.Items[len(out.Items)-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			kindAttr: last[kindAttr],
			idAttr:   last[idAttr],
		}
	}
	return out, nil
}
