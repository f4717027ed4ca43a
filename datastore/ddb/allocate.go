/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const counterAttr = "next"

// allocateID atomically increments the counter item of kind and returns the
// new value. The first ID of a kind is 1.
func (d *DynamodbDataStore) allocateID(ctx context.Context, kind string) (int64, error) {
	out, err := d.api.UpdateItem(ctx, &sdk.UpdateItemInput{
		TableName:        &d.tableName,
		Key:              primaryKey(d.allocatorKind, kind),
		UpdateExpression: aws.String("ADD #next :one"),
		ExpressionAttributeNames: map[string]string{
			"#next": counterAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", kind, err)
	}

	av, ok := out.Attributes[counterAttr]
	if !ok {
		return 0, errors.New("allocate id: counter missing from UpdateItem response")
	}
	var id int64
	if err := attributevalue.Unmarshal(av, &id); err != nil {
		return 0, fmt.Errorf("failed to unmarshal allocated id: %w", err)
	}
	return id, nil
}
