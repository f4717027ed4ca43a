/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kindstore/entity"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/storagemodels"
)

// cursorKey is the LastEvaluatedKey of a page. The table has no indexes, so
// the primary key is all DynamoDB needs to resume.
type cursorKey struct {
	Kind string `dynamodbav:"_kind" json:"k"`
	ID   string `dynamodbav:"_id" json:"i"`
}

// RunQuery reads one page of q.Kind in sort-key order. DynamoDB reports more
// results whenever it stopped at the limit, so the last page may be empty.
func (d *DynamodbDataStore) RunQuery(ctx context.Context, q *storagemodels.QueryParams) ([]*entity.Record, storagemodels.QueryInfo, error) {
	if err := d.checkKind(q.Kind); err != nil {
		return nil, storagemodels.QueryInfo{}, err
	}

	input := &dynamodb.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": kindAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: q.Kind},
		},
	}
	if q.Limit > 0 {
		input.Limit = aws.Int32(int32(min(q.Limit, math.MaxInt32)))
	}
	if q.StartCursor != "" {
		start, err := decodeCursor(q.Kind, q.StartCursor)
		if err != nil {
			return nil, storagemodels.QueryInfo{}, err
		}
		input.ExclusiveStartKey = start
	}

	out, err := d.api.Query(ctx, input)
	if err != nil {
		return nil, storagemodels.QueryInfo{}, fmt.Errorf("query error: %w", err)
	}

	records := make([]*entity.Record, 0, len(out.Items))
	for _, item := range out.Items {
		rec, err := itemToRecord(item)
		if err != nil {
			return nil, storagemodels.QueryInfo{}, err
		}
		records = append(records, rec)
	}

	var info storagemodels.QueryInfo
	if len(out.LastEvaluatedKey) > 0 {
		cursor, err := encodeCursor(out.LastEvaluatedKey)
		if err != nil {
			return nil, storagemodels.QueryInfo{}, err
		}
		info = storagemodels.QueryInfo{EndCursor: cursor, MoreResults: true}
	}
	return records, info, nil
}

func encodeCursor(lastKey map[string]types.AttributeValue) (string, error) {
	var ck cursorKey
	if err := attributevalue.UnmarshalMap(lastKey, &ck); err != nil {
		return "", fmt.Errorf("failed to unmarshal LastEvaluatedKey: %w", err)
	}
	raw, err := json.Marshal(ck)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCursor(kind, cursor string) (map[string]types.AttributeValue, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, errors.NewValidationError("cursor", "cursor is not valid base64")
	}
	var ck cursorKey
	if err := json.Unmarshal(raw, &ck); err != nil {
		return nil, errors.NewValidationError("cursor", "cursor is not a valid page token")
	}
	if ck.Kind != kind {
		return nil, errors.NewValidationError("cursor", fmt.Sprintf("cursor belongs to kind %q, not %q", ck.Kind, kind))
	}

	start, err := attributevalue.MarshalMap(ck)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ExclusiveStartKey: %w", err)
	}
	return start, nil
}
