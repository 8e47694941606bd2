package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items per table in insertion order. Query supports a
// single equality key condition on a string attribute; results are paged
// pageSize at a time so paginator loops get exercised.
type fakeDynamoDB struct {
	mu       sync.Mutex
	tables   map[string][]map[string]types.AttributeValue
	pageSize int
	err      error

	queries int
	scans   int
}

var _ DynamoDBAPI = (*fakeDynamoDB)(nil)

func newFakeDynamoDB(pageSize int) *fakeDynamoDB {
	return &fakeDynamoDB{tables: map[string][]map[string]types.AttributeValue{}, pageSize: pageSize}
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	id := strAttr(in.Item, "id")
	if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		for _, it := range f.tables[table] {
			if strAttr(it, "id") == id {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
			}
		}
	}
	f.tables[table] = append(f.tables[table], in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := strAttr(in.Key, "id")
	for _, it := range f.tables[aws.ToString(in.TableName)] {
		if strAttr(it, "id") == id {
			return &dynamodb.GetItemOutput{Item: it}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.err != nil {
		return nil, f.err
	}

	// "attr = :placeholder"
	parts := strings.Fields(aws.ToString(in.KeyConditionExpression))
	attr, placeholder := parts[0], parts[2]
	want := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, it := range f.tables[aws.ToString(in.TableName)] {
		if strAttr(it, attr) == want {
			matched = append(matched, it)
		}
	}
	items, last := f.page(matched, in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last, Count: int32(len(items))}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	if f.err != nil {
		return nil, f.err
	}
	items, last := f.page(f.tables[aws.ToString(in.TableName)], in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last, Count: int32(len(items))}, nil
}

func (f *fakeDynamoDB) page(all []map[string]types.AttributeValue, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	from := 0
	if start != nil {
		startID := strAttr(start, "id")
		for i, it := range all {
			if strAttr(it, "id") == startID {
				from = i + 1
				break
			}
		}
	}
	to := len(all)
	if f.pageSize > 0 && from+f.pageSize < to {
		to = from + f.pageSize
	}
	out := all[from:to]
	if to < len(all) {
		return out, map[string]types.AttributeValue{"id": out[len(out)-1]["id"]}
	}
	return out, nil
}
