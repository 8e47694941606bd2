package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultLineItemsTableName = "line_items"
	lineItemsBillIDIndex      = "bill_id-index"
)

type lineItemItem struct {
	ID        string `dynamodbav:"id"`
	BillID    string `dynamodbav:"bill_id"`
	ProductID int64  `dynamodbav:"product_id"`
	Price     string `dynamodbav:"price"`
	Quantity  int    `dynamodbav:"quantity"`
	Position  int    `dynamodbav:"position"`
}

// LineItemDynamoRepository persists line items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bill_id-index (PK: bill_id)
//
// Price is stored as a decimal string so the snapshot round-trips exactly.

type LineItemDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

// NewLineItemDynamoRepository falls back to LINE_ITEMS_TABLE when tableName is empty.
func NewLineItemDynamoRepository(ddb DynamoDBAPI, tableName string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrEnv(tableName, "LINE_ITEMS_TABLE", defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toLineItemItem(li))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) ListByBillID(ctx context.Context, billID string) ([]entities.LineItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemsBillIDIndex),
		KeyConditionExpression: aws.String("bill_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: billID},
		},
	})

	items := []entities.LineItem{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeLineItems(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}

	// GSI results carry no useful order.
	sort.SliceStable(items, func(a, b int) bool { return items[a].Position < items[b].Position })
	return items, nil
}

func (r *LineItemDynamoRepository) List(ctx context.Context) ([]entities.LineItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := []entities.LineItem{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeLineItems(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func decodeLineItems(raw []map[string]types.AttributeValue) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(raw))
	for _, av := range raw {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		li, err := fromLineItemItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:        li.ID,
		BillID:    li.BillID,
		ProductID: li.ProductID,
		Price:     floatToString(li.Price),
		Quantity:  li.Quantity,
		Position:  li.Position,
	}
}

func fromLineItemItem(it lineItemItem) (entities.LineItem, error) {
	price, err := strconv.ParseFloat(it.Price, 64)
	if err != nil {
		return entities.LineItem{}, fmt.Errorf("line item %s: price %q: %w", it.ID, it.Price, err)
	}
	return entities.LineItem{
		ID:        it.ID,
		BillID:    it.BillID,
		ProductID: it.ProductID,
		Price:     price,
		Quantity:  it.Quantity,
		Position:  it.Position,
	}, nil
}
