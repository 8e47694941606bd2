package repository

import (
	"context"
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultBillsTableName = "bills"

type billItem struct {
	ID          string `dynamodbav:"id"`
	BillingDate string `dynamodbav:"billing_date"`
	CustomerID  int64  `dynamodbav:"customer_id"`
}

// BillDynamoRepository persists bill headers in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BillDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

// NewBillDynamoRepository falls back to BILLS_TABLE when tableName is empty.
func NewBillDynamoRepository(ddb DynamoDBAPI, tableName string) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrEnv(tableName, "BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
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
		return entities.Bill{}, err
	}
	b.LineItems = nil
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) List(ctx context.Context) ([]entities.Bill, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	bills := []entities.Bill{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bills = append(bills, fromBillItem(it))
		}
	}
	return bills, nil
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:          b.ID,
		BillingDate: b.BillingDate.UTC().Format(time.RFC3339Nano),
		CustomerID:  b.CustomerID,
	}
}

func fromBillItem(it billItem) entities.Bill {
	dt, _ := time.Parse(time.RFC3339Nano, it.BillingDate)
	return entities.Bill{
		ID:          it.ID,
		BillingDate: dt,
		CustomerID:  it.CustomerID,
	}
}
