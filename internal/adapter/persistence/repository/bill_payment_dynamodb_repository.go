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
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBillIDIndex      = "bill_id-index"
)

type billPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	BillID             string                 `dynamodbav:"bill_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	Amount             string                 `dynamodbav:"amount"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BillPaymentDynamoRepository persists BillPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bill_id-index (PK: bill_id)

type BillPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IBillPaymentRepository = (*BillPaymentDynamoRepository)(nil)

// NewBillPaymentDynamoRepository falls back to PAYMENTS_TABLE when tableName is empty.
func NewBillPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *BillPaymentDynamoRepository {
	return &BillPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrEnv(tableName, "PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BillPaymentDynamoRepository) Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error) {
	av, err := attributevalue.MarshalMap(toBillPaymentItem(p))
	if err != nil {
		return entities.BillPayment{}, err
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
		return entities.BillPayment{}, err
	}
	return p, nil
}

func (r *BillPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillPayment{}, nil
	}

	var it billPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillPayment{}, err
	}
	return fromBillPaymentItem(it), nil
}

func (r *BillPaymentDynamoRepository) ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBillIDIndex),
		KeyConditionExpression: aws.String("bill_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: billID},
		},
	})

	payments := []entities.BillPayment{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it billPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromBillPaymentItem(it))
		}
	}
	return payments, nil
}

func toBillPaymentItem(p entities.BillPayment) billPaymentItem {
	return billPaymentItem{
		ID:                 p.ID,
		BillID:             p.BillID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		Amount:             p.Amount,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBillPaymentItem(it billPaymentItem) entities.BillPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BillPayment{
		ID:                 it.ID,
		BillID:             it.BillID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		Amount:             it.Amount,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
