package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"billing_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamoDB(0)
	repo := NewBillDynamoRepository(ddb, "bills")
	ctx := context.Background()

	date := time.Date(2024, 5, 1, 15, 0, 0, 123, time.UTC)
	created, err := repo.Create(ctx, entities.Bill{CustomerID: 1, BillingDate: date})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(1), got.CustomerID)
	assert.True(t, date.Equal(got.BillingDate))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestBillDynamoRepository_CreateDuplicateID(t *testing.T) {
	repo := NewBillDynamoRepository(newFakeDynamoDB(0), "bills")
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Bill{ID: "b-1", CustomerID: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Bill{ID: "b-1", CustomerID: 2})

	var cfe *types.ConditionalCheckFailedException
	assert.True(t, errors.As(err, &cfe), "expected conditional check failure, got %v", err)
}

func TestBillDynamoRepository_ListPaginates(t *testing.T) {
	ddb := newFakeDynamoDB(2)
	repo := NewBillDynamoRepository(ddb, "bills")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, entities.Bill{CustomerID: int64(i + 1)})
		require.NoError(t, err)
	}

	bills, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 5)
	assert.Equal(t, 3, ddb.scans)
}

func TestBillDynamoRepository_TableNameFromEnv(t *testing.T) {
	t.Setenv("BILLS_TABLE", "bills-test")
	repo := NewBillDynamoRepository(newFakeDynamoDB(0), "")
	assert.Equal(t, "bills-test", repo.tableName)

	repo = NewBillDynamoRepository(newFakeDynamoDB(0), "explicit")
	assert.Equal(t, "explicit", repo.tableName)
}

func TestBillDynamoRepository_StoreErrors(t *testing.T) {
	ddb := newFakeDynamoDB(0)
	ddb.err = errors.New("throttled")
	repo := NewBillDynamoRepository(ddb, "bills")
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Bill{CustomerID: 1})
	assert.EqualError(t, err, "throttled")
	_, err = repo.GetByID(ctx, "b-1")
	assert.EqualError(t, err, "throttled")
	_, err = repo.List(ctx)
	assert.Error(t, err)
}
