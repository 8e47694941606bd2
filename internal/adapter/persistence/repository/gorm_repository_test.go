package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"billing_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupGormTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = AutoMigrate(db)
	require.NoError(t, err)

	return db
}

func TestBillGormRepository(t *testing.T) {
	db := setupGormTestDB(t)
	repo := NewBillGormRepository(db)
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create assigns distinct ids", func(t *testing.T) {
		a, err := repo.Create(ctx, entities.Bill{CustomerID: 1, BillingDate: t0.Add(time.Hour)})
		require.NoError(t, err)
		b, err := repo.Create(ctx, entities.Bill{CustomerID: 1, BillingDate: t0})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)

		found, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, found.ID)
		assert.Equal(t, int64(1), found.CustomerID)
		assert.True(t, found.BillingDate.Equal(t0.Add(time.Hour)))
	})

	t.Run("missing returns zero value", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, found.ID)
	})

	t.Run("list is ordered by billing date", func(t *testing.T) {
		bills, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.True(t, bills[0].BillingDate.Before(bills[1].BillingDate))
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.Bill{ID: "dup", CustomerID: 1})
		require.NoError(t, err)
		_, err = repo.Create(ctx, entities.Bill{ID: "dup", CustomerID: 2})
		assert.Error(t, err)
	})
}

func TestLineItemGormRepository(t *testing.T) {
	db := setupGormTestDB(t)
	repo := NewLineItemGormRepository(db)
	ctx := context.Background()

	for _, pos := range []int{1, 0} {
		_, err := repo.Create(ctx, entities.LineItem{BillID: "b-1", ProductID: int64(10 + pos), Price: []float64{5.0, 12.5}[pos], Quantity: 30, Position: pos})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, entities.LineItem{BillID: "b-2", ProductID: 10, Price: 0.1, Quantity: 30})
	require.NoError(t, err)

	items, err := repo.ListByBillID(ctx, "b-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].ProductID)
	assert.Equal(t, 5.0, items[0].Price)
	assert.Equal(t, int64(11), items[1].ProductID)
	assert.Equal(t, 12.5, items[1].Price)
	assert.Equal(t, 30, items[1].Quantity)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 0.1, all[2].Price)
}

func TestLineItemGormRepository_PriceScale(t *testing.T) {
	s, err := schema.Parse(&LineItemModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "decimal(20,8)", s.LookUpField("Price").TagSettings["TYPE"])

	repo := NewLineItemGormRepository(setupGormTestDB(t))
	ctx := context.Background()
	_, err = repo.Create(ctx, entities.LineItem{BillID: "b-1", ProductID: 10, Price: 0.12345678, Quantity: 30})
	require.NoError(t, err)

	items, err := repo.ListByBillID(ctx, "b-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0.12345678, items[0].Price)
}

func TestBillPaymentGormRepository(t *testing.T) {
	db := setupGormTestDB(t)
	repo := NewBillPaymentGormRepository(db)
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, entities.BillPayment{ID: "p-1", BillID: "b-1", Date: t0, Status: entities.PaymentStatusPending, Amount: "525.00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.BillPayment{
		ID: "p-2", BillID: "b-1", Date: t0.Add(time.Minute), Status: entities.PaymentStatusApproved, Amount: "525.00",
		ProviderPayloadRaw: json.RawMessage(`{"status":"approved"}`),
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	assert.Equal(t, "approved", got.ProviderPayload["status"])

	list, err := repo.ListByBillID(ctx, "b-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-2", list[0].ID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
