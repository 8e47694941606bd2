package repository

import (
	"encoding/json"
	"time"

	"billing_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillModel is the GORM model for bill headers.
type BillModel struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	BillingDate time.Time `gorm:"not null;index"`
	CustomerID  int64     `gorm:"not null;index"`
}

func (BillModel) TableName() string {
	return "bills"
}

// LineItemModel is the GORM model for line items. Price keeps 8 decimal
// places; catalog prices with more are rounded on postgres.
type LineItemModel struct {
	ID        string          `gorm:"type:varchar(36);primaryKey"`
	BillID    string          `gorm:"type:varchar(36);not null;index:idx_line_items_bill_position,priority:1"`
	ProductID int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Quantity  int             `gorm:"not null"`
	Position  int             `gorm:"not null;index:idx_line_items_bill_position,priority:2"`
}

func (LineItemModel) TableName() string {
	return "line_items"
}

// BillPaymentModel is the GORM model for bill payments.
type BillPaymentModel struct {
	ID                 string    `gorm:"type:varchar(64);primaryKey"`
	BillID             string    `gorm:"type:varchar(36);not null;index"`
	Date               time.Time `gorm:"not null"`
	Status             string    `gorm:"type:varchar(20);not null"`
	Amount             string    `gorm:"type:varchar(32);not null"`
	ProviderPayloadRaw string    `gorm:"type:text"`
}

func (BillPaymentModel) TableName() string {
	return "bill_payments"
}

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&BillModel{}, &LineItemModel{}, &BillPaymentModel{})
}

func (m *BillModel) ToEntity() entities.Bill {
	return entities.Bill{
		ID:          m.ID,
		BillingDate: m.BillingDate.UTC(),
		CustomerID:  m.CustomerID,
	}
}

func BillModelFromEntity(b entities.Bill) *BillModel {
	return &BillModel{
		ID:          b.ID,
		BillingDate: b.BillingDate.UTC(),
		CustomerID:  b.CustomerID,
	}
}

func (m *LineItemModel) ToEntity() entities.LineItem {
	return entities.LineItem{
		ID:        m.ID,
		BillID:    m.BillID,
		ProductID: m.ProductID,
		Price:     m.Price.InexactFloat64(),
		Quantity:  m.Quantity,
		Position:  m.Position,
	}
}

func LineItemModelFromEntity(li entities.LineItem) *LineItemModel {
	return &LineItemModel{
		ID:        li.ID,
		BillID:    li.BillID,
		ProductID: li.ProductID,
		Price:     decimal.NewFromFloat(li.Price),
		Quantity:  li.Quantity,
		Position:  li.Position,
	}
}

func (m *BillPaymentModel) ToEntity() entities.BillPayment {
	p := entities.BillPayment{
		ID:     m.ID,
		BillID: m.BillID,
		Date:   m.Date.UTC(),
		Status: entities.PaymentStatus(m.Status),
		Amount: m.Amount,
	}
	if m.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(m.ProviderPayloadRaw)
		_ = json.Unmarshal(p.ProviderPayloadRaw, &p.ProviderPayload)
	}
	return p
}

func BillPaymentModelFromEntity(p entities.BillPayment) *BillPaymentModel {
	return &BillPaymentModel{
		ID:                 p.ID,
		BillID:             p.BillID,
		Date:               p.Date.UTC(),
		Status:             string(p.Status),
		Amount:             p.Amount,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}
