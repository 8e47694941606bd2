package repository

import (
	"context"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineItemGormRepository persists line items in a relational database.
type LineItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILineItemRepository = (*LineItemGormRepository)(nil)

func NewLineItemGormRepository(db *gorm.DB) *LineItemGormRepository {
	return &LineItemGormRepository{db: db}
}

func (r *LineItemGormRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	if li.ID == "" {
		li.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(LineItemModelFromEntity(li)).Error; err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemGormRepository) ListByBillID(ctx context.Context, billID string) ([]entities.LineItem, error) {
	var models []LineItemModel
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return lineItemsFromModels(models), nil
}

func (r *LineItemGormRepository) List(ctx context.Context) ([]entities.LineItem, error) {
	var models []LineItemModel
	if err := r.db.WithContext(ctx).Order("bill_id ASC, position ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return lineItemsFromModels(models), nil
}

func lineItemsFromModels(models []LineItemModel) []entities.LineItem {
	items := make([]entities.LineItem, len(models))
	for i := range models {
		items[i] = models[i].ToEntity()
	}
	return items
}
