package repository

import (
	"context"
	"errors"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// BillPaymentGormRepository persists bill payments in a relational database.
type BillPaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBillPaymentRepository = (*BillPaymentGormRepository)(nil)

func NewBillPaymentGormRepository(db *gorm.DB) *BillPaymentGormRepository {
	return &BillPaymentGormRepository{db: db}
}

func (r *BillPaymentGormRepository) Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error) {
	if err := r.db.WithContext(ctx).Create(BillPaymentModelFromEntity(p)).Error; err != nil {
		return entities.BillPayment{}, err
	}
	return p, nil
}

func (r *BillPaymentGormRepository) GetByID(ctx context.Context, id string) (entities.BillPayment, error) {
	var model BillPaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BillPayment{}, nil
		}
		return entities.BillPayment{}, err
	}
	return model.ToEntity(), nil
}

func (r *BillPaymentGormRepository) ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error) {
	var models []BillPaymentModel
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	payments := make([]entities.BillPayment, len(models))
	for i := range models {
		payments[i] = models[i].ToEntity()
	}
	return payments, nil
}
