package repository

import (
	"context"
	"errors"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillGormRepository persists bill headers in a relational database.
type BillGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBillRepository = (*BillGormRepository)(nil)

func NewBillGormRepository(db *gorm.DB) *BillGormRepository {
	return &BillGormRepository{db: db}
}

func (r *BillGormRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(BillModelFromEntity(b)).Error; err != nil {
		return entities.Bill{}, err
	}
	b.LineItems = nil
	return b, nil
}

func (r *BillGormRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	var model BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, err
	}
	return model.ToEntity(), nil
}

func (r *BillGormRepository) List(ctx context.Context) ([]entities.Bill, error) {
	var models []BillModel
	if err := r.db.WithContext(ctx).Order("billing_date ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	bills := make([]entities.Bill, len(models))
	for i := range models {
		bills[i] = models[i].ToEntity()
	}
	return bills, nil
}
