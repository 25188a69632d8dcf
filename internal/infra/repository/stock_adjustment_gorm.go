package repository

import (
	"context"

	"beerstock/internal/domain/model"
	repo "beerstock/internal/repository"

	"gorm.io/gorm"
)

type stockAdjustmentGormRepository struct {
	db *gorm.DB
}

func NewStockAdjustmentGormRepository(db *gorm.DB) repo.StockAdjustmentRepository {
	return &stockAdjustmentGormRepository{db: db}
}

//古い順
func (r *stockAdjustmentGormRepository) ListByBeerID(ctx context.Context, beerID int64) ([]model.StockAdjustment, error) {
	var adjs []model.StockAdjustment
	err := r.db.WithContext(ctx).
		Where("beer_id = ?", beerID).
		Order("id ASC").
		Find(&adjs).Error
	if err != nil {
		return nil, err
	}
	return adjs, nil
}
