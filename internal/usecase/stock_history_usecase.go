package usecase

import (
	"context"
	"errors"
	"fmt"

	"beerstock/internal/domain/model"
	repo "beerstock/internal/repository"
)

// 在庫変動履歴の参照
type StockHistoryUsecase struct {
	beerRepo       repo.BeerRepository
	adjustmentRepo repo.StockAdjustmentRepository
}

func NewStockHistoryUsecase(beerRepo repo.BeerRepository, adjustmentRepo repo.StockAdjustmentRepository) *StockHistoryUsecase {
	return &StockHistoryUsecase{
		beerRepo:       beerRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func (u *StockHistoryUsecase) ListAdjustments(ctx context.Context, beerID int64) ([]model.StockAdjustment, error) {
	_, err := u.beerRepo.FindByID(ctx, beerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, &BeerNotFoundError{ID: beerID}
	}
	if err != nil {
		return nil, fmt.Errorf("find beer by id: %w", err)
	}

	adjs, err := u.adjustmentRepo.ListByBeerID(ctx, beerID)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	if adjs == nil {
		adjs = []model.StockAdjustment{}
	}
	return adjs, nil
}
