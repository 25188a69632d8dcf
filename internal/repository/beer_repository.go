package repository

import (
	"context"
	"errors"

	"beerstock/internal/domain/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// ビールの永続化（保存・取得）だけを約束。
// 見つからない場合は ErrNotFound、一意制約違反は ErrDuplicate を返す。
type BeerRepository interface {
	FindByName(ctx context.Context, name string) (model.Beer, error)
	FindByID(ctx context.Context, id int64) (model.Beer, error)
	FindAll(ctx context.Context) ([]model.Beer, error)

	// 保存後の値（採番済みID）を返す
	Save(ctx context.Context, b model.Beer) (model.Beer, error)
	DeleteByID(ctx context.Context, id int64) error
}

// 在庫変動履歴の参照。
type StockAdjustmentRepository interface {
	ListByBeerID(ctx context.Context, beerID int64) ([]model.StockAdjustment, error)
}
