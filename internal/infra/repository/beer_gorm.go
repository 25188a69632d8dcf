package repository

import (
	"context"
	"errors"

	"beerstock/internal/domain/model"
	repo "beerstock/internal/repository"

	"gorm.io/gorm"
)

type BeerGormRepository struct {
	db *gorm.DB
}

// DI
func NewBeerGormRepository(db *gorm.DB) *BeerGormRepository {
	return &BeerGormRepository{db: db}
}

// 名前でビールを取得
func (r *BeerGormRepository) FindByName(ctx context.Context, name string) (model.Beer, error) {
	var b model.Beer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&b).Error
	if isNotFound(err) {
		return model.Beer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Beer{}, err
	}
	return b, nil
}

// IDでビールを取得
func (r *BeerGormRepository) FindByID(ctx context.Context, id int64) (model.Beer, error) {
	var b model.Beer
	err := r.db.WithContext(ctx).First(&b, id).Error
	if isNotFound(err) {
		return model.Beer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Beer{}, err
	}
	return b, nil
}

// 登録順
func (r *BeerGormRepository) FindAll(ctx context.Context) ([]model.Beer, error) {
	var beers []model.Beer
	if err := r.db.WithContext(ctx).Order("id asc").Find(&beers).Error; err != nil {
		return nil, err
	}
	return beers, nil
}

// 作成または更新。在庫数が変わったら調整履歴も同じトランザクションで残す。
func (r *BeerGormRepository) Save(ctx context.Context, b model.Beer) (model.Beer, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//変更前の在庫
		before := 0
		if b.ID != 0 {
			var cur model.Beer
			err := tx.Select("quantity").First(&cur, b.ID).Error
			if err != nil && !isNotFound(err) {
				return err
			}
			before = cur.Quantity
		}

		if err := tx.Save(&b).Error; err != nil {
			return err
		}

		if delta := b.Quantity - before; delta != 0 {
			adj := model.StockAdjustment{
				BeerID:        b.ID,
				Delta:         delta,
				QuantityAfter: b.Quantity,
			}
			if err := tx.Create(&adj).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.Beer{}, repo.ErrDuplicate
	}
	if err != nil {
		return model.Beer{}, err
	}
	return b, nil
}

// 履歴ごと削除
func (r *BeerGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("beer_id = ?", id).Delete(&model.StockAdjustment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Beer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
