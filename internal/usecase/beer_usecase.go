package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beerstock/internal/domain/model"
	"beerstock/internal/dto"
	repo "beerstock/internal/repository"

	"go.uber.org/zap"
)

type BeerMapper interface {
	ToModel(d dto.BeerDTO) model.Beer
	ToDTO(b model.Beer) dto.BeerDTO
	ToDTOs(beers []model.Beer) []dto.BeerDTO
}

// 在庫の業務ルールを持つ。状態は持たず、すべて BeerRepository 側にある。
type BeerUsecase struct {
	beerRepo repo.BeerRepository
	mapper   BeerMapper
	logger   *zap.Logger
}

// DI
func NewBeerUsecase(beerRepo repo.BeerRepository, mapper BeerMapper, logger *zap.Logger) *BeerUsecase {
	return &BeerUsecase{
		beerRepo: beerRepo,
		mapper:   mapper,
		logger:   logger,
	}
}

func (u *BeerUsecase) CreateBeer(ctx context.Context, in dto.BeerDTO) (dto.BeerDTO, error) {
	//名前の重複チェック
	_, err := u.beerRepo.FindByName(ctx, in.Name)
	if err == nil {
		u.logger.Warn("beer already registered", zap.String("name", in.Name))
		return dto.BeerDTO{}, &BeerAlreadyRegisteredError{Name: in.Name}
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return dto.BeerDTO{}, fmt.Errorf("find beer by name: %w", err)
	}

	//ID と日時は保存時に採番される。既存レコードの上書きを防ぐ。
	b := u.mapper.ToModel(in)
	b.ID = 0
	b.CreatedAt = time.Time{}
	b.UpdatedAt = time.Time{}

	saved, err := u.beerRepo.Save(ctx, b)
	if errors.Is(err, repo.ErrDuplicate) {
		// 確認と保存の間に同名が登録された
		return dto.BeerDTO{}, &BeerAlreadyRegisteredError{Name: in.Name}
	}
	if err != nil {
		return dto.BeerDTO{}, fmt.Errorf("save beer: %w", err)
	}

	u.logger.Info("beer created", zap.Int64("id", saved.ID), zap.String("name", saved.Name))
	return u.mapper.ToDTO(saved), nil
}

func (u *BeerUsecase) FindByName(ctx context.Context, name string) (dto.BeerDTO, error) {
	b, err := u.beerRepo.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return dto.BeerDTO{}, &BeerNotFoundError{Name: name}
	}
	if err != nil {
		return dto.BeerDTO{}, fmt.Errorf("find beer by name: %w", err)
	}
	return u.mapper.ToDTO(b), nil
}

func (u *BeerUsecase) ListAll(ctx context.Context) ([]dto.BeerDTO, error) {
	beers, err := u.beerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all beers: %w", err)
	}
	return u.mapper.ToDTOs(beers), nil
}

// 存在確認をしてから削除する
func (u *BeerUsecase) DeleteByID(ctx context.Context, id int64) error {
	if _, err := u.verifyIfExists(ctx, id); err != nil {
		return err
	}

	err := u.beerRepo.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return &BeerNotFoundError{ID: id}
	}
	if err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}

	u.logger.Info("beer deleted", zap.Int64("id", id))
	return nil
}

// 加算後の在庫が Max 以下のときだけ保存する。
// quantityToIncrement の符号はチェックしない。
func (u *BeerUsecase) Increment(ctx context.Context, id int64, quantityToIncrement int) (dto.BeerDTO, error) {
	b, err := u.verifyIfExists(ctx, id)
	if err != nil {
		return dto.BeerDTO{}, err
	}

	newQuantity := b.Quantity + quantityToIncrement
	if newQuantity > b.Max {
		u.logger.Warn("stock exceeded",
			zap.Int64("id", id),
			zap.Int("quantity", b.Quantity),
			zap.Int("increment", quantityToIncrement),
			zap.Int("max", b.Max),
		)
		return dto.BeerDTO{}, &BeerStockExceededError{ID: id, Quantity: quantityToIncrement}
	}

	b.Quantity = newQuantity
	saved, err := u.beerRepo.Save(ctx, b)
	if err != nil {
		return dto.BeerDTO{}, fmt.Errorf("save beer: %w", err)
	}

	u.logger.Info("stock incremented", zap.Int64("id", id), zap.Int("quantity", saved.Quantity))
	return u.mapper.ToDTO(saved), nil
}

func (u *BeerUsecase) verifyIfExists(ctx context.Context, id int64) (model.Beer, error) {
	b, err := u.beerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Beer{}, &BeerNotFoundError{ID: id}
	}
	if err != nil {
		return model.Beer{}, fmt.Errorf("find beer by id: %w", err)
	}
	return b, nil
}
