package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"beerstock/internal/domain/model"
	repo "beerstock/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const beerNameKeyPrefix = "beer:name:"

// BeerCache は BeerRepository の前段に置く read-through キャッシュ。
// 名前検索だけを redis から返し、更新系は保存後に対象キーを消す。
// FindByID は更新の前段で使われるので常に DB を読む。
// 見つからなかった結果はキャッシュしない。
type BeerCache struct {
	next   repo.BeerRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewBeerCache(next repo.BeerRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *BeerCache {
	return &BeerCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.Named("beer_cache"),
	}
}

func (c *BeerCache) FindByName(ctx context.Context, name string) (model.Beer, error) {
	key := nameKey(name)
	if b, ok := c.get(ctx, key); ok {
		return b, nil
	}

	b, err := c.next.FindByName(ctx, name)
	if err != nil {
		return model.Beer{}, err
	}
	c.set(ctx, key, b)
	return b, nil
}

func (c *BeerCache) FindByID(ctx context.Context, id int64) (model.Beer, error) {
	return c.next.FindByID(ctx, id)
}

// 一覧はキャッシュしない
func (c *BeerCache) FindAll(ctx context.Context) ([]model.Beer, error) {
	return c.next.FindAll(ctx)
}

func (c *BeerCache) Save(ctx context.Context, b model.Beer) (model.Beer, error) {
	saved, err := c.next.Save(ctx, b)
	if err != nil {
		return model.Beer{}, err
	}
	c.invalidate(ctx, saved.Name)
	return saved, nil
}

func (c *BeerCache) DeleteByID(ctx context.Context, id int64) error {
	// 名前キーも消すために、削除前の値を引いておく
	b, err := c.next.FindByID(ctx, id)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	if err := c.next.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, b.Name)
	return nil
}

// redis の障害は取得失敗として扱い、DBへフォールバックする
func (c *BeerCache) get(ctx context.Context, key string) (model.Beer, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Beer{}, false
	}
	if err != nil {
		c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return model.Beer{}, false
	}

	var b model.Beer
	if err := json.Unmarshal(raw, &b); err != nil {
		c.logger.Warn("cache entry corrupted", zap.String("key", key), zap.Error(err))
		return model.Beer{}, false
	}
	return b, true
}

// 既にあるエントリは上書きしない（後から入った新しい値を古い値で潰さない）
func (c *BeerCache) set(ctx context.Context, key string, b model.Beer) {
	raw, err := json.Marshal(b)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.Int64("id", b.ID), zap.Error(err))
		return
	}

	if err := c.client.SetNX(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *BeerCache) invalidate(ctx context.Context, name string) {
	if name == "" {
		return
	}
	key := nameKey(name)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

func nameKey(name string) string {
	return beerNameKeyPrefix + name
}
