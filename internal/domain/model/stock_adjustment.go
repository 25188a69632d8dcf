package model

import "time"

// 在庫変動の履歴
type StockAdjustment struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BeerID        int64     `gorm:"not null;index" json:"beer_id"`
	Delta         int       `gorm:"not null" json:"delta"`
	QuantityAfter int       `gorm:"not null" json:"quantity_after"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
