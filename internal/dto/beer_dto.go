package dto

import (
	"time"

	"beerstock/internal/domain/model"
)

type BeerDTO struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Brand     string         `json:"brand"`
	Max       int            `json:"max"`
	Quantity  int            `json:"quantity"`
	Type      model.BeerType `json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PATCH /beers/:id/increment の入力
type QuantityDTO struct {
	Quantity int `json:"quantity"`
}
