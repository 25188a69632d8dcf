package mapper_test

import (
	"testing"
	"time"

	"beerstock/internal/domain/model"
	"beerstock/internal/dto"
	"beerstock/internal/mapper"

	"github.com/stretchr/testify/assert"
)

func TestBeerMapper_ToModel_CopiesEveryField(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := mapper.NewBeerMapper()

	b := m.ToModel(dto.BeerDTO{
		ID:        1,
		Name:      "Brahma",
		Brand:     "Ambev",
		Max:       50,
		Quantity:  10,
		Type:      model.BeerTypeLager,
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.Equal(t, model.Beer{
		ID:        1,
		Name:      "Brahma",
		Brand:     "Ambev",
		Max:       50,
		Quantity:  10,
		Type:      model.BeerTypeLager,
		CreatedAt: now,
		UpdatedAt: now,
	}, b)
}

func TestBeerMapper_ToDTOs_PreservesOrder(t *testing.T) {
	m := mapper.NewBeerMapper()

	out := m.ToDTOs([]model.Beer{
		{ID: 3, Name: "Skol"},
		{ID: 1, Name: "Brahma"},
	})

	if assert.Len(t, out, 2) {
		assert.Equal(t, "Skol", out[0].Name)
		assert.Equal(t, "Brahma", out[1].Name)
	}
}

func TestBeerMapper_ToDTOs_EmptyIsNotNil(t *testing.T) {
	out := mapper.NewBeerMapper().ToDTOs(nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
