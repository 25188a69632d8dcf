package mapper

import (
	"beerstock/internal/domain/model"
	"beerstock/internal/dto"
)

// model.Beer と dto.BeerDTO の相互変換。フィールドをそのまま写すだけ。
type BeerMapper struct{}

func NewBeerMapper() BeerMapper {
	return BeerMapper{}
}

func (BeerMapper) ToModel(d dto.BeerDTO) model.Beer {
	return model.Beer{
		ID:        d.ID,
		Name:      d.Name,
		Brand:     d.Brand,
		Max:       d.Max,
		Quantity:  d.Quantity,
		Type:      d.Type,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (BeerMapper) ToDTO(b model.Beer) dto.BeerDTO {
	return dto.BeerDTO{
		ID:        b.ID,
		Name:      b.Name,
		Brand:     b.Brand,
		Max:       b.Max,
		Quantity:  b.Quantity,
		Type:      b.Type,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// 順序を保ったまま変換。空でも nil ではなく空スライスを返す。
func (m BeerMapper) ToDTOs(beers []model.Beer) []dto.BeerDTO {
	out := make([]dto.BeerDTO, 0, len(beers))
	for _, b := range beers {
		out = append(out, m.ToDTO(b))
	}
	return out
}
