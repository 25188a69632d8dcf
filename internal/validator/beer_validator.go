package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"beerstock/internal/dto"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

const (
	maxNameLength      = 200
	maxBrandLength     = 200
	maxCapacity        = 500
	maxQuantity        = 100
	maxIncrementAmount = 100
)

// 登録時の入力を検証。前後の空白は取り除く。
func ValidateBeer(in *dto.BeerDTO) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)

	if n := utf8.RuneCountInString(in.Name); n == 0 || n > maxNameLength {
		return invalid("name must be between 1 and %d characters", maxNameLength)
	}
	if n := utf8.RuneCountInString(in.Brand); n == 0 || n > maxBrandLength {
		return invalid("brand must be between 1 and %d characters", maxBrandLength)
	}
	if in.Max < 0 || in.Max > maxCapacity {
		return invalid("max must be between 0 and %d", maxCapacity)
	}
	if in.Quantity < 0 || in.Quantity > maxQuantity {
		return invalid("quantity must be between 0 and %d", maxQuantity)
	}
	if in.Quantity > in.Max {
		return invalid("quantity must be <= max")
	}
	if !in.Type.Valid() {
		return invalid("type is invalid")
	}
	return nil
}

// 在庫加算の入力を検証
func ValidateQuantity(in dto.QuantityDTO) error {
	if in.Quantity < 1 || in.Quantity > maxIncrementAmount {
		return invalid("quantity must be between 1 and %d", maxIncrementAmount)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
