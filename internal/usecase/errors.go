package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrBeerAlreadyRegistered = errors.New("beer already registered")
	ErrBeerNotFound          = errors.New("beer not found")
	ErrBeerStockExceeded     = errors.New("beer stock exceeded")
)

// 同名のビールが既にある
type BeerAlreadyRegisteredError struct {
	Name string
}

func (e *BeerAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("beer with name %s already registered in the system", e.Name)
}

func (e *BeerAlreadyRegisteredError) Unwrap() error { return ErrBeerAlreadyRegistered }

// 名前検索なら Name、ID検索なら ID が入る
type BeerNotFoundError struct {
	ID   int64
	Name string
}

func (e *BeerNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("beer with name %s not found in the system", e.Name)
	}
	return fmt.Sprintf("beer with id %d not found in the system", e.ID)
}

func (e *BeerNotFoundError) Unwrap() error { return ErrBeerNotFound }

// 加算後の在庫が Max を超える
type BeerStockExceededError struct {
	ID       int64
	Quantity int
}

func (e *BeerStockExceededError) Error() string {
	return fmt.Sprintf("beer with id %d: quantity %d to increment exceeds the max stock capacity", e.ID, e.Quantity)
}

func (e *BeerStockExceededError) Unwrap() error { return ErrBeerStockExceeded }
