package handler

import (
	"errors"
	"net/http"

	"beerstock/internal/usecase"
	"beerstock/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecase / validator のエラーを HTTP ステータスに変換する
func writeError(c echo.Context, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	var (
		notFound *usecase.BeerNotFoundError
		already  *usecase.BeerAlreadyRegisteredError
		exceeded *usecase.BeerStockExceededError
	)
	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &already):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: already.Error()})
	case errors.As(err, &exceeded):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: exceeded.Error()})
	case errors.Is(err, validator.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	//500
	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
