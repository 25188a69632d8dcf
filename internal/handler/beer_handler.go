package handler

import (
	"net/http"
	"strconv"

	"beerstock/internal/dto"
	"beerstock/internal/usecase"
	"beerstock/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const BeerBasePath = "/api/v1/beers"

// /api/v1/beers の API
type BeerHandler struct {
	uc      *usecase.BeerUsecase
	history *usecase.StockHistoryUsecase
	log     *zap.Logger
}

// DI
func NewBeerHandler(uc *usecase.BeerUsecase, history *usecase.StockHistoryUsecase, log *zap.Logger) *BeerHandler {
	return &BeerHandler{uc: uc, history: history, log: log}
}

func (h *BeerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group(BeerBasePath)

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:name", h.findByName)
	g.DELETE("/:id", h.deleteByID)
	g.PATCH("/:id/increment", h.increment)
	g.GET("/:id/adjustments", h.adjustments)
}

func (h *BeerHandler) create(c echo.Context) error {
	var req dto.BeerDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := validator.ValidateBeer(&req); err != nil {
		return writeError(c, h.log, err)
	}

	out, err := h.uc.CreateBeer(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BeerHandler) list(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BeerHandler) findByName(c echo.Context) error {
	out, err := h.uc.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BeerHandler) deleteByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteByID(c.Request().Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BeerHandler) increment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req dto.QuantityDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := validator.ValidateQuantity(req); err != nil {
		return writeError(c, h.log, err)
	}

	out, err := h.uc.Increment(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BeerHandler) adjustments(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.history.ListAdjustments(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
