package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
	"github.com/harmonia/academy-backend/internal/validator"
)

// CartHandler handles selected-class (cart) routes.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// ListSelected godoc
// GET /selected/:email (gated)
// Lists one user's pending selections.
func (h *CartHandler) ListSelected(c *gin.Context) {
	selections, err := h.cart.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if selections == nil {
		selections = []model.CartSelection{}
	}
	response.Success(c, http.StatusOK, selections)
}

// ListAllSelected godoc
// GET /selected (gated)
// Lists every pending selection.
func (h *CartHandler) ListAllSelected(c *gin.Context) {
	selections, err := h.cart.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if selections == nil {
		selections = []model.CartSelection{}
	}
	response.Success(c, http.StatusOK, selections)
}

// Select godoc
// POST /select
// Adds a selection unless its id already exists.
func (h *CartHandler) Select(c *gin.Context) {
	var req model.SelectClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	selection := &model.CartSelection{
		ID:       req.ID,
		ClassID:  classID,
		Email:    req.Email,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	}

	if err := h.cart.Select(c.Request.Context(), selection); err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, service.ErrClassAlreadySelected) ||
			(errors.As(err, &pgErr) && pgErr.Code == "23505") {
			response.Fail(c, http.StatusConflict, response.ErrClassInCart)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, selection)
}

// DeleteSelection godoc
// DELETE /selectClass/:id
// Removes a selection; reports whether a row existed.
func (h *CartHandler) DeleteSelection(c *gin.Context) {
	deleted, err := h.cart.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

// GetSelection godoc
// GET /selectClass/:id
// Fetches one selection. An absent id yields 200 with a null body.
func (h *CartHandler) GetSelection(c *gin.Context) {
	selection, err := h.cart.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, pgx.ErrNoRows) {
		response.Success(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, selection)
}
