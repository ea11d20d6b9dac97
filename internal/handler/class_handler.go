package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
	"github.com/harmonia/academy-backend/internal/validator"
)

// ClassHandler handles the class catalog routes.
type ClassHandler struct {
	catalog *service.CatalogService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(catalog *service.CatalogService) *ClassHandler {
	return &ClassHandler{catalog: catalog}
}

// AddClass godoc
// POST /addClass (gated)
// Lists a new class offering; it starts in pending status.
func (h *ClassHandler) AddClass(c *gin.Context) {
	var req model.CreateOfferingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	offering := &model.ClassOffering{
		Title:           req.Title,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		ImageURL:        req.ImageURL,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	}

	if err := h.catalog.Create(c.Request.Context(), offering); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, offering)
}

// ListClasses godoc
// GET /classes
// Lists all offerings.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	offerings, err := h.catalog.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if offerings == nil {
		offerings = []model.ClassOffering{}
	}
	response.Success(c, http.StatusOK, offerings)
}

// GetClass godoc
// GET /class/:id
// Fetches one offering. An absent id yields 200 with a null body.
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	offering, err := h.catalog.GetByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		response.Success(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, offering)
}

// SetStatus godoc
// PATCH /class/status/:id
// Approves or denies an offering.
func (h *ClassHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SetStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	updated, err := h.catalog.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

// SetFeedback godoc
// PUT /class/feedback/:id
// Attaches admin feedback to an offering.
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SetFeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	updated, err := h.catalog.SetFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

// UpdateClass godoc
// PUT /update/:id (gated)
// Upserts an offering under the given id.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateOfferingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	offering := &model.ClassOffering{
		ID:              id,
		Title:           req.Title,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		ImageURL:        req.ImageURL,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	}

	if err := h.catalog.Upsert(c.Request.Context(), offering); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, offering)
}
