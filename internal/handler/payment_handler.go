package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
	"github.com/harmonia/academy-backend/internal/validator"
)

// PaymentHandler handles charge creation, finalization and the
// payment-derived read views.
type PaymentHandler struct {
	payments    *service.PaymentService
	enrollments *service.EnrollmentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService, enrollments *service.EnrollmentService) *PaymentHandler {
	return &PaymentHandler{payments: payments, enrollments: enrollments}
}

// CreateIntent godoc
// POST /create-payment-intent
// Requests a gateway charge for a price in major units and returns the
// client secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req model.CreateIntentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	secret, err := h.payments.CreateIntent(c.Request.Context(), req.ClassPrice)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrPaymentGateway)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clientSecret": secret})
}

// FinalizePayment godoc
// POST /payment
// Runs the enrollment finalizer for a completed charge. The response
// reports each of the three steps individually.
func (h *PaymentHandler) FinalizePayment(c *gin.Context) {
	var req model.FinalizePaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	result, err := h.payments.Finalize(c.Request.Context(), service.FinalizeInput{
		Email:         req.Email,
		ClassID:       classID,
		CartID:        req.CartID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Enrolled godoc
// GET /enrolled/:email
// Lists a user's payments (the enrolled-classes view).
func (h *PaymentHandler) Enrolled(c *gin.Context) {
	payments, err := h.enrollments.Enrolled(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	response.Success(c, http.StatusOK, payments)
}

// History godoc
// GET /payments/:email
// Lists a user's payments newest first.
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.enrollments.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	response.Success(c, http.StatusOK, payments)
}

// PopularClasses godoc
// GET /popular-classes
// Returns every payment; clients count per class as a popularity proxy.
func (h *PaymentHandler) PopularClasses(c *gin.Context) {
	payments, err := h.enrollments.AllPayments(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	response.Success(c, http.StatusOK, payments)
}
