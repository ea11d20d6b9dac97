package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
)

// TokenHandler issues bearer tokens.
type TokenHandler struct {
	tokens *service.TokenService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens *service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue godoc
// POST /jwt
// Signs the request body as token claims with a fixed expiry. Deliberately
// unauthenticated; typically carries the user's email.
func (h *TokenHandler) Issue(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
