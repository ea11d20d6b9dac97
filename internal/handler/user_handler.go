package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
	"github.com/harmonia/academy-backend/internal/validator"
)

// UserHandler handles account routes.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UpsertUser godoc
// PUT /users/:email (gated)
// Creates or replaces the profile stored under an email.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := &model.User{
		Email:    c.Param("email"),
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}

	if err := h.users.Upsert(c.Request.Context(), user); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetUser godoc
// GET /users/:email
// Fetches one user. An absent email yields 200 with a null body.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, pgx.ErrNoRows) {
		response.Success(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ListUsers godoc
// GET /users (gated)
// Lists all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	response.Success(c, http.StatusOK, users)
}

// CreateUser godoc
// POST /user (gated)
// Creates a user unless the email is already registered.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}

	if err := h.users.CreateIfAbsent(c.Request.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, service.ErrUserExists) ||
			(errors.As(err, &pgErr) && pgErr.Code == "23505") {
			response.Fail(c, http.StatusConflict, response.ErrUserExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// Instructors godoc
// GET /instructors
// Lists users holding the instructor role.
func (h *UserHandler) Instructors(c *gin.Context) {
	instructors, err := h.users.Instructors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if instructors == nil {
		instructors = []model.User{}
	}
	response.Success(c, http.StatusOK, instructors)
}
