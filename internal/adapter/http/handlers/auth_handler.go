package handlers

import (
	"errors"
	"net/http"

	request "pombal/internal/adapter/http/dto/request"
	response "pombal/internal/adapter/http/dto/response"
	"pombal/internal/adapter/http/middleware"
	"pombal/internal/usecase"
	"pombal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid auth payload", http.StatusBadRequest)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	loc     pkg.Localizer
}

func NewAuthHandler(uc usecase.IAuthUseCase, loc pkg.Localizer) *AuthHandler {
	return &AuthHandler{usecase: uc, loc: loc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Name, payload.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(user, token))
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Profile(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	appErr := mapAuthError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToLocalizedHTTPError(h.loc))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidPassword),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_EXISTS", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongCredentials):
		return pkg.NewDomainErrorSimple("WRONG_CREDENTIALS", "Wrong email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
