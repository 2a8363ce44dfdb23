package handlers

import (
	"errors"
	"net/http"

	request "pombal/internal/adapter/http/dto/request"
	response "pombal/internal/adapter/http/dto/response"
	"pombal/internal/adapter/http/middleware"
	"pombal/internal/domain/entities"
	"pombal/internal/usecase"
	"pombal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPigeonPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid pigeon payload", http.StatusBadRequest)

type PigeonHandler struct {
	usecase usecase.IPigeonUseCase
	loc     pkg.Localizer
}

func NewPigeonHandler(uc usecase.IPigeonUseCase, loc pkg.Localizer) *PigeonHandler {
	return &PigeonHandler{usecase: uc, loc: loc}
}

func (h *PigeonHandler) RegisterPigeon(c *gin.Context) {
	var payload request.RegisterPigeonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPigeonPayload.HTTPStatus, errInvalidPigeonPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	pigeon, err := h.usecase.Register(c.Request.Context(), middleware.OwnerID(c), usecase.RegisterPigeonInput{
		Name:                payload.Name,
		RingNumber:          payload.ResolveRingNumber(),
		DocumentationNumber: payload.DocumentationNumber,
		Gender:              entities.PigeonGender(payload.Gender),
		Color:               payload.Color,
		YearOfBirth:         payload.YearOfBirth,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromPigeon(pigeon))
}

func (h *PigeonHandler) GetPigeon(c *gin.Context) {
	pigeon, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), c.Param("pigeon_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPigeon(pigeon))
}

func (h *PigeonHandler) ListPigeons(c *gin.Context) {
	pigeons, err := h.usecase.Search(c.Request.Context(), middleware.OwnerID(c), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPigeons(pigeons))
}

func (h *PigeonHandler) UpdatePigeonStatus(c *gin.Context) {
	var payload request.UpdatePigeonStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPigeonPayload.HTTPStatus, errInvalidPigeonPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	pigeon, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.OwnerID(c), c.Param("pigeon_id"), entities.PigeonStatus(payload.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPigeon(pigeon))
}

func (h *PigeonHandler) respondError(c *gin.Context, err error) {
	appErr := mapPigeonError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToLocalizedHTTPError(h.loc))
}

func mapPigeonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidPigeonID),
		errors.Is(err, usecase.ErrInvalidPigeonName),
		errors.Is(err, usecase.ErrInvalidRingNumber),
		errors.Is(err, usecase.ErrInvalidPigeonGender),
		errors.Is(err, usecase.ErrInvalidPigeonStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateRingNumber):
		return pkg.NewDomainErrorSimple("RING_NUMBER_EXISTS", "A pigeon with this ring number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateDocNumber):
		return pkg.NewDomainErrorSimple("DOC_NUMBER_EXISTS", "A pigeon with this documentation number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPigeonNotFound):
		return pkg.NewDomainErrorSimple("PIGEON_NOT_FOUND", "Pigeon not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
