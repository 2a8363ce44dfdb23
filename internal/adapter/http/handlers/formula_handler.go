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

var errInvalidFormulaPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid formula payload", http.StatusBadRequest)

// FormulaHandler handles HTTP requests for breeding formulas. All routes are
// behind the auth guard; the owner id comes from the request context.

type FormulaHandler struct {
	usecase usecase.IFormulaUseCase
	loc     pkg.Localizer
}

func NewFormulaHandler(uc usecase.IFormulaUseCase, loc pkg.Localizer) *FormulaHandler {
	return &FormulaHandler{usecase: uc, loc: loc}
}

func (h *FormulaHandler) CreateFormula(c *gin.Context) {
	var payload request.CreateFormulaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	formula, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), usecase.CreateFormulaInput{
		Father:        entities.Parent{ID: payload.Father.ID, Name: payload.Father.Name},
		Mother:        entities.Parent{ID: payload.Mother.ID, Name: payload.Mother.Name},
		CaseNumber:    payload.CaseNumber,
		YearOfFormula: payload.ResolveYear(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromFormula(formula))
}

func (h *FormulaHandler) GetFormula(c *gin.Context) {
	formula, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), c.Param("formula_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(formula))
}

// ListFormulas returns the owner's formulas, optionally filtered by the q
// query parameter (case-insensitive substring over parents, case number and
// year).
func (h *FormulaHandler) ListFormulas(c *gin.Context) {
	formulas, err := h.usecase.Search(c.Request.Context(), middleware.OwnerID(c), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFormulas(formulas))
}

func (h *FormulaHandler) FormulaStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *FormulaHandler) AddEgg(c *gin.Context) {
	formula, err := h.usecase.AddEgg(c.Request.Context(), middleware.OwnerID(c), c.Param("formula_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(formula))
}

func (h *FormulaHandler) TransformEgg(c *gin.Context) {
	var payload request.TransformEggRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	formula, err := h.usecase.TransformEggToPigeon(
		c.Request.Context(),
		middleware.OwnerID(c),
		c.Param("formula_id"),
		c.Param("egg_id"),
		payload.ResolvePigeonID(),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(formula))
}

func (h *FormulaHandler) TerminateFormula(c *gin.Context) {
	var payload request.TerminateFormulaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToLocalizedHTTPError(h.loc))
		return
	}

	formula, err := h.usecase.Terminate(c.Request.Context(), middleware.OwnerID(c), c.Param("formula_id"), payload.ResolveReason())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromFormula(formula))
}

func (h *FormulaHandler) respondError(c *gin.Context, err error) {
	appErr := mapFormulaError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToLocalizedHTTPError(h.loc))
}

func mapFormulaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidFormulaID),
		errors.Is(err, usecase.ErrInvalidEggID),
		errors.Is(err, usecase.ErrInvalidYearOfFormula),
		errors.Is(err, usecase.ErrInvalidChildPigeonID),
		errors.Is(err, usecase.ErrInvalidTerminationReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFatherNotFound):
		return pkg.NewDomainErrorSimple("FATHER_NOT_FOUND", "Father pigeon not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFatherNotMale):
		return pkg.NewDomainErrorSimple("FATHER_NOT_MALE", "Father pigeon must be male", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFatherNotAlive):
		return pkg.NewDomainErrorSimple("FATHER_NOT_ALIVE", "Father pigeon must be alive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMotherNotFound):
		return pkg.NewDomainErrorSimple("MOTHER_NOT_FOUND", "Mother pigeon not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMotherNotFemale):
		return pkg.NewDomainErrorSimple("MOTHER_NOT_FEMALE", "Mother pigeon must be female", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMotherNotAlive):
		return pkg.NewDomainErrorSimple("MOTHER_NOT_ALIVE", "Mother pigeon must be alive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaxEggsReached):
		return pkg.NewDomainErrorSimple("MAX_EGGS_REACHED", "Maximum number of eggs reached", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEggAlreadyTransformed):
		return pkg.NewDomainErrorSimple("EGG_ALREADY_TRANSFORMED", "Egg has already been transformed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormulaTerminated):
		return pkg.NewDomainErrorSimple("FORMULA_ALREADY_TERMINATED", "Formula has already been terminated", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormulaNotFound):
		return pkg.NewDomainErrorSimple("FORMULA_NOT_FOUND", "Formula not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEggNotFound):
		return pkg.NewDomainErrorSimple("EGG_NOT_FOUND", "Egg not found in this formula", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
