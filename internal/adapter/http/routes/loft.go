package routes

import (
	"pombal/internal/adapter/http/handlers"
	"pombal/internal/adapter/http/middleware"
	"pombal/internal/usecase/interfaces"
	"pombal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathPigeons  = "/pigeons"
	PathFormulas = "/formulas"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, tokens interfaces.ITokenIssuer, loc pkg.Localizer) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.RequireAuth(tokens, loc), authHandler.Me)
	}
}

func addLoftRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, pigeonHandler *handlers.PigeonHandler, formulaHandler *handlers.FormulaHandler) {
	pigeons := rg.Group(PathPigeons, requireAuth)
	{
		pigeons.POST("", pigeonHandler.RegisterPigeon)
		pigeons.GET("", pigeonHandler.ListPigeons)
		pigeons.GET("/:pigeon_id", pigeonHandler.GetPigeon)
		pigeons.PATCH("/:pigeon_id/status", pigeonHandler.UpdatePigeonStatus)
	}

	formulas := rg.Group(PathFormulas, requireAuth)
	{
		formulas.POST("", formulaHandler.CreateFormula)
		formulas.GET("", formulaHandler.ListFormulas)
		formulas.GET("/stats", formulaHandler.FormulaStats)
		formulas.GET("/:formula_id", formulaHandler.GetFormula)
		formulas.POST("/:formula_id/eggs", formulaHandler.AddEgg)
		formulas.PATCH("/:formula_id/eggs/:egg_id/transform", formulaHandler.TransformEgg)
		formulas.PATCH("/:formula_id/terminate", formulaHandler.TerminateFormula)
	}
}
