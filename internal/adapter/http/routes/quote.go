package routes

import (
	"geoquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions   = "/sessions"
	PathIndustries = "/industries"
)

func addQuoteRoutes(rg *gin.RouterGroup, sessionHandler *handlers.QuoteSessionHandler, catalogHandler *handlers.CatalogHandler) {
	industries := rg.Group(PathIndustries)
	{
		industries.GET("", catalogHandler.ListIndustries)
		industries.GET("/:industry_id", catalogHandler.GetIndustry)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.DELETE("/:session_id", sessionHandler.DeleteSession)

		// Session settings.
		sessions.PATCH("/:session_id/mode", sessionHandler.SetMode)
		sessions.PATCH("/:session_id/service", sessionHandler.SetActiveService)
		sessions.PATCH("/:session_id/units", sessionHandler.SetUnitSystem)
		sessions.PATCH("/:session_id/smoothing", sessionHandler.SetSmoothing)
		sessions.PATCH("/:session_id/margin", sessionHandler.SetMargin)
		sessions.PUT("/:session_id/pricing-config", sessionHandler.SetPricingConfig)
		sessions.PUT("/:session_id/overrides/rate/:service_id", sessionHandler.SetRateOverride)
		sessions.PUT("/:session_id/overrides/minimum/:service_id", sessionHandler.SetMinimumOverride)

		// Freehand stroke lifecycle.
		sessions.POST("/:session_id/stroke/down", sessionHandler.PointerDown)
		sessions.POST("/:session_id/stroke/move", sessionHandler.PointerMove)
		sessions.POST("/:session_id/stroke/up", sessionHandler.PointerUp)
		sessions.POST("/:session_id/stroke/cancel", sessionHandler.CancelStroke)

		// Click tools.
		sessions.POST("/:session_id/vertices", sessionHandler.AddVertex)
		sessions.POST("/:session_id/finish", sessionHandler.FinishShape)
		sessions.POST("/:session_id/circles", sessionHandler.AddCircle)

		// Geometry list management.
		sessions.DELETE("/:session_id/geometries/:geometry_id", sessionHandler.RemoveGeometry)
		sessions.POST("/:session_id/clear", sessionHandler.Clear)
		sessions.POST("/:session_id/undo", sessionHandler.Undo)
		sessions.POST("/:session_id/redo", sessionHandler.Redo)

		// Derived outputs.
		sessions.GET("/:session_id/measurements", sessionHandler.GetMeasurements)
		sessions.GET("/:session_id/bid", sessionHandler.GetBid)
		sessions.GET("/:session_id/export", sessionHandler.Export)
	}
}
