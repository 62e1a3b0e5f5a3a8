package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "geoquote/internal/adapter/http/dto/request"
	response "geoquote/internal/adapter/http/dto/response"
	"geoquote/internal/domain/entities"
	"geoquote/internal/usecase"
	"geoquote/pkg"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// QuoteSessionHandler handles HTTP requests for drawing/quoting sessions.
//
// Every mutating endpoint returns the full session view so a client can
// re-render from one response.

type QuoteSessionHandler struct {
	usecase usecase.IQuoteSessionUseCase
}

func NewQuoteSessionHandler(uc usecase.IQuoteSessionUseCase) *QuoteSessionHandler {
	return &QuoteSessionHandler{usecase: uc}
}

// CreateSession opens a session seeded with an industry preset.
func (h *QuoteSessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateSession(c.Request.Context(), payload.IndustryID, payload.ResolveUnitSystem())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *QuoteSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.DeleteSession(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteSessionHandler) SetMode(c *gin.Context) {
	var payload request.ModeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetMode(c.Request.Context(), c.Param("session_id"), payload.ToMode())
	})
}

func (h *QuoteSessionHandler) SetActiveService(c *gin.Context) {
	var payload request.ActiveServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetActiveService(c.Request.Context(), c.Param("session_id"), payload.ServiceID)
	})
}

func (h *QuoteSessionHandler) SetUnitSystem(c *gin.Context) {
	var payload request.UnitSystemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetUnitSystem(c.Request.Context(), c.Param("session_id"), payload.ToUnitSystem())
	})
}

func (h *QuoteSessionHandler) SetSmoothing(c *gin.Context) {
	var payload request.SmoothingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetSmoothing(c.Request.Context(), c.Param("session_id"), *payload.Level)
	})
}

func (h *QuoteSessionHandler) SetMargin(c *gin.Context) {
	var payload request.MarginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetMargin(c.Request.Context(), c.Param("session_id"), *payload.Margin)
	})
}

func (h *QuoteSessionHandler) SetPricingConfig(c *gin.Context) {
	var payload request.PricingConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetPricingConfig(c.Request.Context(), c.Param("session_id"), payload.ToEntity())
	})
}

func (h *QuoteSessionHandler) SetRateOverride(c *gin.Context) {
	var payload request.OverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetRateOverride(c.Request.Context(), c.Param("session_id"), c.Param("service_id"), payload.Value)
	})
}

func (h *QuoteSessionHandler) SetMinimumOverride(c *gin.Context) {
	var payload request.OverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.SetMinimumOverride(c.Request.Context(), c.Param("session_id"), c.Param("service_id"), payload.Value)
	})
}

// PointerDown starts a freehand stroke.
func (h *QuoteSessionHandler) PointerDown(c *gin.Context) {
	var payload request.PointerEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.PointerDown(c.Request.Context(), c.Param("session_id"), payload.ToSample())
	})
}

// PointerMove feeds one sample into the active stroke. The response
// reports whether the live channel was actually recomputed, so clients
// can tell a throttled sample from a processed one.
func (h *QuoteSessionHandler) PointerMove(c *gin.Context) {
	var payload request.PointerEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, updated, err := h.usecase.PointerMove(c.Request.Context(), c.Param("session_id"), payload.ToSample())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"session": response.FromSession(session),
	})
}

// PointerUp finalizes the active stroke into a committed geometry, or
// discards it when degenerate.
func (h *QuoteSessionHandler) PointerUp(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.PointerUp(c.Request.Context(), c.Param("session_id"))
	})
}

func (h *QuoteSessionHandler) CancelStroke(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.CancelStroke(c.Request.Context(), c.Param("session_id"))
	})
}

// AddVertex appends one click for the polygon, line or rectangle tool.
func (h *QuoteSessionHandler) AddVertex(c *gin.Context) {
	var payload request.VertexRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.AddVertex(c.Request.Context(), c.Param("session_id"), payload.ToPoint())
	})
}

// FinishShape closes the click buffer into a committed geometry.
func (h *QuoteSessionHandler) FinishShape(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.FinishShape(c.Request.Context(), c.Param("session_id"))
	})
}

// AddCircle places a circle by center and radius in display units.
func (h *QuoteSessionHandler) AddCircle(c *gin.Context) {
	var payload request.CircleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.AddCircle(c.Request.Context(), c.Param("session_id"), payload.Center(), payload.Radius)
	})
}

func (h *QuoteSessionHandler) RemoveGeometry(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.RemoveGeometry(c.Request.Context(), c.Param("session_id"), c.Param("geometry_id"))
	})
}

func (h *QuoteSessionHandler) Clear(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.Clear(c.Request.Context(), c.Param("session_id"))
	})
}

func (h *QuoteSessionHandler) Undo(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.Undo(c.Request.Context(), c.Param("session_id"))
	})
}

func (h *QuoteSessionHandler) Redo(c *gin.Context) {
	h.respondSession(c, func() (entities.QuoteSession, error) {
		return h.usecase.Redo(c.Request.Context(), c.Param("session_id"))
	})
}

// GetMeasurements returns the display measurement snapshot.
func (h *QuoteSessionHandler) GetMeasurements(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.usecase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	measurements, err := h.usecase.Measurements(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurements(measurements, session.UnitSystem))
}

// GetBid returns the display bid.
func (h *QuoteSessionHandler) GetBid(c *gin.Context) {
	bid, err := h.usecase.Bid(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

// Export returns the committed geometries as a GeoJSON FeatureCollection
// with measurements in both unit systems.
func (h *QuoteSessionHandler) Export(c *gin.Context) {
	fc, err := h.usecase.Export(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, fc)
}

func (h *QuoteSessionHandler) respondSession(c *gin.Context, op func() (entities.QuoteSession, error)) {
	session, err := op()
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidUnitSystem),
		errors.Is(err, usecase.ErrInvalidMode),
		errors.Is(err, usecase.ErrInvalidSmoothing),
		errors.Is(err, usecase.ErrInvalidMargin),
		errors.Is(err, usecase.ErrInvalidRadius),
		errors.Is(err, usecase.ErrInvalidOverride):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_CONFIG", "Pricing config violates invariants", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Service not in session catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
