package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// RouteHandler serves path search endpoints. An unreachable destination is a
// 200 with found=false, not an error status.
type RouteHandler struct {
	repo RouteRepository
	log  *logrus.Logger
}

// NewRouteHandler creates a RouteHandler with the given service and logger.
func NewRouteHandler(repo RouteRepository, log *logrus.Logger) *RouteHandler {
	return &RouteHandler{repo: repo, log: log}
}

// Find handles POST /api/v1/routes.
func (h *RouteHandler) Find(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	res, err := h.repo.FindRoute(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err, "finding route")

		return
	}

	c.JSON(http.StatusOK, res)
}

// Compare handles POST /api/v1/routes/compare. All three algorithms run over
// the same snapshot so their results are directly comparable.
func (h *RouteHandler) Compare(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	res, err := h.repo.CompareRoutes(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err, "comparing routes")

		return
	}

	c.JSON(http.StatusOK, res)
}

// respondSearchError maps search failures onto HTTP statuses shared by both
// endpoints.
func (h *RouteHandler) respondSearchError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, models.ErrUnknownNode):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, models.ErrEmptyGraph):
		respondError(c, http.StatusConflict, ErrCodeConflict, "graph has no nodes")
	case errors.Is(err, models.ErrSearchCancelled):
		respondError(c, http.StatusRequestTimeout, ErrCodeCancelled, "search cancelled")
	case errors.Is(err, models.ErrUnknownAlgorithm):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	default:
		h.log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
