package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// TrafficHandler serves traffic simulation endpoints.
type TrafficHandler struct {
	repo TrafficRepository
	log  *logrus.Logger
}

// NewTrafficHandler creates a TrafficHandler with the given service and logger.
func NewTrafficHandler(repo TrafficRepository, log *logrus.Logger) *TrafficHandler {
	return &TrafficHandler{repo: repo, log: log}
}

// Tick handles POST /api/v1/traffic/tick. The body is optional; an empty
// request ticks at the server clock, a pinned "now" replays deterministically.
func (h *TrafficHandler) Tick(c *gin.Context) {
	var req models.TickRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

			return
		}
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	res, err := h.repo.Tick(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("applying traffic tick")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "traffic.tick", "updated_edges": res.UpdatedEdges}).Info("audit")

	c.JSON(http.StatusOK, res)
}

// Congestion handles GET /api/v1/traffic.
func (h *TrafficHandler) Congestion(c *gin.Context) {
	res, err := h.repo.Congestion(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("summarizing congestion")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}
