package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// NetworkHandler serves whole-network endpoints.
type NetworkHandler struct {
	repo NetworkRepository
	log  *logrus.Logger
}

// NewNetworkHandler creates a NetworkHandler with the given service and logger.
func NewNetworkHandler(repo NetworkRepository, log *logrus.Logger) *NetworkHandler {
	return &NetworkHandler{repo: repo, log: log}
}

// Rebuild handles POST /api/v1/network/rebuild. The body is optional; absent
// fields fall back to the server's configured defaults.
func (h *NetworkHandler) Rebuild(c *gin.Context) {
	var req models.RebuildRequest
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

	stats, err := h.repo.Rebuild(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("rebuilding network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "network.rebuild", "nodes": stats.Nodes, "edges": stats.Edges}).Info("audit")

	c.JSON(http.StatusOK, stats)
}

// Stats handles GET /api/v1/network/stats.
func (h *NetworkHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("reading network stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, stats)
}
