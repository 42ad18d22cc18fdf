package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// EdgeHandler serves edge CRUD and traffic-override endpoints.
type EdgeHandler struct {
	repo EdgeRepository
	log  *logrus.Logger
}

// NewEdgeHandler creates an EdgeHandler with the given service and logger.
func NewEdgeHandler(repo EdgeRepository, log *logrus.Logger) *EdgeHandler {
	return &EdgeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/edges. Optional query filters: blocked=true|false,
// level=low|medium|high.
func (h *EdgeHandler) List(c *gin.Context) {
	edges, err := h.repo.ListEdges(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing edges")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	if v, ok := c.GetQuery("blocked"); ok {
		edges = filterEdges(edges, func(e models.Edge) bool { return e.Blocked == (v == "true") })
	}
	if v, ok := c.GetQuery("level"); ok {
		edges = filterEdges(edges, func(e models.Edge) bool { return e.TrafficLevel == models.TrafficLevel(v) })
	}

	c.JSON(http.StatusOK, gin.H{"edges": edges, "count": len(edges)})
}

func filterEdges(edges []models.Edge, keep func(models.Edge) bool) []models.Edge {
	out := make([]models.Edge, 0, len(edges))
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// Create handles POST /api/v1/edges.
func (h *EdgeHandler) Create(c *gin.Context) {
	var req models.CreateEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	edge, err := h.repo.CreateEdge(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReference) {
			respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidReference, err.Error())

			return
		}

		if errors.Is(err, models.ErrDuplicateID) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "edge with this id already exists")

			return
		}

		h.log.WithError(err).Error("creating edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "edge.create", "edge_id": edge.ID, "from": edge.From, "to": edge.To}).Info("audit")

	c.JSON(http.StatusCreated, edge)
}

// Get handles GET /api/v1/edges/:id.
func (h *EdgeHandler) Get(c *gin.Context) {
	edgeID := c.Param("id")
	if err := validatePathID(edgeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	edge, err := h.repo.GetEdge(c.Request.Context(), edgeID)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("fetching edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, edge)
}

// Delete handles DELETE /api/v1/edges/:id.
func (h *EdgeHandler) Delete(c *gin.Context) {
	edgeID := c.Param("id")
	if err := validatePathID(edgeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	if err := h.repo.DeleteEdge(c.Request.Context(), edgeID); err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("deleting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "edge.delete", "edge_id": edgeID}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SetWeight handles PUT /api/v1/edges/:id/weight. It overrides the current
// weight only; the base weight stays, so the next traffic tick recomputes
// from the same free-flow cost.
func (h *EdgeHandler) SetWeight(c *gin.Context) {
	edgeID := c.Param("id")
	if err := validatePathID(edgeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	var req models.SetWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	edge, err := h.repo.SetEdgeWeight(c.Request.Context(), edgeID, req)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("setting edge weight")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "edge.set_weight", "edge_id": edgeID, "weight": *req.Weight}).Info("audit")

	c.JSON(http.StatusOK, edge)
}

// SetBlocked handles PUT /api/v1/edges/:id/blocked.
func (h *EdgeHandler) SetBlocked(c *gin.Context) {
	edgeID := c.Param("id")
	if err := validatePathID(edgeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	var req models.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	edge, err := h.repo.SetEdgeBlocked(c.Request.Context(), edgeID, req)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("setting edge blocked state")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "edge.set_blocked", "edge_id": edgeID, "is_blocked": *req.Blocked}).Info("audit")

	c.JSON(http.StatusOK, edge)
}
