package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/models"
)

// NodeHandler serves node CRUD and nearest-node endpoints.
type NodeHandler struct {
	repo NodeRepository
	log  *logrus.Logger
}

// NewNodeHandler creates a NodeHandler with the given service and logger.
func NewNodeHandler(repo NodeRepository, log *logrus.Logger) *NodeHandler {
	return &NodeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/nodes.
func (h *NodeHandler) List(c *gin.Context) {
	nodes, err := h.repo.ListNodes(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing nodes")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "count": len(nodes)})
}

// Create handles POST /api/v1/nodes.
func (h *NodeHandler) Create(c *gin.Context) {
	var req models.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	node, err := h.repo.CreateNode(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateID) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "node with this id already exists")

			return
		}

		h.log.WithError(err).Error("creating node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "node.create", "node_id": node.ID, "kind": node.Kind}).Info("audit")

	c.JSON(http.StatusCreated, node)
}

// Get handles GET /api/v1/nodes/:id.
func (h *NodeHandler) Get(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	node, err := h.repo.GetNode(c.Request.Context(), nodeID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("fetching node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, node)
}

// Delete handles DELETE /api/v1/nodes/:id. Edges touching the node are
// removed with it; the response reports how many went.
func (h *NodeHandler) Delete(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id: "+err.Error())

		return
	}

	removed, err := h.repo.DeleteNode(c.Request.Context(), nodeID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("deleting node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "node.delete", "node_id": nodeID, "removed_edges": removed}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true, "removed_edges": removed})
}

// Nearest handles GET /api/v1/resolve?lat=&lng=, returning the node closest
// to the query point by great-circle distance.
func (h *NodeHandler) Nearest(c *gin.Context) {
	at, err := parseCoordinate(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if !at.Valid() {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, models.ErrInvalidCoordinate.Error())

		return
	}

	res, err := h.repo.NearestNode(c.Request.Context(), at)
	if err != nil {
		if errors.Is(err, models.ErrEmptyGraph) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "graph has no nodes")

			return
		}

		h.log.WithError(err).Error("resolving nearest node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}
