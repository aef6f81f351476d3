package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /session — open an anonymous session.
func (h *Handler) Start(c *gin.Context) {
	sessionID, token, err := h.service.Start()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sessionID,
		"token":     token,
	})
}

// PUT /session/scroll — save the scroll offset before unload.
func (h *Handler) SaveScroll(c *gin.Context) {
	var req struct {
		Offset *float64 `json:"offset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Offset == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset is required"})
		return
	}

	h.service.SaveScroll(c.GetString("sessionID"), *req.Offset)
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// GET /session/scroll — restore the saved offset (clears it).
func (h *Handler) RestoreScroll(c *gin.Context) {
	offset, ok := h.service.RestoreScroll(c.GetString("sessionID"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offset": offset})
}
