package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func requestLanguage(c *gin.Context) i18n.Language {
	return i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

// GET /cart
func (h *Handler) Get(c *gin.Context) {
	sid := sessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"items": h.service.Items(sid),
		"total": h.service.Total(sid),
		"count": h.service.ItemCount(sid),
	})
}

// POST /cart/items — plain (non-customized) add by menu item id.
func (h *Handler) AddItem(c *gin.Context) {
	lang := requestLanguage(c)

	var req struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	item, err := h.service.AddMenuItem(sessionID(c), req.ItemID, req.Quantity, lang)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, i18n.KeyItemNotFound)})
		case errors.Is(err, ErrItemUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(lang, i18n.KeyItemUnavailable)})
		case errors.Is(err, ErrRequiresSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, i18n.KeyRequiresSelection)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":  item,
		"total": h.service.Total(sessionID(c)),
		"count": h.service.ItemCount(sessionID(c)),
	})
}

// PATCH /cart/items/:id/quantity
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	sid := sessionID(c)
	if err := h.service.UpdateQuantity(sid, c.Param("id"), *req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": h.service.Items(sid),
		"total": h.service.Total(sid),
		"count": h.service.ItemCount(sid),
	})
}

// DELETE /cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	sid := sessionID(c)
	if err := h.service.RemoveItem(sid, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": h.service.Items(sid),
		"total": h.service.Total(sid),
	})
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	h.service.Clear(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"items": []*Item{}, "total": 0})
}
