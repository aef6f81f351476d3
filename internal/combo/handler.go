package combo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

type Handler struct {
	service *Service
	cart    *cart.Service
}

func NewHandler(service *Service, cartService *cart.Service) *Handler {
	return &Handler{service: service, cart: cartService}
}

// POST /cart/combo — confirm the selection panel (add or edit).
func (h *Handler) Confirm(c *gin.Context) {
	lang := i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
	sid := c.GetString("sessionID")

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	item, err := h.service.Confirm(sid, req, lang)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncompleteSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, i18n.KeySelectionIncomplete)})
		case errors.Is(err, catalog.ErrItemNotFound), errors.Is(err, cart.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, i18n.KeyItemNotFound)})
		case errors.Is(err, cart.ErrItemUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(lang, i18n.KeyItemUnavailable)})
		case errors.Is(err, ErrNotCustomizable),
			errors.Is(err, ErrInvalidSauce),
			errors.Is(err, ErrInvalidDrink):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":  item,
		"total": h.cart.Total(sid),
		"count": h.cart.ItemCount(sid),
	})
}

// GET /cart/items/:id/selection — rehydrated state for the edit panel.
func (h *Handler) Selection(c *gin.Context) {
	lang := i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
	sid := c.GetString("sessionID")

	sel, err := h.service.Rehydrate(sid, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound), errors.Is(err, catalog.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, i18n.KeyItemNotFound)})
		case errors.Is(err, ErrNotCustomized):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itemId":     sel.Item.ID,
		"comboType":  sel.ComboType,
		"sauces":     sel.Sauces,
		"drink":      sel.Drink,
		"canConfirm": sel.CanConfirm(),
	})
}
