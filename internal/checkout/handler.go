package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /checkout
func (h *Handler) Submit(c *gin.Context) {
	lang := i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
	sid := c.GetString("sessionID")

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.Submit(c.Request.Context(), sid, req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": i18n.RequiredField(lang, vErr.FieldKey),
			})
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, i18n.KeyEmptyCart)})
		case errors.Is(err, ErrInvalidOrderType), errors.Is(err, ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrSubmissionPending):
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(lang, i18n.KeyOrderPending)})
		default:
			// Webhook rejections and transport failures look the same
			// to the user: the order did not go through, cart intact.
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, i18n.KeyOrderError)})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderSuccess),
		"order":   order,
	})
}
