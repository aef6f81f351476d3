package geo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

type Handler struct {
	locator Locator
}

func NewHandler(locator Locator) *Handler {
	return &Handler{locator: locator}
}

// GET /geo/locate — resolve the caller's position for the delivery
// address field. On failure the client leaves the field for manual
// entry, so the error is informational only.
func (h *Handler) Locate(c *gin.Context) {
	lang := i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))

	loc, err := h.locator.Locate(c.Request.Context(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, i18n.KeyLocationError)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
		"address":   loc.AddressString(),
	})
}
