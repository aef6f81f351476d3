package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func requestLanguage(c *gin.Context) i18n.Language {
	return i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// --------------------------------------------------
// Public menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	lang := requestLanguage(c)

	c.JSON(http.StatusOK, gin.H{
		"items":    h.service.GetMenu(),
		"language": lang,
		"dir":      lang.Dir(),
	})
}

func (h *Handler) Get(c *gin.Context) {
	lang := requestLanguage(c)

	item, err := h.service.GetItem(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, i18n.KeyItemNotFound)})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Admin: upload a menu item image
// --------------------------------------------------
func (h *AdminHandler) UploadImage(c *gin.Context) {
	itemID := c.Param("id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.service.UploadImage(
		c.Request.Context(),
		itemID,
		file,
		header.Filename,
	)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":   itemID,
		"image_url": url,
	})
}

// --------------------------------------------------
// Admin: toggle item availability
// --------------------------------------------------
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	itemID := c.Param("id")

	var req struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isAvailable is required"})
		return
	}

	if err := h.service.SetAvailability(itemID, *req.IsAvailable); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":      itemID,
		"is_available": *req.IsAvailable,
	})
}
