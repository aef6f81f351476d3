package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/checkout"
	"github.com/YonatanCohen1020/nightwing-site/internal/combo"
	"github.com/YonatanCohen1020/nightwing-site/internal/geo"
	"github.com/YonatanCohen1020/nightwing-site/internal/middleware"
	"github.com/YonatanCohen1020/nightwing-site/internal/session"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Catalog      *catalog.Handler
	CatalogAdmin *catalog.AdminHandler
	Cart         *cart.Handler
	Combo        *combo.Handler
	Checkout     *checkout.Handler
	Geo          *geo.Handler
	Session      *session.Handler

	Tokens         *session.TokenManager
	AdminToken     string
	AllowedOrigins []string
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", "X-Admin-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/menu", h.Catalog.List)
	r.GET("/menu/:id", h.Catalog.Get)
	r.GET("/geo/locate", h.Geo.Locate)
	r.POST("/session", h.Session.Start)

	// ───────────────────────── SESSION-SCOPED ─────────────────────────
	sess := r.Group("/")
	sess.Use(middleware.SessionMiddleware(h.Tokens))
	{
		sess.GET("/cart", h.Cart.Get)
		sess.POST("/cart/items", h.Cart.AddItem)
		sess.POST("/cart/combo", h.Combo.Confirm)
		sess.GET("/cart/items/:id/selection", h.Combo.Selection)
		sess.PATCH("/cart/items/:id/quantity", h.Cart.UpdateQuantity)
		sess.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		sess.DELETE("/cart", h.Cart.Clear)

		sess.POST("/checkout", h.Checkout.Submit)

		sess.PUT("/session/scroll", h.Session.SaveScroll)
		sess.GET("/session/scroll", h.Session.RestoreScroll)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(h.AdminToken))
	{
		admin.POST("/menu/:id/image", h.CatalogAdmin.UploadImage)
		admin.PATCH("/menu/:id/availability", h.CatalogAdmin.SetAvailability)
	}

	return r
}
