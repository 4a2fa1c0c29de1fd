package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterOptions configura el router principal
type RouterOptions struct {
	ListingPath    string
	AllowedOrigins []string
}

// NewRouter registra todas las rutas de la API
func NewRouter(api *API, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", api.Health)
	router.POST("/login", api.Login)
	router.POST("/logout", api.Logout)

	dashboard := router.Group("")
	dashboard.Use(api.SessionMiddleware())
	{
		dashboard.GET("/dashboard", api.Dashboard)

		invoices := dashboard.Group(opts.ListingPath)
		invoices.GET("", api.ListInvoices)
		invoices.POST("/create", api.CreateInvoice)
		invoices.POST("/:id/edit", api.UpdateInvoice)
		invoices.POST("/:id/delete", api.DeleteInvoice)
	}

	return router
}
