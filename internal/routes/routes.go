package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/database"
	"eyewear-catalog/internal/handlers"
	"eyewear-catalog/internal/middleware"
	"eyewear-catalog/internal/repository"
	"eyewear-catalog/internal/upload"
)

// RegisterRoutes cablea repositorios, servicios y handlers sobre el
// router. Las rutas de lectura del catálogo son públicas; todas las
// mutaciones exigen un token de administrador.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, tokens *auth.TokenIssuer, uploads *upload.Service, logger *zap.Logger) {
	productRepo := repository.NewProductRepository(db.Collection(database.ProductsCollection))
	collectionRepo := repository.NewCollectionRepository(db.Collection(database.CollectionsCollection))
	adminRepo := repository.NewAdminRepository(db.Collection(database.AdminsCollection))

	authService := auth.NewService(adminRepo, tokens)

	products := handlers.NewProductHandler(productRepo, logger)
	collections := handlers.NewCollectionHandler(collectionRepo, logger)
	admins := handlers.NewAdminHandler(authService, logger)
	uploadHandler := handlers.NewUploadHandler(uploads, logger)

	requireAdmin := middleware.RequireAdmin(authService)

	router.Use(middleware.CORS())
	router.Static("/uploads", uploads.Dir())

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "GCG Eyewear API - Luxury crafted for visionaries"})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "GCG Eyewear API"})
		})

		p := api.Group("/products")
		{
			p.GET("", products.List)
			p.GET("/featured", products.Featured)
			p.GET("/search", products.Search)
			p.GET("/collection/:name", products.ByCollection)
			p.GET("/:id", products.Get)

			p.POST("", requireAdmin, products.Create)
			p.PUT("/:id", requireAdmin, products.Update)
			p.DELETE("/:id", requireAdmin, products.Delete)
		}

		col := api.Group("/collections")
		{
			col.GET("", collections.List)
			col.GET("/active", collections.Active)
			col.GET("/slug/:slug", collections.GetBySlug)
			col.GET("/:id", collections.Get)

			col.POST("", requireAdmin, collections.Create)
			col.PUT("/:id", requireAdmin, collections.Update)
			col.DELETE("/:id", requireAdmin, collections.Delete)
		}

		adm := api.Group("/admin")
		{
			adm.POST("/register", admins.Register)
			adm.POST("/login", admins.Login)

			protected := adm.Group("", requireAdmin)
			{
				protected.GET("/me", admins.Me)
				protected.GET("/products", products.AdminList)
				protected.PUT("/products/bulk/status", products.BulkUpdateStatus)
				protected.PUT("/products/:id/status", products.UpdateStatus)
				protected.GET("/stats", products.Stats)
				protected.POST("/upload", uploadHandler.Upload)
				protected.POST("/upload/multiple", uploadHandler.UploadMultiple)
			}
		}
	}
}
