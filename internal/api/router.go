package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/api/handlers"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/api/middleware"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/config"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/services"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/session"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *gin.Engine {
	// Initialize services needed by API handlers
	propertyService := services.NewPropertyService(db, rdb, cfg)
	inquiryService := services.NewInquiryService(db)
	gate := session.NewGate(cfg, session.NewRedisStore(rdb))

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService, cfg)
	contactHandler := handlers.NewContactHandler(inquiryService)
	authHandler := handlers.NewAuthHandler(gate)
	adminHandler := handlers.NewAdminPropertyHandler(propertyService, inquiryService)

	v1 := r.Group("/v1")
	{
		// Public catalog routes. The static route must be registered before
		// the :id parameter route.
		v1.GET("/propiedades/destacadas", propertyHandler.Featured)
		v1.GET("/propiedades", propertyHandler.Search)
		v1.GET("/propiedades/:id", propertyHandler.GetByID)
		v1.POST("/contacto", contactHandler.Submit)

		// Admin session
		v1.POST("/admin/login", authHandler.Login)
		v1.POST("/admin/logout", authHandler.Logout)

		// Admin panel, token-gated
		admin := v1.Group("/admin", middleware.AdminAuth(cfg.JwtSecret))
		{
			admin.GET("/propiedades", adminHandler.List)
			admin.POST("/propiedades", adminHandler.Create)
			admin.PUT("/propiedades/:id", adminHandler.Update)
			admin.PATCH("/propiedades/:id/estado", adminHandler.ToggleEstado)
			admin.DELETE("/propiedades/:id", adminHandler.Delete)
			admin.GET("/consultas", adminHandler.ListInquiries)
			admin.PATCH("/consultas/:id/leida", adminHandler.MarkInquiryRead)
		}
	}

	return r
}
