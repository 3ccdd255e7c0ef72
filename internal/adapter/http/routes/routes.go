package routes

import (
	"context"
	"log"

	_ "workorder_invoicing/docs" // This will be auto-generated
	"workorder_invoicing/internal/app"
	"workorder_invoicing/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	application, err := app.New(context.Background(), cfg, reg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(application)
	log.Printf("[http][server] listening port=%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, a)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	getRoutes(router, a)
	return router
}

func getRoutes(router *gin.Engine, a *app.App) {
	addWorkOrderRoutes(router, a)
	addAssistantRoutes(router, a)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
}

func setMiddlewares(router *gin.Engine, a *app.App) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(a.Metrics.GinMiddleware())
}
