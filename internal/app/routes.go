package app

import (
	"github.com/bportes89/projeto-kanban/internal/ai"
	"github.com/bportes89/projeto-kanban/internal/cache"
	"github.com/bportes89/projeto-kanban/internal/config"
	"github.com/bportes89/projeto-kanban/internal/handlers"
	"github.com/bportes89/projeto-kanban/internal/repo"
	"github.com/bportes89/projeto-kanban/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")

	stores := repo.NewPGStores(db)
	txm := repo.NewPGTxManager(db)
	boardCache := cache.NewBoardCache(rdb, cfg.Redis.DefaultTTL.Duration())

	boardSvc := service.NewBoardService(stores, txm, boardCache)
	cardSvc := service.NewCardService(stores, txm, boardCache)

	boardHandler := handlers.NewBoardHandler(boardSvc)
	cardHandler := handlers.NewCardHandler(cardSvc)
	analysisHandler := handlers.NewAnalysisHandler(newAnalyzer(cfg.AI))

	registerBoardRoutes(api, boardHandler)
	registerCardRoutes(api, cardHandler)
	api.POST("/ai/analyze", analysisHandler.Analyze)
}

// newAnalyzer picks the HTTP gateway when a service URL is configured and
// the offline heuristics otherwise.
func newAnalyzer(cfg config.AIConfig) ai.Analyzer {
	if cfg.ServiceURL != "" {
		return ai.NewGateway(cfg.ServiceURL, cfg.Timeout.Duration())
	}
	return ai.NewOfflineAnalyzer()
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Mentoring Kanban API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerBoardRoutes(api *gin.RouterGroup, h *handlers.BoardHandler) {
	api.GET("/boards", h.List)
	api.POST("/boards", h.Create)
	api.GET("/boards/:id", h.Detail)
	api.POST("/boards/:id/columns", h.CreateColumn)
	api.PUT("/columns/:id", h.UpdateColumn)
}

func registerCardRoutes(api *gin.RouterGroup, h *handlers.CardHandler) {
	api.POST("/cards", h.Create)
	api.GET("/cards/:id", h.Get)
	api.PUT("/cards/:id", h.Update)
	api.POST("/cards/:id/messages", h.AppendMessage)
	api.POST("/cards/:id/checklist", h.AddChecklistItem)
	api.PUT("/checklist/:id", h.MutateChecklistItem)
	api.DELETE("/checklist/:id", h.DeleteChecklistItem)
}
