package handler

import (
	"log/slog"
	"net/http"

	"library-platform/internal/handler/api"
	"library-platform/internal/handler/middleware"
	"library-platform/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewUserRouter(engine *gin.Engine, cfg config.UserConfig, logger *slog.Logger, h *api.UserHandler) {
	setupMiddleware(engine, cfg.CORS, logger)
	engine.GET("/health", healthCheck)
	addRoutes(engine.Group("/users"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
	})
}

func NewBookRouter(engine *gin.Engine, cfg config.BookConfig, logger *slog.Logger, h *api.BookHandler) {
	setupMiddleware(engine, cfg.CORS, logger)
	engine.GET("/health", healthCheck)
	addRoutes(engine.Group("/books"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
	})
}

func NewLoanRouter(engine *gin.Engine, cfg config.LoanConfig, logger *slog.Logger, h *api.LoanHandler) {
	setupMiddleware(engine, cfg.CORS, logger)
	engine.GET("/health", healthCheck)
	addRoutes(engine.Group("/loans"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Return},
	})
}

func NewReviewRouter(engine *gin.Engine, cfg config.ReviewConfig, logger *slog.Logger, h *api.ReviewHandler) {
	setupMiddleware(engine, cfg.CORS, logger)
	engine.GET("/health", healthCheck)
	// stats sits under a static segment so it cannot collide with /:id
	addRoutes(engine.Group("/reviews"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/stats/:bookId", Handler: h.Stats},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
	})
}

func setupMiddleware(engine *gin.Engine, corsCfg config.CORSConfig, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(corsCfg))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
