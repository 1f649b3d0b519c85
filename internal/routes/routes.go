package routes

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"StockDashboard/internal/collector"
	"StockDashboard/internal/config"
	"StockDashboard/internal/controller"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/trace"
)

// SetupRouter wires the dashboard API and UI on top of fetcher.
func SetupRouter(cfg *config.Config, fetcher collector.Fetcher, rec recorder.Recorder) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), controller.RequestID(), corsMiddleware(cfg.Server.AllowedOrigins))

	// --- Services ---
	col := collector.NewCollector(fetcher)

	// --- Routes & Controllers ---
	controller.RegisterUI(r)
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)

		controller.NewPageController(col, rec, controller.Options{
			Palette:       cfg.Palette(),
			AnalysisRange: cfg.AnalysisRange(),
		}).RegisterRoutes(api)

		controller.NewRequestLogController(rec).RegisterRoutes(api)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", trace.Header},
		ExposeHeaders: []string{"Content-Length", trace.Header},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}
