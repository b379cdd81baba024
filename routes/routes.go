package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"trustcheck/handlers"
	"trustcheck/utils"
)

// RegisterRoutes wires the API endpoints and the SPA static serving.
func RegisterRoutes(r *gin.Engine, th *handlers.TrustHandler, uh *handlers.UsageHandler, ph *handlers.PaymentHandler, staticDir string) {
	// Wrong verb on a known path must yield 405 before any body parsing.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": utils.MsgMethodNotAllowed})
	})

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	if staticDir != "" {
		r.Use(static.Serve("/", static.LocalFile(staticDir, true)))
	}

	api := r.Group("/api")
	{
		api.POST("/check-trust", th.CheckTrustHandler)
		api.GET("/user-usage", uh.UserUsageHandler)
		api.POST("/create-payment-intent", ph.CreatePaymentIntentHandler)
		api.GET("/payment-config", ph.PaymentConfigHandler)
	}

	r.GET("/healthz", handlers.HealthHandler)

	// SPA catch-all: unknown non-API GET paths fall back to index.html.
	r.NoRoute(func(c *gin.Context) {
		if staticDir != "" && c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": utils.MsgNotFound})
	})
}
