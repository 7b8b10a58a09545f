package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cyphera/wallet-display/internal/config"
	"github.com/cyphera/wallet-display/internal/handlers"
	"github.com/cyphera/wallet-display/internal/middleware"
	"github.com/cyphera/wallet-display/internal/rates"
)

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(cfg *config.Config, provider rates.Provider) *gin.Engine {
	if cfg.Stage == config.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(corsMiddleware())

	displayHandler := handlers.NewDisplayHandler(cfg, provider)
	currencyHandler := handlers.NewCurrencyHandler()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/display", displayHandler.FormatAmount)
		v1.GET("/currencies", currencyHandler.ListCurrencies)
		v1.GET("/currencies/:code", currencyHandler.GetCurrency)
	}

	return router
}

// corsMiddleware builds the CORS configuration from the environment.
func corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
