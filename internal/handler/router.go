package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"listmate/internal/config"
)

// VersionInfo carries build metadata injected at link time.
type VersionInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRouter assembles the gin engine: CORS, health and version endpoints,
// and the v1 API group.
func NewRouter(cfg *config.ServerConfig, listings *ListingHandler, version VersionInfo) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "listmate",
			"version":    version.Version,
			"build_time": version.BuildTime,
			"git_commit": version.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    version.Version,
			"build_time": version.BuildTime,
			"git_commit": version.GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/listings/generate", listings.Generate)
		apiV1.GET("/regions", listings.Regions)
	}

	return router
}
