// Package https_server builds the configured gin engine.
package https_server

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/config"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/logger"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Init creates the gin engine with logging, recovery, CORS and the
// translated validator, then registers all routes.
func Init() *gin.Engine {
	if config.GetConfig().MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	router.RegisterRoutes(engine)

	return engine
}
