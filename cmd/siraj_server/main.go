package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/config"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql"
	myredis "github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/redis"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/https_server"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/logger"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/stream"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	conf := config.GetConfig()

	// 2. Initialize logging
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialized")

	// 3. Initialize the database
	repos := mysql.Init()
	zap.L().Info("database initialized")

	// 4. Initialize Redis
	myredis.Init()
	zap.L().Info("redis initialized")

	// 5. Initialize JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("jwt initialized")

	// 6. Initialize the chat channel provider
	provider, err := stream.Init()
	if err != nil {
		zap.L().Fatal("chat provider init failed", zap.Error(err))
	}
	zap.L().Info("chat provider initialized")

	// 7. Initialize the service layer (dependency injection)
	service.InitServices(repos, myredis.GetCacheService(), provider)
	zap.L().Info("service layer initialized")

	// 8. Build the HTTP server
	engine := https_server.Init()
	zap.L().Info("http server initialized")

	// 9. Run
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down server...")
	zap.L().Info("server stopped")
}
