package redis

import (
	"strconv"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/config"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/constants"

	goredis "github.com/go-redis/redis/v8"
)

var cacheService AsyncCacheService

// Init connects to Redis and starts the cache worker pool.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     conf.RedisConfig.Password,
		DB:           conf.RedisConfig.Db,
		PoolSize:     50,
		MinIdleConns: constants.CACHE_WORKER_NUM,
	})

	cacheService = NewRedisCache(client, constants.CACHE_WORKER_NUM, constants.CACHE_CHANNEL_SIZE)
}

// GetCacheService returns the cache service for dependency injection.
func GetCacheService() AsyncCacheService {
	return cacheService
}
