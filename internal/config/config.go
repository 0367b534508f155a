// Package config loads and exposes the application configuration.
// Configuration is TOML, looked up across several candidate paths.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig holds the basic application settings.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"` // "dev" or "release"
}

// MysqlConfig holds the MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`    // MB per file
	MaxBackups int    `toml:"maxBackups"` // rotated files kept
	MaxAge     int    `toml:"maxAge"`     // days kept
	Level      string `toml:"level"`      // debug, info, warn, error
}

// JWTConfig holds signing material and token lifetimes.
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// StreamConfig holds the Stream Chat credentials. When the key or
// secret is empty or a placeholder, the no-op channel provider is used.
type StreamConfig struct {
	APIKey    string `toml:"apiKey"`
	APISecret string `toml:"apiSecret"`
}

// Config aggregates all sections.
type Config struct {
	MainConfig   `toml:"mainConfig"`
	MysqlConfig  `toml:"mysqlConfig"`
	RedisConfig  `toml:"redisConfig"`
	LogConfig    `toml:"logConfig"`
	JWTConfig    `toml:"jwtConfig"`
	StreamConfig `toml:"streamConfig"`
}

var config *Config

// LoadConfig tries the candidate paths in order and loads the first
// readable configuration file.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the global configuration, loading it on first use.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}
