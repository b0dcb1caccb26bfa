package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envBindings maps flat MG_* variables onto config keys. Anything else can be
// overridden through the generic MG_<SECTION>_<KEY> form.
var envBindings = map[string]string{
	"database.host":                         "MG_DB_HOST",
	"database.port":                         "MG_DB_PORT",
	"database.username":                     "MG_DB_USERNAME",
	"database.password":                     "MG_DB_PASSWORD",
	"database.database":                     "MG_DB_NAME",
	"database.sslMode":                      "MG_DB_SSL_MODE",
	"database.maxOpenConns":                 "MG_DB_MAX_OPEN_CONNS",
	"database.maxIdleConns":                 "MG_DB_MAX_IDLE_CONNS",
	"server.host":                           "MG_SERVER_HOST",
	"server.port":                           "MG_SERVER_PORT",
	"logger.level":                          "MG_LOGGER_LEVEL",
	"transaction.lockTimeoutMs":             "MG_TRANSACTION_LOCK_TIMEOUT_MS",
	"transaction.maxRetries":                "MG_TRANSACTION_MAX_RETRIES",
	"miniGames.degradeOpenOnStorageFailure": "MG_DEGRADE_OPEN_ON_STORAGE_FAILURE",
	"miniGames.rateLimitAttempts":           "MG_RATE_LIMIT_ATTEMPTS",
	"scheduler.enabled":                     "MG_SCHEDULER_ENABLED",
}

// LoadConfig reads configs/<MG_ENV>.yaml, then applies .env and MG_* overrides
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance; tests feed it YAML directly
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix("MG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, name := range envBindings {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)
	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowQueryMs", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.lockTimeoutMs", 5000)
	v.SetDefault("transaction.maxRetries", 3)
	v.SetDefault("transaction.retryBackoffMs", 50)

	v.SetDefault("miniGames.degradeOpenOnStorageFailure", true)
	v.SetDefault("miniGames.rateLimitAttempts", 10)
	v.SetDefault("miniGames.rateLimitWindowSeconds", 60)
	v.SetDefault("miniGames.leaderboardSize", 10)
	v.SetDefault("miniGames.durationGraceSeconds", 10)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.lockCleanup", "@every 1m")
	v.SetDefault("scheduler.limiterPrune", "@every 5m")
	v.SetDefault("scheduler.poolStats", "@every 30s")
}

// getEnvironment reads MG_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("MG_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts raw second and minute counts into time.Duration
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
