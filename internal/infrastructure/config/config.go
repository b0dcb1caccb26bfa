package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	MiniGames   MiniGamesConfig   `mapstructure:"miniGames"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowQueryMs     int           `mapstructure:"slowQueryMs"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// TransactionConfig tunes how results are recorded
type TransactionConfig struct {
	LockTimeoutMs  int64 `mapstructure:"lockTimeoutMs"`
	MaxRetries     int   `mapstructure:"maxRetries"`
	RetryBackoffMs int64 `mapstructure:"retryBackoffMs"`
}

// MiniGamesConfig contains mini-game policy and optional catalog overrides
type MiniGamesConfig struct {
	DegradeOpenOnStorageFailure bool         `mapstructure:"degradeOpenOnStorageFailure"`
	RateLimitAttempts           int          `mapstructure:"rateLimitAttempts"`
	RateLimitWindowSeconds      int          `mapstructure:"rateLimitWindowSeconds"`
	LeaderboardSize             int          `mapstructure:"leaderboardSize"`
	DurationGraceSeconds        int          `mapstructure:"durationGraceSeconds"`
	Games                       []GameConfig `mapstructure:"games"`
}

// GameConfig overrides or adds one catalog entry. Zero fields keep the built-in value.
type GameConfig struct {
	ID                string `mapstructure:"id"`
	DisplayName       string `mapstructure:"displayName"`
	CooldownHours     int    `mapstructure:"cooldownHours"`
	DurationSeconds   int    `mapstructure:"durationSeconds"`
	SCRate            string `mapstructure:"scRate"`
	SCCap             string `mapstructure:"scCap"` // decimal, e.g. "1.00"
	GCRate            string `mapstructure:"gcRate"`
	GCCap             string `mapstructure:"gcCap"`
	MaxScorePerSecond int64  `mapstructure:"maxScorePerSecond"`
}

// SchedulerConfig holds cron expressions for maintenance jobs; empty disables a job
type SchedulerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	LockCleanup  string `mapstructure:"lockCleanup"`
	LimiterPrune string `mapstructure:"limiterPrune"`
	PoolStats    string `mapstructure:"poolStats"`
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if c.Database.Host == "" {
		missing = append(missing, "database.host (or MG_DB_HOST)")
	}
	if c.Database.Port == "" {
		missing = append(missing, "database.port (or MG_DB_PORT)")
	}
	if c.Database.Username == "" {
		missing = append(missing, "database.username (or MG_DB_USERNAME)")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database (or MG_DB_NAME)")
	}
	if c.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}

	if c.Transaction.LockTimeoutMs == 0 {
		missing = append(missing, "transaction.lockTimeoutMs")
	}
	if c.Transaction.MaxRetries == 0 {
		missing = append(missing, "transaction.maxRetries")
	}
	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.MiniGames.LeaderboardSize < 0 || c.MiniGames.LeaderboardSize > 100 {
		return fmt.Errorf("miniGames.leaderboardSize must be between 0 and 100, got %d", c.MiniGames.LeaderboardSize)
	}
	if c.MiniGames.RateLimitAttempts > 0 && c.MiniGames.RateLimitWindowSeconds <= 0 {
		return fmt.Errorf("miniGames.rateLimitWindowSeconds must be positive when rate limiting is enabled")
	}

	if _, err := c.MiniGames.Catalog(); err != nil {
		return err
	}
	return nil
}

// Warnings lists settings that are legal but unsafe for production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if c.MiniGames.DegradeOpenOnStorageFailure {
		warnings = append(warnings, "miniGames.degradeOpenOnStorageFailure lets players start games during storage outages")
	}
	return warnings
}

// Catalog merges the configured overrides into the built-in games
func (m MiniGamesConfig) Catalog() ([]entity.GameConfig, error) {
	games := entity.DefaultGames()
	index := make(map[string]int, len(games))
	for i, g := range games {
		if m.DurationGraceSeconds > 0 {
			games[i].DurationGrace = time.Duration(m.DurationGraceSeconds) * time.Second
		}
		index[g.ID] = i
	}

	for _, o := range m.Games {
		if o.ID == "" {
			return nil, fmt.Errorf("miniGames.games: entry without id")
		}
		i, ok := index[o.ID]
		if !ok {
			games = append(games, entity.GameConfig{
				ID:            o.ID,
				DurationGrace: time.Duration(m.DurationGraceSeconds) * time.Second,
			})
			i = len(games) - 1
			index[o.ID] = i
		}
		if err := o.apply(&games[i]); err != nil {
			return nil, fmt.Errorf("miniGames.games[%s]: %w", o.ID, err)
		}
	}

	for _, g := range games {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}
	return games, nil
}

func (o GameConfig) apply(g *entity.GameConfig) error {
	if o.DisplayName != "" {
		g.DisplayName = o.DisplayName
	}
	if g.DisplayName == "" {
		g.DisplayName = o.ID
	}
	if o.CooldownHours != 0 {
		g.CooldownHours = o.CooldownHours
	}
	if o.DurationSeconds != 0 {
		g.NominalDuration = time.Duration(o.DurationSeconds) * time.Second
	}
	if o.MaxScorePerSecond != 0 {
		g.MaxScorePerSecond = o.MaxScorePerSecond
	}

	if o.SCRate != "" {
		rate, err := decimal.NewFromString(o.SCRate)
		if err != nil {
			return fmt.Errorf("scRate: %w", err)
		}
		g.SCRate = rate
	}
	if o.GCRate != "" {
		rate, err := decimal.NewFromString(o.GCRate)
		if err != nil {
			return fmt.Errorf("gcRate: %w", err)
		}
		g.GCRate = rate
	}
	if o.SCCap != "" {
		c, err := entity.ValidateAndConvertAmount(o.SCCap)
		if err != nil {
			return fmt.Errorf("scCap: %w", err)
		}
		g.SCCap = c
	}
	if o.GCCap != "" {
		c, err := entity.ValidateAndConvertAmount(o.GCCap)
		if err != nil {
			return fmt.Errorf("gcCap: %w", err)
		}
		g.GCCap = c
	}
	return nil
}
