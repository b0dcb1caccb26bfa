package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
database:
  host: db.internal
  username: minigames
  password: secret
  database: minigames
miniGames:
  leaderboardSize: 25
  games:
    - id: dog-catcher
      cooldownHours: 12
      scCap: "2.00"
    - id: snake
      displayName: Snake
      cooldownHours: 6
      durationSeconds: 45
      scRate: "0.02"
      scCap: "0.50"
      gcRate: "1"
      gcCap: "100.00"
      maxScorePerSecond: 4
`

func loadSample(t *testing.T, yaml string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yaml)))

	cfg, err := LoadFromViper(v, Test)
	require.NoError(t, err)
	return cfg
}

func TestLoadFromViper_DefaultsAndDurations(t *testing.T) {
	cfg := loadSample(t, sampleYAML)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, int64(5000), cfg.Transaction.LockTimeoutMs)
	assert.True(t, cfg.MiniGames.DegradeOpenOnStorageFailure)
	assert.Equal(t, 25, cfg.MiniGames.LeaderboardSize)
	assert.Equal(t, "@every 1m", cfg.Scheduler.LockCleanup)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromViper_EnvOverride(t *testing.T) {
	t.Setenv("MG_DB_HOST", "override.internal")
	t.Setenv("MG_DEGRADE_OPEN_ON_STORAGE_FAILURE", "false")

	cfg := loadSample(t, sampleYAML)
	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.False(t, cfg.MiniGames.DegradeOpenOnStorageFailure)
}

func TestValidate_ListsMissingKeys(t *testing.T) {
	cfg := loadSample(t, "server:\n  port: 8080\n")

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
	assert.Contains(t, err.Error(), "database.username")
	assert.Contains(t, err.Error(), "database.database")
}

func TestValidate_RejectsUnknownEnvironment(t *testing.T) {
	cfg := loadSample(t, sampleYAML)
	cfg.Environment = "staging"
	assert.Error(t, cfg.Validate())
}

func TestCatalog_MergesOverrides(t *testing.T) {
	cfg := loadSample(t, sampleYAML)

	games, err := cfg.MiniGames.Catalog()
	require.NoError(t, err)

	byID := make(map[string]int)
	for i, g := range games {
		byID[g.ID] = i
	}
	require.Contains(t, byID, "dog-catcher")
	require.Contains(t, byID, "snake")
	require.Contains(t, byID, "car-heist")

	dog := games[byID["dog-catcher"]]
	assert.Equal(t, 12, dog.CooldownHours)
	assert.Equal(t, int64(200), dog.SCCap)
	assert.Equal(t, int64(50000), dog.GCCap, "unset fields keep built-in values")
	assert.Equal(t, 10*time.Second, dog.DurationGrace)

	snake := games[byID["snake"]]
	assert.Equal(t, "Snake", snake.DisplayName)
	assert.Equal(t, 45*time.Second, snake.NominalDuration)
	assert.Equal(t, int64(50), snake.SCCap)
	assert.Equal(t, int64(10000), snake.GCCap)
	assert.Equal(t, "0.02", snake.SCRate.String())
}

func TestCatalog_RejectsInvalidOverride(t *testing.T) {
	cases := map[string]GameConfig{
		"missing id":        {CooldownHours: 1},
		"bad rate":          {ID: "dog-catcher", SCRate: "abc"},
		"negative cap":      {ID: "dog-catcher", SCCap: "-1.00"},
		"incomplete game":   {ID: "new-game", CooldownHours: 1},
		"negative cooldown": {ID: "fresh", DurationSeconds: 60, MaxScorePerSecond: 1, CooldownHours: -1},
	}
	for name, override := range cases {
		t.Run(name, func(t *testing.T) {
			mg := MiniGamesConfig{Games: []GameConfig{override}}
			_, err := mg.Catalog()
			assert.Error(t, err)
		})
	}
}

func TestWarnings_ProductionOnly(t *testing.T) {
	cfg := loadSample(t, sampleYAML)
	assert.Empty(t, cfg.Warnings())

	cfg.Environment = Production
	warnings := cfg.Warnings()
	assert.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "sslMode")
}
