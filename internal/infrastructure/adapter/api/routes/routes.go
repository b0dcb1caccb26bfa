package routes

import (
	coreport "github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler exposed by the API
type Handlers struct {
	MiniGame *handler.MiniGameHandler
	User     *handler.UserHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	miniGames := router.Group("/mini-games")
	{
		miniGames.GET("", h.MiniGame.ListGames)
		miniGames.POST("/session", h.MiniGame.Session)
		miniGames.POST("/record-result", h.MiniGame.RecordResult)
		miniGames.GET("/leaderboard/:gameId", h.MiniGame.Leaderboard)
	}

	users := router.Group("/users")
	{
		users.GET("/:userId/balance", h.User.GetBalance)
		users.GET("/:userId/transactions", h.User.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// Request ids first so every later log line carries one
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
