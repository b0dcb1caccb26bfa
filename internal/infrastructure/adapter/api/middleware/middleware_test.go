package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/minigame-rewards/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/amirhossein-jamali/minigame-rewards/mocks/port/core"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("caller id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")

		rec := serve(router, req)

		assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-42", rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(middleware.CORS(origins))
		router.GET("/mini-games", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.OPTIONS("/mini-games", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/mini-games", nil)
		req.Header.Set("Origin", "https://play.example.com")

		rec := serve(newRouter([]string{"https://play.example.com"}), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://play.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/mini-games", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(newRouter([]string{"https://play.example.com"}), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request from allowed origin exposes the request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mini-games", nil)
		req.Header.Set("Origin", "https://play.example.com")

		rec := serve(newRouter([]string{" https://play.example.com/ "}), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://play.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
	})

	t.Run("request from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mini-games", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(newRouter([]string{"https://play.example.com"}), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("request without origin passes through", func(t *testing.T) {
		rec := serve(newRouter([]string{"https://play.example.com"}), httptest.NewRequest(http.MethodGet, "/mini-games", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("star in the list allows any origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mini-games", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := serve(newRouter([]string{"https://play.example.com", "*"}), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mini-games", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := serve(newRouter(nil), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(log))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":5000`)
}

func TestLogger_LevelsByStatus(t *testing.T) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(testNow)
	clock.EXPECT().Since(testNow).Return(0)

	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusServiceUnavailable && f["route"] == "/fail"
	})).Once()

	router := gin.New()
	router.Use(middleware.Logger(log, clock))
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
}

func TestLogger_HealthIsDebug(t *testing.T) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(testNow)
	clock.EXPECT().Since(testNow).Return(0)

	log := coremocks.NewMockLogger(t)
	log.EXPECT().Debug("Request processed", mock.Anything).Once()

	router := gin.New()
	router.Use(middleware.Logger(log, clock))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
}
