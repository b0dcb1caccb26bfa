package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 10 * time.Minute

// CORS answers browser preflight requests and tags responses for allowed
// origins. An empty list or "*" allows any origin; requests from any other
// origin are rejected with 403.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(corsConfig(allowedOrigins))
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type", RequestIDHeader},
		ExposeHeaders:             []string{RequestIDHeader},
		MaxAge:                    corsMaxAge,
		OptionsResponseStatusCode: http.StatusNoContent,
	}

	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		origins = append(origins, o)
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
