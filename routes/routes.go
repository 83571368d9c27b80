package routes

import (
	"slices"
	"time"

	"staffhub/handlers"
	"staffhub/middleware"
	"staffhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGraphQLRoutes registers the API endpoint and its help page. The
// session middleware only runs where a session can matter.
func RegisterGraphQLRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/graphql", middleware.SessionMiddleware(hb.Sessions), hb.GraphQLHandler)
	r.GET("/graphql", hb.GraphQLHelpHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/health", hb.HealthHandler)
}

// CORS allows the browser client to send the session cookie. A "*" origin
// reflects any origin, since credentials rule out a literal wildcard.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	switch {
	case len(origins) == 0:
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	case slices.Contains(origins, "*"):
		cfg.AllowOriginFunc = func(string) bool { return true }
	default:
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(CORS(origins))

	RegisterGraphQLRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(hb *handlers.HandlerBundle, origins []string, requestsPerMin int) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(requestsPerMin))

	RegisterRoutes(r, hb, origins)
	return r
}
