package handlers

import (
	"staffhub/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions session.SessionService

	// GraphQL endpoints
	GraphQLHandler     gin.HandlerFunc
	GraphQLHelpHandler gin.HandlerFunc

	// Operational endpoints
	HealthHandler gin.HandlerFunc
}
