package resolvers

import (
	"context"
	_ "embed"
	"fmt"

	"staffhub/services/auth"
	"staffhub/services/department"
	"staffhub/services/employee"
	"staffhub/utils"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaString string

const maxQueryDepth = 10

// Resolver resolves graphql queries and mutations.
type Resolver struct {
	logger      *zap.Logger
	auth        auth.AuthService
	employees   employee.EmployeeService
	departments department.DepartmentService
}

func NewResolver(
	logger *zap.Logger,
	authSvc auth.AuthService,
	employeeSvc employee.EmployeeService,
	departmentSvc department.DepartmentService,
) *Resolver {
	return &Resolver{
		logger:      logger,
		auth:        authSvc,
		employees:   employeeSvc,
		departments: departmentSvc,
	}
}

// NewSchema parses the API schema against r. It panics on a schema/resolver
// mismatch, which is a programming error.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaString, r,
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(&panicLogger{logger: r.logger}),
	)
}

// fail turns a service error into the error returned to the client. Errors
// with a client-safe code pass through; anything else is logged and hidden
// behind a generic message.
func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	switch code := utils.ErrorCode(err); code {
	case utils.CodeInternal:
		r.logger.Error("GraphQL operation failed", zap.String("operation", op), zap.Error(err))
		return utils.Internal(fmt.Sprintf("Failed to %s", op), err)
	case utils.CodeUnauthenticated, utils.CodeForbidden:
	default:
		r.logger.Info("GraphQL operation rejected",
			zap.String("operation", op),
			zap.String("code", code),
			zap.Error(err),
		)
	}
	appErr, _ := utils.AsAppError(err)
	return appErr
}

// panicLogger routes resolver panics recovered by the executor to zap.
type panicLogger struct {
	logger *zap.Logger
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("GraphQL resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}
