package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type GraphQLHandler struct {
	schema *graphql.Schema
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// ServeQuery executes a POSTed operation. Executed operations always answer
// 200 with errors in the body; only undecodable requests get a 400.
func (h *GraphQLHandler) ServeQuery(c *gin.Context) {
	logger := getLogger(c)

	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid GraphQL request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "Invalid request body: " + err.Error()}}})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "Must provide query string."}}})
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	for _, qe := range resp.Errors {
		// Resolver errors are logged where they happen.
		if qe.ResolverError == nil {
			logger.Info("GraphQL request rejected",
				zap.String("operationName", req.OperationName),
				zap.String("message", qe.Message),
			)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ServeHelp renders a short HTML page describing the endpoint.
func (h *GraphQLHandler) ServeHelp(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(helpPage))
}

const helpPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Staffhub GraphQL API</title>
<style>
body { font-family: -apple-system, Segoe UI, Roboto, sans-serif; max-width: 760px; margin: 40px auto; color: #1f2937; }
pre { background: #f3f4f6; padding: 12px; border-radius: 6px; overflow-x: auto; }
code { background: #f3f4f6; padding: 2px 4px; border-radius: 4px; }
</style>
</head>
<body>
<h1>Staffhub GraphQL API</h1>
<p>Send <code>POST</code> requests with a JSON body <code>{"query", "variables", "operationName"}</code> to this URL.</p>
<h2>Authentication</h2>
<p>Login is passwordless. Request a code with <code>requestOTP</code>, then exchange it with <code>verifyOTP</code>.
A successful verification sets an HttpOnly session cookie; send it with every following request
(<code>credentials: "include"</code> in the browser). <code>logout</code> ends the session.</p>
<h2>Examples</h2>
<pre>mutation { requestOTP(email: "admin@company.com") { success message otp } }</pre>
<pre>mutation { verifyOTP(email: "admin@company.com", otp: "123456") { user { id username role } message } }</pre>
<pre>query {
  employees(filter: { department: "Engineering" }, page: 1, pageSize: 10, sortBy: name, sortOrder: ASC) {
    employees { id name department class status }
    totalCount
    pageInfo { currentPage totalPages hasNextPage hasPreviousPage }
  }
}</pre>
<pre>query { me { username email role } }</pre>
<h2>Errors</h2>
<p>Failures are reported in <code>errors[].extensions.code</code>: UNAUTHENTICATED, FORBIDDEN, NOT_FOUND,
BAD_USER_INPUT, OTP_EXPIRED, TOO_MANY_ATTEMPTS, INVALID_OTP, DUPLICATE_EMAIL, DUPLICATE_DEPARTMENT,
DEPARTMENT_IN_USE, INTERNAL_SERVER_ERROR.</p>
</body>
</html>
`
