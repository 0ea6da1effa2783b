package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/shared/constants"
	"github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

// APITokenMiddleware guards operator endpoints with a static bearer token.
type APITokenMiddleware struct {
	token  string
	logger logger.Interface
}

// NewAPITokenMiddleware returns a middleware that lets every request through
// when token is empty.
func NewAPITokenMiddleware(token string, logger logger.Interface) *APITokenMiddleware {
	return &APITokenMiddleware{
		token:  token,
		logger: logger,
	}
}

func (m *APITokenMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(m.token)) != 1 {
			m.logger.Warnw("rejected api token", "path", c.Request.URL.Path, "ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid api token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
