package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmitrijs2005/wandergenie/internal/common"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

const userKey = "user"

// requestLogger writes one zap line per request and echoes X-Request-ID.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(common.RequestIDHeader)
		if reqID != "" {
			c.Header(common.RequestIDHeader, reqID)
		}

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", reqID),
		)
	}
}

// requireUser resolves the bearer token to a user or answers 401.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader(common.AuthorizationHeader))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), strings.ToLower(common.BearerPrefix)) {
			abortUnauthorized(c, "Not authenticated")
			return
		}
		token := strings.TrimSpace(header[len(common.BearerPrefix):])

		u, err := s.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, users.ErrUnauthorized) {
				s.logger.Debug(c.Request.Context(), "token rejected", "error", err)
				abortUnauthorized(c, "Could not validate credentials")
				return
			}
			s.logger.Error(c.Request.Context(), "authentication failed", "error", err)
			abortDetail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

// currentUser is the user stored by requireUser.
func currentUser(c *gin.Context) *users.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*users.User)
	return u
}
