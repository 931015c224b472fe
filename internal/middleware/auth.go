package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/session"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/utils"
)

// SessionKey is where Auth stores the session in the gin context
const SessionKey = "session"

// Auth requires a live session. The token comes from the Authorization header or the session cookie.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Vui lòng đăng nhập", nil)
			c.Abort()
			return
		}

		s, err := sessions.Authenticate(token)
		if err != nil {
			msg := "Phiên đăng nhập không hợp lệ"
			if errors.Is(err, session.ErrSessionExpired) {
				msg = "Phiên đăng nhập đã hết hạn"
			}
			utils.UnauthorizedResponse(c, msg, err)
			c.Abort()
			return
		}

		c.Set(SessionKey, s)
		c.Request = c.Request.WithContext(transport.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// TokenFromRequest reads the bearer token, falling back to the session cookie
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(session.TokenKey); err == nil {
		return cookie
	}
	return ""
}

// CurrentSession returns the session Auth stored
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
