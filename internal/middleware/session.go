package middleware

import (
	"net/http"
	"time"

	"github.com/bostany/storefront/internal/auth"
	"github.com/bostany/storefront/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookie = "bostany_session"
	SessionHeader = "X-Session-Token"

	sessionKey = "session"
)

type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// SessionMiddleware attaches the shopper's session to the request. A missing,
// forged or expired token starts a new session and hands out a new token in
// both the cookie and the response header.
func SessionMiddleware(sessions *session.Manager, cfg SessionConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}

		var id string
		if token != "" {
			var err error
			id, err = auth.ValidateSessionToken(cfg.Secret, token)
			if err != nil {
				log.Debug("discarding session token", zap.Error(err))
				id = ""
			}
		}

		sess, _ := sessions.GetOrCreate(c.Request.Context(), id)
		if id == "" {
			signed, err := auth.GenerateSessionToken(cfg.Secret, sess.ID, cfg.TTL)
			if err != nil {
				log.Error("failed to sign session token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, signed, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
			c.Header(SessionHeader, signed)
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
