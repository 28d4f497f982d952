package handlers

import (
	"net/http"

	"github.com/bostany/storefront/internal/catalog"
	"github.com/bostany/storefront/internal/middleware"
	"github.com/bostany/storefront/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxQuantity caps a single cart line, like the quantity stepper does.
const MaxQuantity = 10

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Catalog  *catalog.Store
	Sessions *session.Manager
	Log      *zap.Logger
}

func New(store *catalog.Store, sessions *session.Manager, log *zap.Logger) *Handlers {
	return &Handlers{Catalog: store, Sessions: sessions, Log: log}
}

func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong!"})
}

// lockedSession returns the request's session, locked. Callers must unlock.
func lockedSession(c *gin.Context) *session.Session {
	sess := middleware.CurrentSession(c)
	sess.Lock()
	return sess
}
