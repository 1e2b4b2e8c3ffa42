package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"newsdesk/internal/redisclient"
	"newsdesk/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("login disabled: no admin password configured")
)

// Session is the current operator session, or absent
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Manager issues and validates opaque operator session tokens backed by
// redis. There is exactly one authorization level: signed in or not.
type Manager struct {
	redis         *redisclient.Client
	adminEmail    string
	adminPassword string
	ttl           time.Duration
	logger        *zap.Logger
}

// NewManager creates a new session manager
func NewManager(redis *redisclient.Client, adminEmail, adminPassword string, ttl time.Duration) *Manager {
	return &Manager{
		redis:         redis,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		ttl:           ttl,
		logger:        util.GetLogger(),
	}
}

// Login validates operator credentials and issues a session token
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	if m.adminPassword == "" {
		return nil, ErrLoginDisabled
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(m.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) == 1
	if !emailOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := m.redis.SetSession(ctx, token, email, m.ttl); err != nil {
		return nil, err
	}

	m.logger.Info("Operator signed in", zap.String("email", email))
	return &Session{Token: token, Email: email}, nil
}

// Current returns the session bound to a token, nil when there is none
func (m *Manager) Current(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	email, err := m.redis.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, nil
	}
	return &Session{Token: token, Email: email}, nil
}

// Logout revokes a session token
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.redis.DeleteSession(ctx, token)
}

// Middleware rejects requests without a live session
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.Current(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Session lookup failed",
			})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not signed in",
			})
			return
		}
		c.Set("session", session)
		c.Next()
	}
}

// TokenFromRequest extracts the bearer token from a request
func TokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
