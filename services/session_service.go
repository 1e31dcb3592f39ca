package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"laptop-shop/config"
	"laptop-shop/libs"
	"laptop-shop/models"
)

const (
	TopicLogin  = "session:login"
	TopicLogout = "session:logout"
)

// Session is the resolved authorization context shared read-only by every
// view. It is rebuilt from the cookie on each request and never mutated.
type Session struct {
	Token    string
	Roles    []string
	LoggedIn bool
	Admin    bool
}

// SessionManager is the single owner of session state. All reads, writes
// and clears go through it; interested parties observe changes on the bus
// instead of re-reading cookies on their own.
type SessionManager struct {
	tokenCookie   string
	refreshCookie string
	tokenMaxAge   int
	refreshMaxAge int
	adminRole     string
	bus           EventBus.Bus
}

func NewSessionManager(cfg *config.Config, bus EventBus.Bus) *SessionManager {
	return &SessionManager{
		tokenCookie:   cfg.TokenCookie,
		refreshCookie: cfg.RefreshCookie,
		tokenMaxAge:   cfg.TokenExpiryDays * 24 * 60 * 60,
		refreshMaxAge: cfg.RefreshExpiryDays * 24 * 60 * 60,
		adminRole:     cfg.AdminRole,
		bus:           bus,
	}
}

// Resolve reads the persisted token and derives the session flags. A missing
// token is the anonymous case, not an error; a token that fails to decode is
// logged and degrades to anonymous rather than failing the request.
func (m *SessionManager) Resolve(c *gin.Context) Session {
	token, err := c.Cookie(m.tokenCookie)
	if err != nil || token == "" {
		return Session{}
	}

	roles, err := DecodeRoles(token)
	if err != nil {
		libs.Log().Warnw("token decode failed, treating as anonymous", "err", err)
		return Session{}
	}

	return Session{
		Token:    token,
		Roles:    roles,
		LoggedIn: true,
		Admin:    len(roles) > 0 && roles[0] == m.adminRole,
	}
}

// Write persists a fresh token pair. Token lives 7 days, refresh token 30.
func (m *SessionManager) Write(c *gin.Context, auth models.AuthResponse) {
	c.SetCookie(m.tokenCookie, auth.Token, m.tokenMaxAge, "/", "", false, true)
	c.SetCookie(m.refreshCookie, auth.RefreshToken, m.refreshMaxAge, "/", "", false, true)
	m.bus.Publish(TopicLogin, auth.Token)
}

// Clear deletes both cookies. The token is deleted, never mutated.
func (m *SessionManager) Clear(c *gin.Context) {
	c.SetCookie(m.tokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(m.refreshCookie, "", -1, "/", "", false, true)
	m.bus.Publish(TopicLogout)
}

// DecodeRoles extracts the role claim array without verifying the
// signature; verification is the backend's job, this side only needs the
// claims for navigation gating.
func DecodeRoles(token string) ([]string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	raw, ok := claims["role"].([]interface{})
	if !ok {
		return nil, nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles, nil
}
