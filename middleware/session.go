package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptop-shop/services"
)

const sessionKey = "session"

// SessionMiddleware resolves the auth cookie once per request and shares
// the result with every handler downstream.
func SessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, manager.Resolve(c))
		c.Next()
	}
}

func CurrentSession(c *gin.Context) services.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(services.Session); ok {
			return sess
		}
	}
	return services.Session{}
}

// RequireAuth sends anonymous visitors to the login page; this covers both
// the missing-token case and expired sessions detected downstream.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).LoggedIn {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the dashboard on the first role claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Admin {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
