package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-shop/config"
	"laptop-shop/models"
)

func testConfig() *config.Config {
	return &config.Config{
		TokenCookie:       "jwtToken",
		RefreshCookie:     "refreshToken",
		TokenExpiryDays:   7,
		RefreshExpiryDays: 30,
		AdminRole:         "ROLE_ADMIN",
	}
}

func signedToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "someone", "role": roles}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func contextWithCookie(name, value string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if name != "" {
		c.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return c, w
}

func TestResolveAnonymousWithoutToken(t *testing.T) {
	manager := NewSessionManager(testConfig(), EventBus.New())
	c, _ := contextWithCookie("", "")

	sess := manager.Resolve(c)

	assert.False(t, sess.LoggedIn)
	assert.False(t, sess.Admin)
}

func TestResolveAdminFromFirstRoleClaim(t *testing.T) {
	manager := NewSessionManager(testConfig(), EventBus.New())
	c, _ := contextWithCookie("jwtToken", signedToken(t, []string{"ROLE_ADMIN", "ROLE_USER"}))

	sess := manager.Resolve(c)

	assert.True(t, sess.LoggedIn)
	assert.True(t, sess.Admin)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, sess.Roles)
}

func TestResolveNonAdminRole(t *testing.T) {
	manager := NewSessionManager(testConfig(), EventBus.New())
	c, _ := contextWithCookie("jwtToken", signedToken(t, []string{"ROLE_USER", "ROLE_ADMIN"}))

	sess := manager.Resolve(c)

	assert.True(t, sess.LoggedIn)
	assert.False(t, sess.Admin, "only the first role claim marks an admin")
}

func TestResolveDecodeFailureDegradesToAnonymous(t *testing.T) {
	manager := NewSessionManager(testConfig(), EventBus.New())
	c, _ := contextWithCookie("jwtToken", "not-a-jwt")

	sess := manager.Resolve(c)

	assert.False(t, sess.LoggedIn)
	assert.Empty(t, sess.Token)
}

func TestWritePublishesLoginAndSetsCookies(t *testing.T) {
	bus := EventBus.New()
	logins := 0
	require.NoError(t, bus.Subscribe(TopicLogin, func(string) { logins++ }))

	manager := NewSessionManager(testConfig(), bus)
	c, w := contextWithCookie("", "")

	manager.Write(c, models.AuthResponse{Token: "tok", RefreshToken: "ref"})

	cookies := w.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}
	require.Contains(t, byName, "jwtToken")
	require.Contains(t, byName, "refreshToken")
	assert.Equal(t, "tok", byName["jwtToken"].Value)
	assert.Equal(t, 7*24*60*60, byName["jwtToken"].MaxAge)
	assert.Equal(t, 30*24*60*60, byName["refreshToken"].MaxAge)
	assert.Equal(t, 1, logins)
}

func TestClearDeletesCookiesAndPublishesLogout(t *testing.T) {
	bus := EventBus.New()
	logouts := 0
	require.NoError(t, bus.Subscribe(TopicLogout, func() { logouts++ }))

	manager := NewSessionManager(testConfig(), bus)
	c, w := contextWithCookie("jwtToken", "tok")

	manager.Clear(c)

	for _, ck := range w.Result().Cookies() {
		assert.Less(t, ck.MaxAge, 0, ck.Name)
	}
	assert.Equal(t, 1, logouts)
}
