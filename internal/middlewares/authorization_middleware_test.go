package middlewares

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/session"
)

func withRole(role string) *models.Session {
	return &models.Session{Token: "t", User: models.User{ID: "u", Role: role}}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		sess *models.Session
		req  Requirement
		want Decision
	}{
		{name: "public without session", sess: nil, req: Public, want: Decision{Render: true}},
		{name: "public with session", sess: withRole(models.RoleUser), req: Public, want: Decision{Render: true}},
		{name: "authenticated without session", sess: nil, req: Authenticated, want: Decision{Redirect: HomePath}},
		{name: "admin route without session", sess: nil, req: AdminOnly, want: Decision{Redirect: AdminLoginPath}},
		{name: "admin route as user", sess: withRole(models.RoleUser), req: AdminOnly, want: Decision{Redirect: HomePath, Notice: AccessDeniedNotice}},
		{name: "admin route as unknown role", sess: withRole("manager"), req: AdminOnly, want: Decision{Redirect: AdminLoginPath, Notice: AccessDeniedNotice}},
		{name: "admin route as admin", sess: withRole(models.RoleAdmin), req: AdminOnly, want: Decision{Render: true}},
		{name: "authenticated as user", sess: withRole(models.RoleUser), req: Authenticated, want: Decision{Render: true}},
		{name: "authenticated as admin", sess: withRole(models.RoleAdmin), req: Authenticated, want: Decision{Render: true}},
		{name: "authenticated with empty role", sess: withRole(""), req: Authenticated, want: Decision{Render: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.sess, tt.req))
		})
	}
}

func gateRouter(sess *models.Session, req Requirement) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	rendered := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		session.Attach(c, sess)
		c.Next()
	})
	handler := func(c *gin.Context) {
		rendered = true
		c.String(http.StatusOK, "secret")
	}
	r.GET("/dashboard", RequireAccess(req), handler)
	r.POST("/products", RequireAccess(req), handler)
	return r, &rendered
}

func TestRequireAccess_RedirectsWithoutRendering(t *testing.T) {
	r, rendered := gateRouter(withRole(models.RoleUser), AdminOnly)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.False(t, *rendered)
	assert.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, HomePath, loc.Path)
	assert.Equal(t, AccessDeniedNotice, loc.Query().Get("notice"))
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestRequireAccess_AnonymousAdminRoute(t *testing.T) {
	r, rendered := gateRouter(nil, AdminOnly)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", nil))

	assert.False(t, *rendered)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, AdminLoginPath, w.Header().Get("Location"))
}

func TestRequireAccess_AdminRenders(t *testing.T) {
	r, rendered := gateRouter(withRole(models.RoleAdmin), AdminOnly)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.True(t, *rendered)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "secret", w.Body.String())
}

func TestDecision_Location(t *testing.T) {
	assert.Equal(t, "/login", Decision{Redirect: "/login"}.Location())
	assert.Equal(t, "/?notice=Access+Denied%21+Admin+privileges+required.", Decision{Redirect: "/", Notice: AccessDeniedNotice}.Location())
}
