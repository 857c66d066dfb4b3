package middlewares

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/session"
)

// Requirement is what a route demands of the session.
type Requirement int

const (
	Public Requirement = iota
	Authenticated
	AdminOnly
)

const (
	HomePath       = "/"
	AdminLoginPath = "/login"

	AccessDeniedNotice = "Access Denied! Admin privileges required."
)

// Decision is the outcome of the session gate: render, or redirect with an
// optional notice for the target page.
type Decision struct {
	Render   bool
	Redirect string
	Notice   string
}

// Decide evaluates the gate:
//
//	no session, authenticated route   -> home
//	no session, admin route           -> admin login
//	role user, admin route            -> home, access denied notice
//	any other non-admin, admin route  -> admin login, access denied notice
//	otherwise                         -> render
func Decide(sess *models.Session, req Requirement) Decision {
	if req == Public {
		return Decision{Render: true}
	}
	if sess == nil {
		if req == AdminOnly {
			return Decision{Redirect: AdminLoginPath}
		}
		return Decision{Redirect: HomePath}
	}
	if req == AdminOnly && !sess.IsAdmin() {
		if sess.IsUser() {
			return Decision{Redirect: HomePath, Notice: AccessDeniedNotice}
		}
		return Decision{Redirect: AdminLoginPath, Notice: AccessDeniedNotice}
	}
	return Decision{Render: true}
}

// Location is the redirect target including the notice query.
func (d Decision) Location() string {
	if d.Notice == "" {
		return d.Redirect
	}
	return d.Redirect + "?" + url.Values{"notice": {d.Notice}}.Encode()
}

// RequireAccess must run after LoadSession.
func RequireAccess(req Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := Decide(session.Current(c), req)
		if d.Render {
			c.Next()
			return
		}

		status := http.StatusFound
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			status = http.StatusSeeOther
		}
		c.Redirect(status, d.Location())
		c.Abort()
	}
}
