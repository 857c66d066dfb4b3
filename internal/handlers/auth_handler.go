package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/errx"
	"storefront/internal/logx"
	"storefront/internal/models"
	"storefront/internal/responses"
	"storefront/internal/services"
	"storefront/internal/session"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

const underageMessage = "You must be at least 18 years old"

type loginPage struct {
	Email string
}

// LoginPage shows the admin login. Admins already signed in go straight to the dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if session.Current(c).IsAdmin() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	responses.HTML(c, http.StatusOK, "login", "Login", loginPage{})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		responses.HTMLError(c, http.StatusBadRequest, "login", "Login", loginPage{Email: creds.Email}, "Please provide your email and password correctly")
		return
	}

	result, err := h.authService.AdminLogin(c.Request.Context(), creds)
	if err != nil {
		status, message := authFailure(err)
		responses.HTMLError(c, status, "login", "Login", loginPage{Email: creds.Email}, message)
		return
	}

	if !h.persist(c, result, "login") {
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		responses.HTMLError(c, http.StatusBadRequest, "login", "Login", loginPage{}, "Please provide your email and password correctly")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		status, message := authFailure(err)
		responses.HTMLError(c, status, "login", "Login", loginPage{}, message)
		return
	}

	if !h.persist(c, result, "login") {
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var data models.SignupData
	if err := c.ShouldBind(&data); err != nil {
		responses.HTMLError(c, http.StatusBadRequest, "login", "Login", loginPage{}, "Please fill in your name, age, a valid email and a password of at least 6 characters")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), data)
	if errors.Is(err, services.ErrUnderage) {
		responses.HTMLError(c, http.StatusBadRequest, "login", "Login", loginPage{}, underageMessage)
		return
	}
	if err != nil {
		logx.Warn().Err(err).Msg("registration failed")
		status := errx.StatusOf(err)
		message := "Signup failed"
		if status < http.StatusInternalServerError {
			message = errx.MessageOf(err)
		}
		responses.HTMLError(c, status, "login", "Login", loginPage{}, message)
		return
	}

	if !h.persist(c, result, "login") {
		return
	}
	c.Redirect(http.StatusSeeOther, "/account")
}

// Logout clears the session even when revocation fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), session.Current(c)); err != nil {
		logx.Warn().Err(err).Msg("failed to revoke session on logout")
	}
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) persist(c *gin.Context, result *models.AuthResult, page string) bool {
	if _, err := h.sessions.Persist(c, result.Token, result.User); err != nil {
		logx.Error().Err(err).Str("user_id", result.User.ID).Msg("failed to persist session")
		responses.HTMLError(c, http.StatusInternalServerError, page, "Login", loginPage{}, "Could not start your session, please try again")
		return false
	}
	return true
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotAdmin):
		return http.StatusForbidden, "Access Denied! Admin privileges required."
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	default:
		logx.Error().Err(err).Msg("authentication failed")
		return http.StatusBadGateway, "Login is unavailable right now, please try again later"
	}
}
