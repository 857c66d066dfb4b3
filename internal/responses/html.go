package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/session"
	"storefront/internal/views"
)

// NotFoundData backs the "not_found" page: a message and a way back.
type NotFoundData struct {
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}

// HTML renders a page template with the request's session and notice.
func HTML(c *gin.Context, statusCode int, name, title string, data interface{}) {
	c.HTML(statusCode, name, views.Page{
		Title:   title,
		Session: session.Current(c),
		Notice:  c.Query("notice"),
		Path:    c.Request.URL.Path,
		Data:    data,
	})
}

// HTMLError renders a page with an inline error message.
func HTMLError(c *gin.Context, statusCode int, name, title string, data interface{}, message string) {
	c.HTML(statusCode, name, views.Page{
		Title:   title,
		Session: session.Current(c),
		Error:   message,
		Path:    c.Request.URL.Path,
		Data:    data,
	})
}

func NotFound(c *gin.Context, heading, message, backURL, backLabel string) {
	HTML(c, http.StatusNotFound, "not_found", heading, NotFoundData{
		Heading:   heading,
		Message:   message,
		BackURL:   backURL,
		BackLabel: backLabel,
	})
}
