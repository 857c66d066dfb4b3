package middlewares

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/logx"
	"storefront/internal/session"
)

// LoadSession restores the client-held session once per request and makes it
// available through session.Current. Bad cookie pairs are cleared by the store.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Restore(c)
		if err != nil {
			logx.Debug().Err(err).Str("request_id", RequestID(c)).Msg("discarding session cookies")
		}
		session.Attach(c, sess)
		c.Next()
	}
}
