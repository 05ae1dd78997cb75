package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorCookie identifies one browser across requests.
const VisitorCookie = "nav_visitor"

const visitorCookieMaxAge = 365 * 24 * 60 * 60

/*
visitorID returns the caller's visitor id, issuing a fresh one when the cookie is
missing or not a UUID. Per-visitor state such as the dismissed banner hangs off it.
*/
func visitorID(c *gin.Context) string {
	if raw, err := c.Cookie(VisitorCookie); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
