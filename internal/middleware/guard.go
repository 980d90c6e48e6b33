package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/session"
)

// protectedRoutes lists the navigation paths that require a session cookie.
// A trailing "/*" matches the path and everything under it; plain entries
// match exactly. "/" is deliberately absent — the home handler performs its
// own token check so it can serve either a landing or a dashboard payload.
var protectedRoutes = []string{
	"/exercises",
	"/exercises/*",
	"/quizzes",
	"/quizzes/*",
	"/chat",
	"/analytics",
	"/profile",
	"/settings",
	"/teacher-dashboard",
	"/create-quiz",
	"/create-exercise",
}

// RouteGuard redirects unauthenticated navigation away from protected paths
// before any handler runs. It only checks that the session cookie is present;
// authenticity and role are re-validated by the backend on every data call,
// and role-specific pages re-check the role themselves.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if !isProtected(path) {
			c.Next()
			return
		}

		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			target := "/login?return=" + url.QueryEscape(path)
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}

		c.Next()
	}
}

func isProtected(path string) bool {
	for _, route := range protectedRoutes {
		if prefix, ok := strings.CutSuffix(route, "/*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == route {
			return true
		}
	}
	return false
}
