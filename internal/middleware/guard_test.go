package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/session"
)

func guardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/exercises", ok)
	r.GET("/exercises/:id", ok)
	r.GET("/quizzes", ok)
	r.GET("/chat", ok)
	r.GET("/profile", ok)
	r.GET("/teacher-dashboard", ok)
	return r
}

func TestRouteGuardRedirectsWithoutCookie(t *testing.T) {
	r := guardRouter()

	paths := []string{
		"/exercises",
		"/exercises/3",
		"/quizzes",
		"/chat",
		"/profile",
		"/teacher-dashboard",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", w.Code)
			}
			want := "/login?return=" + url.QueryEscape(path)
			if got := w.Header().Get("Location"); got != want {
				t.Errorf("Location = %q, want %q", got, want)
			}
		})
	}
}

func TestRouteGuardPassesWithCookie(t *testing.T) {
	r := guardRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "student|1|a@b.com"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRouteGuardPresenceOnly(t *testing.T) {
	// The guard checks presence, not validity. Garbage cookies pass here and
	// get rejected later by the data API.
	r := guardRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRouteGuardIgnoresPublicPaths(t *testing.T) {
	r := guardRouter()

	for _, path := range []string{"/", "/login"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
		}
	}
}

func TestIsProtected(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/exercises", true},
		{"/exercises/42", true},
		{"/quizzes/1", true},
		{"/settings", true},
		{"/create-quiz", true},
		{"/", false},
		{"/login", false},
		{"/register", false},
		{"/health", false},
		// Exact-match entries do not protect subpaths.
		{"/chat/history", false},
	}

	for _, tc := range cases {
		if got := isProtected(tc.path); got != tc.want {
			t.Errorf("isProtected(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
