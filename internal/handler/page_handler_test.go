package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
)

func newPageRouter(backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPageHandler(upstream.NewClient(backendURL, zerolog.Nop()))
	r := gin.New()
	r.Use(middleware.Identity())
	r.Use(middleware.RouteGuard())
	r.GET("/", h.Home)
	r.GET("/login", h.Login)
	r.GET("/quizzes", h.Quizzes)
	r.GET("/quizzes/:id", h.Quiz)
	return r
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Data
}

func TestHomeServesLandingWithoutToken(t *testing.T) {
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, home must not redirect", w.Code)
	}
	data := decodeData(t, w)
	if string(data["page"]) != `"landing"` {
		t.Errorf("page = %s", data["page"])
	}
}

func TestHomeServesDashboardWithToken(t *testing.T) {
	// Backend down: the dashboard still renders from fallback fixtures.
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "student|3|c@b.com"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data := decodeData(t, w)
	if string(data["page"]) != `"dashboard"` {
		t.Errorf("page = %s", data["page"])
	}
	var stats struct {
		TotalXP int `json:"total_xp"`
	}
	if err := json.Unmarshal(data["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalXP != 1850 {
		t.Errorf("stats.total_xp = %d, want student 3 fixture", stats.TotalXP)
	}
}

func TestLoginEchoesReturnPath(t *testing.T) {
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login?return=%2Fexercises%2F3", nil))

	data := decodeData(t, w)
	if string(data["return"]) != `"/exercises/3"` {
		t.Errorf("return = %s", data["return"])
	}
}

func TestQuizPagePicksFromList(t *testing.T) {
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quizzes/2", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "student|1|a@b.com"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	var quiz struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data["quiz"], &quiz); err != nil {
		t.Fatalf("decode quiz: %v", err)
	}
	if quiz.ID != 2 || quiz.Title != "Variables and Data Types Quiz" {
		t.Errorf("quiz = %+v", quiz)
	}
}

func TestQuizPageUnknownID(t *testing.T) {
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quizzes/99", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "student|1|a@b.com"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGuardedPageRedirectsWithoutCookie(t *testing.T) {
	r := newPageRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quizzes", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/login?return=%2Fquizzes" {
		t.Errorf("Location = %q", got)
	}
}
