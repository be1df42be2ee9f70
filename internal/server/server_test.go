package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/prefs"
	"github.com/Zachkp/portfolio/internal/theme"
)

func testDocument() *content.Document {
	return &content.Document{
		NavLinks: []content.NavLink{{Name: "Work", Href: "#work"}},
		Home: &content.Home{
			Greeting:         "Hi, I'm",
			Name:             "Ada",
			ProfileImagePath: "/images/ada.jpg",
		},
		Skills:  &content.Skills{List: []content.SkillItem{{Name: "Go", IconPath: "/images/missing.svg"}}},
		Contact: &content.Contact{Email: "a@b.com"},
	}
}

func newTestServer(t *testing.T, store prefs.Store) *Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ada.jpg"), []byte("jpg"), 0o644))

	s, err := New(Options{
		Document:     testDocument(),
		Store:        store,
		ImagesDir:    dir,
		DefaultTheme: theme.Light,
		Mode:         gin.TestMode,
		Logger:       logger.Nop(),
	})
	require.NoError(t, err)
	return s
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPage(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, `<html lang="en" data-theme="light">`)
	assert.Contains(t, body, `id="home"`)
	assert.NotContains(t, body, `id="about"`)
	assert.Contains(t, body, `data-theme-endpoint="/theme/toggle"`)
	assert.Contains(t, body, `src="/images/ada.jpg"`)
	assert.Contains(t, body, `data-fallback-used="true"`)

	v := cookie(w, visitorCookieName)
	require.NotNil(t, v)
	assert.Len(t, v.Value, 36)
}

func TestSectionFragment(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/sections/home", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), `<section id="home"`))

	w = do(s, httptest.NewRequest(http.MethodGet, "/sections/about", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleRedirectsAndPersists(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := newTestServer(t, store)

	first := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	visitor := cookie(first, visitorCookieName)
	require.NotNil(t, visitor)

	req := httptest.NewRequest(http.MethodPost, ToggleEndpoint, nil)
	req.AddCookie(visitor)
	w := do(s, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.NotNil(t, cookie(w, themeCookie))
	assert.Equal(t, "dark", cookie(w, themeCookie).Value)

	stored, ok, err := store.Get(context.Background(), visitor.Value)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, theme.Dark, stored)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(visitor)
	w = do(s, req)
	assert.Contains(t, w.Body.String(), `<html lang="en" data-theme="dark">`)

	// Toggling twice restores the original theme.
	req = httptest.NewRequest(http.MethodPost, ToggleEndpoint, nil)
	req.AddCookie(visitor)
	do(s, req)
	stored, _, err = store.Get(context.Background(), visitor.Value)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, stored)
}

func TestToggleResponseKinds(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, ToggleEndpoint, nil)
	req.Header.Set("HX-Request", "true")
	w := do(s, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<html lang="en" data-theme="dark">`)
	assert.NotContains(t, w.Body.String(), `data-theme="light"`)

	req = httptest.NewRequest(http.MethodPost, ToggleEndpoint, nil)
	req.Header.Set("X-Requested-With", "fetch")
	w = do(s, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestThemeCookieWithoutStoredPreference(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: themeCookie, Value: "dark"})
	w := do(s, req)
	assert.Contains(t, w.Body.String(), `<html lang="en" data-theme="dark">`)
}

func TestStaticAndHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(s, httptest.NewRequest(http.MethodGet, "/images/ada.jpg", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Nil(t, cookie(w, visitorCookieName))
}

func TestSetDocument(t *testing.T) {
	s := newTestServer(t, nil)

	doc := testDocument()
	doc.About = &content.About{Title: "About Ada"}
	s.SetDocument(doc)
	s.SetDocument(nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/sections/about", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRequiresDocument(t *testing.T) {
	_, err := New(Options{Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestMenuQueryOpensDrawer(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(s, httptest.NewRequest(http.MethodGet, "/sections/nav?menu=open", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-menu-state="open"`)

	w = do(s, httptest.NewRequest(http.MethodGet, "/sections/nav", nil))
	assert.Contains(t, w.Body.String(), `data-menu-state="closed"`)
}

func TestResponsesRenderThroughEngineTemplates(t *testing.T) {
	s := newTestServer(t, nil)
	require.NotNil(t, s.engine.HTMLRender)

	p, err := s.compose(theme.Light)
	require.NoError(t, err)
	defer p.Close()

	w := do(s, httptest.NewRequest(http.MethodGet, "/sections/home", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	want, ok := p.Section("home")
	require.True(t, ok)
	assert.Equal(t, string(want), w.Body.String())

	w = do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var full strings.Builder
	_, err = p.WriteTo(&full)
	require.NoError(t, err)
	assert.Equal(t, full.String(), w.Body.String())
}
