package site

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

func document() *content.Document {
	return &content.Document{
		Home: &content.Home{
			Greeting:         "Hi, I'm",
			Name:             "Ada",
			ProfileImagePath: "/images/ada.jpg",
		},
		Skills: &content.Skills{List: []content.SkillItem{{Name: "Go", IconPath: "/images/gone.svg"}}},
	}
}

func TestBuild(t *testing.T) {
	images := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(images, "skills"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(images, "ada.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(images, "skills", "go.svg"), []byte("<svg/>"), 0o644))
	out := filepath.Join(t.TempDir(), "public")

	res, err := Build(context.Background(), Options{
		Document:  document(),
		ImagesDir: images,
		OutputDir: out,
		Theme:     theme.Dark,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"nav", "home", "skills"}, res.Sections)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `<html lang="en" data-theme="dark">`)
	assert.Contains(t, string(index), `href="static/css/site.css"`)
	assert.Contains(t, string(index), `src="/images/ada.jpg"`)
	assert.Contains(t, string(index), `data-fallback-used="true"`)
	assert.NotContains(t, string(index), "data-theme-endpoint")

	for _, id := range res.Sections {
		assert.FileExists(t, filepath.Join(out, "sections", id+".html"))
	}
	assert.NoFileExists(t, filepath.Join(out, "sections", "about.html"))
	assert.FileExists(t, filepath.Join(out, "static", "css", "site.css"))
	assert.FileExists(t, filepath.Join(out, "static", "js", "site.js"))
	assert.FileExists(t, filepath.Join(out, "images", "skills", "go.svg"))
	assert.Equal(t, 1+len(res.Sections)+2+2, res.Files)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(context.Background(), Options{Document: document()})
	assert.Error(t, err)

	_, err = Build(context.Background(), Options{OutputDir: t.TempDir()})
	assert.Error(t, err)
}

func TestBuildMissingImagesDir(t *testing.T) {
	out := t.TempDir()
	_, err := Build(context.Background(), Options{
		Document:  document(),
		ImagesDir: filepath.Join(out, "nope"),
		OutputDir: out,
	})
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(out, "images"))
}

func TestWatchDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "portfolio.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("{}"), 0o644))

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{doc}, 50*time.Millisecond, nil, func() { calls.Add(1) })
	}()
	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(doc, []byte(`{"navLinks":[]}`), 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRelevant(t *testing.T) {
	files := map[string]bool{"/c/portfolio.json": true}
	paths := []string{"/c/portfolio.json", "/img"}

	assert.True(t, relevant("/c/portfolio.json", files, paths))
	assert.False(t, relevant("/c/other.json", files, paths))
	assert.True(t, relevant("/img/skills/go.svg", files, paths))
	assert.False(t, relevant("/imgx/a.png", files, paths))
}
