package icons

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownKeys(t *testing.T) {
	reg := Default()

	for _, key := range []Key{GitHub, Twitter, LinkedIn, Medium, Environment, Sun, Moon} {
		icon, ok := reg.Resolve(string(key))
		require.True(t, ok, key)
		assert.Equal(t, key, icon.Key)
		assert.NotEmpty(t, icon.Label)
	}
}

func TestResolveUnknownKeyIsAbsent(t *testing.T) {
	reg := Default()

	for _, key := range []string{"", "MastodonOutlined", "githuboutlined", "GithubOutlined "} {
		icon, ok := reg.Resolve(key)
		assert.False(t, ok, key)
		assert.Equal(t, Icon{}, icon)
	}
}

func TestResolveOnNilRegistry(t *testing.T) {
	var reg *Registry
	_, ok := reg.Resolve(string(GitHub))
	assert.False(t, ok)
}

func TestKeysCoverEveryGlyph(t *testing.T) {
	keys := Default().Keys()
	assert.Len(t, keys, len(glyphs))
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))
}

func TestSVGEscapesClass(t *testing.T) {
	icon, ok := Default().Resolve(string(Mail))
	require.True(t, ok)
	svg := string(icon.SVG(`text-xl "><script>`))

	assert.Contains(t, svg, `data-icon="MailOutlined"`)
	assert.Contains(t, svg, `aria-hidden="true"`)
	assert.NotContains(t, svg, "<script>")
}
