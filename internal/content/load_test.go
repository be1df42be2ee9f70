package content

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "full.json"))
	require.NoError(t, err)

	assert.Equal(t, "/cv.pdf", doc.CVPath)
	require.Len(t, doc.NavLinks, 1)
	assert.Equal(t, NavLink{Name: "Work", Href: "#work"}, doc.NavLinks[0])

	require.NotNil(t, doc.Home)
	assert.Equal(t, "Ada", doc.Home.Name)
	assert.Empty(t, doc.Home.Location, "null decodes to the empty value")
	require.Len(t, doc.Home.Socials, 2)
	assert.Equal(t, "MastodonOutlined", doc.Home.Socials[1].IconKey)

	assert.Nil(t, doc.About)
	assert.Nil(t, doc.Skills)
	assert.Nil(t, doc.Projects)

	require.NotNil(t, doc.Experience)
	assert.Equal(t, []string{"first", "second", "third"}, doc.Experience.List[0].DescriptionPoints)
	require.NotNil(t, doc.Contact)
	assert.Equal(t, "a@b.com", doc.Contact.Email)
}

func TestLoadYAML(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	require.NotNil(t, doc.Home)
	assert.Equal(t, "Ada", doc.Home.Name)
	require.NotNil(t, doc.Skills)
	assert.Equal(t, []SkillItem{{Name: "Go", IconPath: "/images/go.svg"}}, doc.Skills.List)
	assert.Nil(t, doc.Contact)
}

func TestLoadStructurallyAbsent(t *testing.T) {
	tests := map[string]string{
		"no file":    filepath.Join("testdata", "does-not-exist.json"),
		"empty file": filepath.Join("testdata", "empty.json"),
		"null":       filepath.Join("testdata", "null.json"),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrMissing)
		})
	}
}

func TestLoadWrongTypeIsParseError(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "wrongtype.json"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, filepath.Join("testdata", "wrongtype.json"), perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, err.Error(), "wrongtype.json:2")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("portfolio.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("{\n  \"home\": {\n"), FormatJSON)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Positive(t, perr.Line)
	assert.Contains(t, err.Error(), "parse content: line ")
	assert.NotContains(t, err.Error(), ": :")
}

func TestParseYAMLErrorWithoutPath(t *testing.T) {
	_, err := Parse([]byte("home: [unclosed"), FormatYAML)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, perr.Path)
	assert.True(t, strings.HasPrefix(err.Error(), "parse content: yaml: "), err.Error())
}

func TestParseEmptyObjectIsPresent(t *testing.T) {
	doc, err := Parse([]byte(`{}`), FormatJSON)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Nil(t, doc.Home)
	assert.Empty(t, doc.NavLinks)
}
