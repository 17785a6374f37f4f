package catalogs_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/cardflip/internal/adapters/catalogs"
	"github.com/randomtoy/cardflip/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleJSON = `[
  {"name": "Ember Fox", "weight": 3, "rarity": "sir", "images": ["fox1.png", "fox2.png"]},
  {"name": "Tide Turtle", "weight": 1, "images": ["turtle.png"]}
]`

func TestParse_JSON(t *testing.T) {
	catalog, err := catalogs.Parse([]byte(sampleJSON), catalogs.FormatJSON, discardLogger())
	require.NoError(t, err)

	items := catalog.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.Item{
		ID: "Ember Fox", Name: "Ember Fox", Weight: 3, Rarity: "sir",
		Images: []string{"fox1.png", "fox2.png"},
	}, items[0])
	assert.Equal(t, 4.0, catalog.TotalWeight())
}

func TestParse_YAML(t *testing.T) {
	doc := `
- name: Ember Fox
  weight: 3
  rarity: SUR
  images: [fox1.png]
- id: turtle
  name: Tide Turtle
  weight: 1.5
  image: turtle.png
`
	catalog, err := catalogs.Parse([]byte(doc), catalogs.FormatYAML, discardLogger())
	require.NoError(t, err)

	items := catalog.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "SUR", items[0].Rarity)
	assert.Equal(t, "turtle", items[1].ID)
	assert.Equal(t, 1.5, items[1].Weight)
	assert.Equal(t, []string{"turtle.png"}, items[1].Images)
}

func TestParse_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleJSON))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	catalog, err := catalogs.Parse(buf.Bytes(), catalogs.FormatJSON, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
}

func TestParse_LenientFields(t *testing.T) {
	doc := `[
	  {"name": "no weight", "images": ["a.png"]},
	  {"name": "string weight", "weight": "2.5", "images": ["b.png"]},
	  {"name": "null rarity", "weight": 1, "rarity": null, "images": ["c.png"]},
	  {"name": "numeric rarity", "weight": 1, "rarity": 7, "images": ["d.png"]},
	  {"name": "junk weight", "weight": "lots", "images": ["e.png"]}
	]`
	catalog, err := catalogs.Parse([]byte(doc), catalogs.FormatJSON, discardLogger())
	require.NoError(t, err)

	items := catalog.Items()
	require.Len(t, items, 5)
	assert.Zero(t, items[0].Weight)
	assert.Equal(t, 2.5, items[1].Weight)
	assert.Empty(t, items[2].Rarity)
	assert.Equal(t, "7", items[3].Rarity)
	assert.Zero(t, items[4].Weight)
}

func TestParse_DropsUnrenderableItems(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	doc := `[
	  {"name": "ok", "weight": 1, "images": ["ok.png"]},
	  {"name": "no images", "weight": 1},
	  {"weight": 1, "images": ["anon.png"]}
	]`

	catalog, err := catalogs.Parse([]byte(doc), catalogs.FormatJSON, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
	assert.Contains(t, logs.String(), "catalog items dropped")
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{{{`,
		"object root":     `{"name": "x"}`,
		"item not object": `["x", "y"]`,
		"images not list": `[{"name": "x", "images": {"a": 1}}]`,
		"weight is bool":  `[{"name": "x", "weight": true, "images": ["a.png"]}]`,
		"truncated gzip":  "\x1f\x8b\x08\x00",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalogs.Parse([]byte(doc), catalogs.FormatJSON, discardLogger())
			assert.ErrorIs(t, err, domain.ErrCatalogMalformed)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := catalogs.Parse([]byte("- name: [unclosed"), catalogs.FormatYAML, discardLogger())
	assert.ErrorIs(t, err, domain.ErrCatalogMalformed)
}

func TestParse_EmptyArray(t *testing.T) {
	catalog, err := catalogs.Parse([]byte(`[]`), catalogs.FormatJSON, discardLogger())
	require.NoError(t, err)
	assert.True(t, catalog.Empty())
}
