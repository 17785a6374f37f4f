package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/cardflip/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		label string
		want  domain.Presentation
	}{
		{"SIR", domain.Presentation{Base: "sir", Emphasis: "glow-sir"}},
		{" sfa ", domain.Presentation{Base: "sfa", Emphasis: "glow-sfa"}},
		{"Sur", domain.Presentation{Base: "sur", Emphasis: "glow-sur"}},
		{"\tsUr\n", domain.Presentation{Base: "sur", Emphasis: "glow-sur"}},
		{"", domain.Presentation{Base: "common"}},
		{"   ", domain.Presentation{Base: "common"}},
		{"xyz", domain.Presentation{Base: "common"}},
		{"common", domain.Presentation{Base: "common"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.Classify(tc.label), "label %q", tc.label)
	}
}

func TestClassify_NullRarity(t *testing.T) {
	var it domain.Item
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","rarity":null}`), &it))

	got := domain.Classify(it.Rarity)
	assert.Equal(t, domain.Presentation{Base: "common"}, got)
	assert.Equal(t, []string{"common"}, got.Classes())
}

func TestPresentation_Classes(t *testing.T) {
	assert.Equal(t, []string{"sir", "glow-sir"}, domain.Classify("sir").Classes())
}

func TestPickImage(t *testing.T) {
	it := domain.Item{ID: "a", Images: []string{"one.png", "two.png", "three.png"}}
	rng := newPCG(11)

	seen := map[string]int{}
	for range 300 {
		seen[domain.PickImage(it, rng)]++
	}
	assert.Len(t, seen, 3)
	for img, n := range seen {
		assert.Greater(t, n, 50, "image %s picked %d times", img, n)
	}

	assert.Empty(t, domain.PickImage(domain.Item{ID: "bare"}, rng))
}

func TestPrepareCards(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Name: "A", Weight: 1, Rarity: "SUR", Images: []string{"a.png"}},
		{ID: "b", Name: "B", Weight: 1, Images: []string{"b.png"}},
	}

	cards := domain.PrepareCards(items, newPCG(5))
	require.Len(t, cards, 2)
	assert.Equal(t, 1, cards[0].Position)
	assert.Equal(t, "a.png", cards[0].Image)
	assert.Equal(t, "glow-sur", cards[0].Presentation.Emphasis)
	assert.Equal(t, 2, cards[1].Position)
	assert.Equal(t, "common", cards[1].Presentation.Base)
}
