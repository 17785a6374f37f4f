package domain

import "strings"

// Rarity tiers recognised by the classifier.
const (
	RaritySUR = "sur"
	RaritySFA = "sfa"
	RaritySIR = "sir"

	RarityCommon = "common"
)

// Presentation is the pair of tags the renderer applies to a revealed card.
// Emphasis is empty for the default tier.
type Presentation struct {
	Base     string `json:"base"`
	Emphasis string `json:"emphasis,omitempty"`
}

// Classes returns the tags in the order the renderer applies them.
func (p Presentation) Classes() []string {
	if p.Emphasis == "" {
		return []string{p.Base}
	}
	return []string{p.Base, p.Emphasis}
}

// Classify maps a rarity label to its presentation tags. Unknown and empty
// labels map to the common tier.
func Classify(label string) Presentation {
	switch r := strings.ToLower(strings.TrimSpace(label)); r {
	case RaritySUR, RaritySFA, RaritySIR:
		return Presentation{Base: r, Emphasis: "glow-" + r}
	default:
		return Presentation{Base: RarityCommon}
	}
}

// PickImage chooses one of the item's images uniformly at random.
func PickImage(it Item, rng RNG) string {
	if len(it.Images) == 0 {
		return ""
	}
	return it.Images[rng.IntN(len(it.Images))]
}

// PrepareCards attaches a display image and presentation tags to each drawn
// item. Positions are 1-based.
func PrepareCards(items []Item, rng RNG) []DrawnCard {
	cards := make([]DrawnCard, len(items))
	for i, it := range items {
		cards[i] = DrawnCard{
			Item:         it,
			Position:     i + 1,
			Image:        PickImage(it, rng),
			Presentation: Classify(it.Rarity),
		}
	}
	return cards
}
