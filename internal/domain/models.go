package domain

import "math"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Float64 returns a random float in [0, 1).
	Float64() float64
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// Item is a single weighted card in a catalog.
type Item struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Weight float64  `json:"weight"`
	Rarity string   `json:"rarity,omitempty"`
	Images []string `json:"images"`
}

// EffectiveWeight is the weight used for selection. Negative, NaN and
// infinite weights count as zero.
func (it Item) EffectiveWeight() float64 {
	w := it.Weight
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}

func (it Item) clone() Item {
	it.Images = append([]string(nil), it.Images...)
	return it
}

// Catalog is an immutable ordered collection of items.
type Catalog struct {
	items []Item
}

// NewCatalog copies items into a new Catalog. Later changes to items are
// not visible through the catalog.
func NewCatalog(items []Item) Catalog {
	cp := make([]Item, len(items))
	for i, it := range items {
		cp[i] = it.clone()
	}
	return Catalog{items: cp}
}

// Items returns a copy of the catalog contents in order.
func (c Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

func (c Catalog) Len() int { return len(c.items) }

// Empty reports whether no draw is possible from the catalog.
func (c Catalog) Empty() bool { return c.TotalWeight() <= 0 }

// TotalWeight sums the effective weights of all items.
func (c Catalog) TotalWeight() float64 {
	var total float64
	for _, it := range c.items {
		total += it.EffectiveWeight()
	}
	return total
}

// DrawnCard is an item prepared for the renderer.
type DrawnCard struct {
	Item
	Position     int          `json:"position"`
	Image        string       `json:"image"`
	Presentation Presentation `json:"presentation"`
}
