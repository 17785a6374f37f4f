package domain

// Draw selects up to n distinct items from catalog, each pick weighted by
// the item's share of the weight still left in the pool. Selected items are
// removed from the pool, so a result never holds the same item twice. The
// result is shorter than n only when the pool runs out of weight.
func Draw(catalog Catalog, n int, rng RNG) []Item {
	if n <= 0 || catalog.Len() == 0 {
		return []Item{}
	}

	// Working pool: positions of drawable items, in catalog order.
	pool := make([]int, 0, catalog.Len())
	for i, it := range catalog.items {
		if it.EffectiveWeight() > 0 {
			pool = append(pool, i)
		}
	}

	drawn := make([]Item, 0, min(n, len(pool)))
	for len(drawn) < n {
		pos, ok := pick(catalog.items, pool, rng)
		if !ok {
			break
		}
		drawn = append(drawn, catalog.items[pool[pos]].clone())
		pool = append(pool[:pos], pool[pos+1:]...)
	}
	return drawn
}

// pick runs one inverse-CDF step over pool and returns the position of the
// selected entry within pool.
func pick(items []Item, pool []int, rng RNG) (int, bool) {
	var total float64
	for _, idx := range pool {
		total += items[idx].EffectiveWeight()
	}
	if total <= 0 {
		return -1, false
	}

	r := rng.Float64() * total
	for pos, idx := range pool {
		r -= items[idx].EffectiveWeight()
		// A remainder of exactly zero belongs to the current item.
		if r <= 0 {
			return pos, true
		}
	}
	// Rounding can leave a tiny positive remainder after the last item.
	return len(pool) - 1, true
}
