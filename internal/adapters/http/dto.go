package http

// DrawRequest is the JSON body accepted by POST /v1/draw.
type DrawRequest struct {
	Count int `json:"count"`
}

// DrawResponse is the JSON shape returned by /v1/draw.
type DrawResponse struct {
	Requested int            `json:"requested"`
	Cards     []CardResponse `json:"cards"`
	Meta      MetaResp       `json:"meta"`
}

type CardResponse struct {
	Position int      `json:"position"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rarity   string   `json:"rarity"`
	Image    string   `json:"image"`
	Base     string   `json:"base"`
	Emphasis string   `json:"emphasis,omitempty"`
	Classes  []string `json:"classes"`
}

// CatalogResponse is the JSON shape returned by GET /v1/catalog.
type CatalogResponse struct {
	Enabled bool              `json:"enabled"`
	Items   []CatalogItemResp `json:"items"`
	Presets []int             `json:"presets"`
}

type CatalogItemResp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Weight   float64  `json:"weight"`
	Rarity   string   `json:"rarity"`
	Images   []string `json:"images"`
	Base     string   `json:"base"`
	Emphasis string   `json:"emphasis,omitempty"`
	Odds     float64  `json:"odds"`
}

type PresetsResponse struct {
	Presets []int `json:"presets"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
