package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/cardflip/internal/domain"
)

// Format is the encoding of a catalog document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// formatFromName guesses the format from a file name or URL path.
// A trailing .gz is ignored; compression is detected from the content.
func formatFromName(name string) Format {
	ext := strings.ToLower(path.Ext(strings.TrimSuffix(strings.ToLower(name), ".gz")))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// catalogSchema accepts the loose shapes the lenient decoder understands.
// It only rejects documents whose structure is wrong.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id":     {"type": ["string", "number"]},
      "name":   {"type": ["string", "number"]},
      "weight": {"type": ["number", "string", "null"]},
      "rarity": {"type": ["string", "number", "null"]},
      "images": {"type": ["array", "null"], "items": {"type": "string"}},
      "image":  {"type": ["string", "null"]}
    }
  }
}`

var schema = jsonschema.MustCompileString("https://cardflip.local/catalog.schema.json", catalogSchema)

const gzipMagic = "\x1f\x8b"

// Parse decodes a catalog document into a Catalog. Items that cannot be drawn
// or rendered are dropped and logged at warn level.
func Parse(raw []byte, format Format, logger *slog.Logger) (domain.Catalog, error) {
	raw, err := gunzipIfNeeded(raw)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogMalformed, err)
	}

	if format == FormatYAML {
		if raw, err = yamlToJSON(raw); err != nil {
			return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogMalformed, err)
		}
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: decode: %w", domain.ErrCatalogMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogMalformed, err)
	}

	items, warn := domain.SanitizeItems(decodeItems(raw))
	if warn != nil {
		logger.Warn("catalog items dropped", "error", warn)
	}
	return domain.NewCatalog(items), nil
}

func gunzipIfNeeded(raw []byte) ([]byte, error) {
	if !bytes.HasPrefix(raw, []byte(gzipMagic)) {
		return raw, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return out, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml to json: %w", err)
	}
	return out, nil
}

// decodeItems reads item records leniently: a missing or unparsable weight
// is zero, rarity may be a number, and a single "image" stands in for an
// absent "images" list.
func decodeItems(raw []byte) []domain.Item {
	records := gjson.ParseBytes(raw).Array()
	items := make([]domain.Item, 0, len(records))
	for _, rec := range records {
		it := domain.Item{
			ID:     rec.Get("id").String(),
			Name:   rec.Get("name").String(),
			Weight: weightOf(rec.Get("weight")),
			Rarity: rec.Get("rarity").String(),
		}
		for _, img := range rec.Get("images").Array() {
			it.Images = append(it.Images, img.String())
		}
		if len(it.Images) == 0 {
			if img := rec.Get("image"); img.Exists() {
				it.Images = []string{img.String()}
			}
		}
		items = append(items, it)
	}
	return items
}

func weightOf(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number, gjson.String:
		return r.Float()
	default:
		return 0
	}
}
