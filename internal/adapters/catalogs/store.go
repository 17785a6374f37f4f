package catalogs

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/randomtoy/cardflip/internal/domain"
	"github.com/randomtoy/cardflip/internal/ports"
)

//go:embed data/cards.json
var catalogFS embed.FS

const embeddedFile = "data/cards.json"

// LocationEmbedded selects the catalog bundled with the binary.
const LocationEmbedded = "embedded"

// New picks a source for location: "" or "embedded" for the bundled catalog,
// an http(s) URL for a remote document, anything else is a file path.
func New(location string, httpClient *http.Client, logger *slog.Logger) ports.CatalogSource {
	switch {
	case location == "" || location == LocationEmbedded:
		return NewEmbeddedStore(logger)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewRemoteStore(httpClient, location, logger)
	default:
		return NewFileStore(location, logger)
	}
}

// EmbeddedStore loads the catalog bundled with the binary.
type EmbeddedStore struct {
	logger  *slog.Logger
	once    sync.Once
	catalog domain.Catalog
	err     error
}

func NewEmbeddedStore(logger *slog.Logger) *EmbeddedStore {
	return &EmbeddedStore{logger: logger}
}

func (s *EmbeddedStore) init() {
	raw, err := catalogFS.ReadFile(embeddedFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	s.catalog, s.err = Parse(raw, FormatJSON, s.logger)
	if s.err != nil {
		s.err = fmt.Errorf("parse embedded catalog: %w", s.err)
	}
}

func (s *EmbeddedStore) Load(_ context.Context) (domain.Catalog, error) {
	s.once.Do(s.init)
	return s.catalog, s.err
}

// FileStore loads a catalog from a JSON or YAML file, optionally gzipped.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads and parses the file on every call.
func (s *FileStore) Load(_ context.Context) (domain.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogFetch, err)
	}
	catalog, err := Parse(raw, formatFromName(s.path), s.logger)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return catalog, nil
}
