package catalogs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/randomtoy/cardflip/internal/domain"
)

// maxCatalogBytes caps the size of a fetched catalog document.
const maxCatalogBytes = 8 << 20

// RemoteStore fetches the catalog over HTTP. There is a single attempt;
// a failure is reported to the caller, which disables draws.
type RemoteStore struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

func NewRemoteStore(httpClient *http.Client, rawURL string, logger *slog.Logger) *RemoteStore {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteStore{
		httpClient: httpClient,
		url:        rawURL,
		logger:     logger,
	}
}

func (s *RemoteStore) Load(ctx context.Context) (domain.Catalog, error) {
	raw, contentType, err := s.fetch(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %w", domain.ErrCatalogFetch, err)
	}

	s.logger.DebugContext(ctx, "catalog fetched", "url", s.url, "bytes", len(raw), "content_type", contentType)

	catalog, err := Parse(raw, s.format(contentType), s.logger)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("parse %s: %w", s.url, err)
	}
	return catalog, nil
}

func (s *RemoteStore) fetch(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxCatalogBytes {
		return nil, "", fmt.Errorf("catalog larger than %d bytes", maxCatalogBytes)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (s *RemoteStore) format(contentType string) Format {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "yaml") {
		return FormatYAML
	}
	if strings.Contains(ct, "json") {
		return FormatJSON
	}
	if u, err := url.Parse(s.url); err == nil {
		return formatFromName(u.Path)
	}
	return FormatJSON
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
