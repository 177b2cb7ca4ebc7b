// Package catalog is a thin passthrough to the MusicBrainz artist
// search API, used to link tracked artists to canonical catalog
// entries.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	searchURL = "https://musicbrainz.org/ws/2/artist"

	// MusicBrainz asks for a meaningful User-Agent on every request
	userAgent = "Encore/1.0 (https://codeberg.org/encore/server)"

	defaultSearchLimit = 10
)

// shared HTTP client for catalog calls
var catalogHTTPClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type Client struct {
	httpClient *http.Client

	// MusicBrainz allows one request per second per client
	limiter *rate.Limiter
}

func New() *Client {
	return &Client{
		httpClient: catalogHTTPClient,
		limiter:    rate.NewLimiter(1, 1),
	}
}

// SearchArtists queries MusicBrainz for artists matching the query
// string. Blocks on the rate limiter, so callers should pass a context
// with a deadline.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]ArtistResult, error) {
	if limit <= 0 || limit > 25 {
		limit = defaultSearchLimit
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("fmt", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // response body cleanup

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	results := make([]ArtistResult, 0, len(parsed.Artists))

	for _, item := range parsed.Artists {
		results = append(results, ArtistResult{
			MBID:           item.ID,
			Name:           item.Name,
			Disambiguation: item.Disambiguation,
			Country:        item.Country,
			Type:           item.Type,
			Score:          item.Score,
		})
	}

	return results, nil
}
