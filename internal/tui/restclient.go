package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"codeberg.org/encore/server/internal/story"
	tea "github.com/charmbracelet/bubbletea"
)

// timeout for recap requests
const recapRequestTimeout = 30 * time.Second

// manages HTTP requests to the recap REST API
type RecapClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new recap REST client
func NewRecapClient() *RecapClient {
	endpoint := os.Getenv("ENCORE_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &RecapClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: recapRequestTimeout,
		},
	}
}

// fetches the ordered story slides for a year
func (c *RecapClient) Slides(ctx context.Context, year int, viewer string) ([]story.Slide, error) {
	var result slidesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/recap/%d/slides", year), viewer, &result); err != nil {
		return nil, err
	}

	return result.Slides, nil
}

// fetches the emoji share text for a year
func (c *RecapClient) Share(ctx context.Context, year int, viewer string) (string, error) {
	var result shareResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/recap/%d/share", year), viewer, &result); err != nil {
		return "", err
	}

	return result.Text, nil
}

func (c *RecapClient) getJSON(ctx context.Context, path, viewer string, out any) error {
	u := c.endpoint + path
	if viewer != "" {
		u += "?viewer=" + url.QueryEscape(viewer)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that fetches the slides for a year
func (c *RecapClient) SlidesCmd(year int, viewer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recapRequestTimeout)
		defer cancel()

		slides, err := c.Slides(ctx, year, viewer)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return SlidesLoadedMsg{Year: year, Viewer: viewer, Slides: slides}
	}
}

// returns a tea.Cmd that fetches the share text for a year
func (c *RecapClient) ShareCmd(year int, viewer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recapRequestTimeout)
		defer cancel()

		text, err := c.Share(ctx, year, viewer)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return ShareTextMsg{Text: text}
	}
}

// REST API response types

type slidesResponse struct {
	Year   int           `json:"year"`
	Slides []story.Slide `json:"slides"`
}

type shareResponse struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
