package lyricsovh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotFound means the service has no lyrics for the song. Connectivity
// failures, non-200 responses, and malformed bodies all collapse into it:
// from the caller's point of view they are the same "no lyrics" outcome.
var ErrNotFound = errors.New("lyrics not found")

const DefaultBaseURL = "https://api.lyrics.ovh"

// New creates a lyrics.ovh client. An empty baseURL selects the public API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Client struct {
	baseURL string
	http    *http.Client
}

// Fetch returns the lyric text for one song. Artist and song names are sent
// quoted inside the URL path, which is how the service expects them.
func (c *Client) Fetch(ctx context.Context, artist, song string) (string, error) {
	u := fmt.Sprintf("%s/v1/%s/%s", c.baseURL, quote(artist), quote(song))
	log.Debug().Str("url", u).Msg("trying")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: http status code %d", ErrNotFound, resp.StatusCode)
	}

	var result struct {
		Lyrics string `json:"lyrics"`
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return "", fmt.Errorf("%w: lyrics decode error: %v", ErrNotFound, err)
	}

	return result.Lyrics, nil
}

func quote(name string) string {
	return url.PathEscape(`"` + name + `"`)
}
