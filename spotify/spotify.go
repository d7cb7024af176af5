package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/calmacx/lyrix/data"
	"github.com/calmacx/lyrix/request"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrArtistNotFound means a search returned zero artists for a name.
var ErrArtistNotFound = errors.New("artist not found")

// albumsPerRequest is the batch size accepted by the albums endpoint.
const albumsPerRequest = 20

type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
}

// New creates a new Spotify client. Requests carry a bearer token from the
// client-credentials flow; when the token expires (after about an hour) the
// client re-authenticates on the next request.
func New(cfg Config) *Client {
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AuthURL,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    creds.Client(context.Background()),
	}
}

type Client struct {
	baseURL string
	http    *http.Client
}

// FindSongs resolves an artist name into its deduplicated song catalog.
//
// Track names containing " - " are cut at the first occurrence, which
// collapses entries like "Song Title - Remastered 2011" and "Song Title" into
// one song. When duplicates collapse, the last one fetched keeps its
// metadata.
func (spo *Client) FindSongs(ctx context.Context, artistName string) (map[string]data.Song, error) {
	artistID, err := spo.FindArtistID(ctx, artistName)
	if err != nil {
		return nil, err
	}

	albumIDs, err := spo.FetchArtistAlbums(ctx, artistID)
	if err != nil {
		return nil, err
	}

	tracks, err := spo.FetchAlbumsSongs(ctx, albumIDs)
	if err != nil {
		return nil, err
	}

	songs := make(map[string]data.Song, len(tracks))
	for _, track := range tracks {
		name, _, _ := strings.Cut(track.Name, " - ")
		track.Name = name
		songs[name] = track
	}
	return songs, nil
}

// FindArtistID searches for an artist by name and returns the id of the
// first match. An ambiguous search is logged, not an error.
func (spo *Client) FindArtistID(ctx context.Context, name string) (string, error) {
	query := url.Values{}
	query.Add("q", fmt.Sprintf("%q", name))
	query.Add("type", "artist")

	resp, err := spo.get(ctx, "/search", query)
	if err != nil {
		return "", err
	}

	defer resp.Close()
	var results artistSearchResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return "", fmt.Errorf("artist search decode error: %w", err)
	}

	items := results.Artists.Items
	if len(items) == 0 {
		return "", fmt.Errorf("no artist matching '%s': %w", name, ErrArtistNotFound)
	}
	if len(items) > 1 {
		log.Warn().
			Str("artist", name).
			Int("matches", len(items)).
			Str("using", items[0].Name).
			Msg("ambiguous artist search")
	}
	return items[0].ID, nil
}

type artistSearchResults struct {
	Artists struct {
		Limit  int
		Offset int
		Total  int

		Items []struct {
			ID   string
			Name string
		}
	}
}

// FetchArtistAlbums lists the ids of every album and single by the artist.
func (spo *Client) FetchArtistAlbums(ctx context.Context, artistID string) ([]string, error) {
	var albumIDs []string
	for offset := 0; offset < 1000; offset += 50 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := spo.fetchArtistAlbumsPage(ctx, artistID, offset)
		if err != nil {
			return nil, err
		}
		for _, album := range resp.Items {
			albumIDs = append(albumIDs, album.ID)
		}
		if len(resp.Items) < 50 {
			break
		}
	}
	return albumIDs, nil
}

func (spo *Client) fetchArtistAlbumsPage(ctx context.Context, artistID string, offset int) (*artistAlbumsPage, error) {
	query := url.Values{}
	query.Add("limit", "50")
	query.Add("offset", fmt.Sprintf("%d", offset))
	query.Add("include_groups", "album,single")

	resp, err := spo.get(ctx, fmt.Sprintf("/artists/%s/albums", artistID), query)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results artistAlbumsPage
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("artist albums decode error: %w", err)
	}

	return &results, nil
}

type artistAlbumsPage struct {
	Limit  int
	Offset int
	Total  int

	Items []struct {
		ID   string
		Name string
	}
}

// FetchAlbumsSongs lists every track across the given albums, batching album
// ids into as few requests as the API allows.
func (spo *Client) FetchAlbumsSongs(ctx context.Context, albumIDs []string) ([]data.Song, error) {
	var songs []data.Song
	for start := 0; start < len(albumIDs); start += albumsPerRequest {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + albumsPerRequest
		if end > len(albumIDs) {
			end = len(albumIDs)
		}
		batch, err := spo.fetchAlbumsSongsBatch(ctx, albumIDs[start:end])
		if err != nil {
			return nil, err
		}
		songs = append(songs, batch...)
	}
	return songs, nil
}

func (spo *Client) fetchAlbumsSongsBatch(ctx context.Context, albumIDs []string) ([]data.Song, error) {
	query := url.Values{}
	query.Add("ids", strings.Join(albumIDs, ","))

	resp, err := spo.get(ctx, "/albums", query)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results albumsTracks
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("albums tracks decode error: %w", err)
	}

	var songs []data.Song
	for _, album := range results.Albums {
		for _, track := range album.Tracks.Items {
			songs = append(songs, data.Song{
				Name:        track.Name,
				ReleaseDate: album.ReleaseDate,
				TrackNumber: track.TrackNumber,
			})
		}
	}
	return songs, nil
}

type albumsTracks struct {
	Albums []struct {
		ID          string
		Name        string
		ReleaseDate string `json:"release_date"`

		Tracks struct {
			Limit  int
			Offset int
			Total  int

			Items []struct {
				ID          string
				Name        string
				TrackNumber int64 `json:"track_number"`
			}
		}
	}
}

func (spo *Client) get(ctx context.Context, path string, query url.Values) (io.ReadCloser, error) {
	u, err := url.Parse(spo.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := spo.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	if err := request.Error(resp); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch error: %w", err)
	}

	return resp.Body, nil
}
