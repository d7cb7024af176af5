package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/calmacx/lyrix/collector"
	"github.com/calmacx/lyrix/data"
	"github.com/calmacx/lyrix/words"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrNoLyrics means the catalog resolved but no song produced lyrics. The
// artist is not cached in that case, so a later call tries again.
var ErrNoLyrics = errors.New("no lyrics found")

// CatalogSource resolves an artist name into its deduplicated song catalog.
type CatalogSource interface {
	FindSongs(ctx context.Context, artist string) (map[string]data.Song, error)
}

// LyricsSource returns the lyric text for one artist+song pair.
type LyricsSource interface {
	Fetch(ctx context.Context, artist, song string) (string, error)
}

// New creates an artist cache over the two sources. maxParallelism bounds the
// lyrics fan-out; pass 0 for the collector default.
func New(catalog CatalogSource, lyrics LyricsSource, maxParallelism int) *Cache {
	return &Cache{
		catalog:        catalog,
		lyrics:         lyrics,
		maxParallelism: maxParallelism,
		artists:        map[string]*data.Artist{},
	}
}

// Cache materializes and memoizes Artist records, keyed by the exact artist
// name requested. A record is built at most once per name for the life of the
// process; concurrent first requests for the same name share a single
// pipeline run.
type Cache struct {
	catalog        CatalogSource
	lyrics         LyricsSource
	maxParallelism int

	mu      sync.RWMutex
	artists map[string]*data.Artist
	group   singleflight.Group
}

// Get returns the record for the artist, building it on first use. The
// returned Artist is shared between callers and must be treated as
// read-only.
func (c *Cache) Get(ctx context.Context, name string) (*data.Artist, error) {
	c.mu.RLock()
	artist, ok := c.artists[name]
	c.mu.RUnlock()
	if ok {
		return artist, nil
	}

	v, err, _ := c.group.Do(name, func() (interface{}, error) {
		// a previous flight may have landed between the read above and
		// this call
		c.mu.RLock()
		artist, ok := c.artists[name]
		c.mu.RUnlock()
		if ok {
			return artist, nil
		}

		artist, err := c.materialize(ctx, name)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.artists[name] = artist
		c.mu.Unlock()
		return artist, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*data.Artist), nil
}

func (c *Cache) materialize(ctx context.Context, name string) (*data.Artist, error) {
	songs, err := c.catalog.FindSongs(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error resolving catalog for '%s': %w", name, err)
	}

	songNames := make([]string, 0, len(songs))
	for songName := range songs {
		songNames = append(songNames, songName)
	}

	found := collector.FetchAll(ctx, songNames, func(ctx context.Context, song string) (string, error) {
		lyrics, err := c.lyrics.Fetch(ctx, name, song)
		if err != nil {
			log.Warn().Str("artist", name).Str("song", song).Err(err).Msg("no lyrics")
			return "", err
		}
		log.Info().Str("artist", name).Str("song", song).Msg("got lyrics")
		return lyrics, nil
	}, c.maxParallelism)

	if len(found) == 0 {
		return nil, fmt.Errorf("%w for artist '%s'", ErrNoLyrics, name)
	}

	var wordCounts []data.WordCount
	for songName, lyrics := range found {
		song := songs[songName]
		song.Lyrics = lyrics
		songs[songName] = song

		tokens := words.Tokenize(lyrics)
		if len(tokens) == 0 {
			continue
		}
		wordCounts = append(wordCounts, words.Count(songName, tokens))
	}

	return &data.Artist{
		Name:       name,
		Songs:      songs,
		WordCounts: wordCounts,
		Stats:      words.Summarize(len(songs), wordCounts),
	}, nil
}
