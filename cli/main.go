// lyrix resolves an artist's song catalog from spotify, fetches lyrics for
// every song from lyrics.ovh, and reports word-count statistics.
//
// requires SPOTIFY_API_URL, SPOTIFY_AUTH_URL, SPOTIFY_CLIENT_ID, and
// SPOTIFY_CLIENT_SECRET, read from the environment or a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/calmacx/lyrix/cache"
	"github.com/calmacx/lyrix/config"
	"github.com/calmacx/lyrix/lyricsovh"
	"github.com/calmacx/lyrix/spotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: lyrix [-log-level N] $cmd
valid $cmd are 'search', 'find-songs', 'get'
for help: lyrix $cmd -help
`)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logLevel := flag.Int("log-level", 2, "log verbosity: 0 error, 1 warning, 2 info, 3 debug")
	flag.Parse()
	setupLogging(*logLevel)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	args := flag.Args()
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd, args := args[0], args[1:]

	lyrics := lyricsovh.New(cfg.LyricsAPIURL)
	catalog := spotify.New(spotify.Config{
		BaseURL:      cfg.SpotifyAPIURL,
		AuthURL:      cfg.SpotifyAuthURL,
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
	})

	switch cmd {
	case "search":
		return search(ctx, lyrics, args)

	case "find-songs":
		return findSongs(ctx, catalog, args)

	case "get":
		return get(ctx, cache.New(catalog, lyrics, cfg.Workers), args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

func setupLogging(level int) {
	switch level {
	case 0:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 3:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
