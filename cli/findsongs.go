package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/calmacx/lyrix/spotify"
	"github.com/calmacx/lyrix/subcmd"
)

func findSongs(ctx context.Context, catalog *spotify.Client, args []string) error {
	sc := subcmd.New("find-songs", "list every song in an artist's catalog")
	artist := sc.String("artist", "", "artist name (required)")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if *artist == "" {
		sc.Usage()
		return fmt.Errorf("-artist is required")
	}

	songs, err := catalog.FindSongs(ctx, *artist)
	if err != nil {
		return fmt.Errorf("error finding songs for '%s': %w", *artist, err)
	}

	names := make([]string, 0, len(songs))
	for name := range songs {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		fmt.Printf("%d: %s\n", i, name)
	}

	return nil
}
