package main

import (
	"context"
	"fmt"

	"github.com/calmacx/lyrix/lyricsovh"
	"github.com/calmacx/lyrix/subcmd"
)

func search(ctx context.Context, lyrics *lyricsovh.Client, args []string) error {
	sc := subcmd.New("search", "print the lyrics for one song")
	artist := sc.String("artist", "", "artist name (required)")
	song := sc.String("song", "", "song name (required)")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if *artist == "" || *song == "" {
		sc.Usage()
		return fmt.Errorf("both -artist and -song are required")
	}

	text, err := lyrics.Fetch(ctx, *artist, *song)
	if err != nil {
		return fmt.Errorf("error getting lyrics for '%s' by '%s': %w", *song, *artist, err)
	}

	fmt.Println(text)

	return nil
}
