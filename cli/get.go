package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/calmacx/lyrix/cache"
	"github.com/calmacx/lyrix/subcmd"
)

func get(ctx context.Context, artists *cache.Cache, args []string) error {
	sc := subcmd.New("get", "compute and print a derived record for an artist")
	sc.SetArg("what", "string", "what to get; only 'statistics' is supported")
	artist := sc.String("artist", "", "artist name (required)")

	// the positional arg comes first, as in 'lyrix get statistics -artist X'
	var what string
	if len(args) > 0 {
		what, args = args[0], args[1:]
	}
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if what != "statistics" {
		sc.Usage()
		return fmt.Errorf("don't know how to get '%s'", what)
	}
	if *artist == "" {
		sc.Usage()
		return fmt.Errorf("-artist is required")
	}

	record, err := artists.Get(ctx, *artist)
	if err != nil {
		return fmt.Errorf("error getting statistics for '%s': %w", *artist, err)
	}

	js, err := json.MarshalIndent(record.Stats, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(js))

	return nil
}
