package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is everything lyrix reads from the environment. The four spotify
// values have no defaults: startup fails without them.
type Config struct {
	SpotifyAPIURL       string `envconfig:"SPOTIFY_API_URL" required:"true"`
	SpotifyAuthURL      string `envconfig:"SPOTIFY_AUTH_URL" required:"true"`
	SpotifyClientID     string `envconfig:"SPOTIFY_CLIENT_ID" required:"true"`
	SpotifyClientSecret string `envconfig:"SPOTIFY_CLIENT_SECRET" required:"true"`

	LyricsAPIURL string `envconfig:"LYRICS_API_URL" default:"https://api.lyrics.ovh"`
	Workers      int    `envconfig:"LYRIX_WORKERS" default:"200"`
}

// Load reads a .env file if one is present, then the process environment.
// Real environment variables win over .env values.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}
