package data

// Songs are resolved from the artist's catalog. Lyrics is empty until a
// fetch succeeds; a song whose fetch failed keeps an empty Lyrics.
type Song struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	TrackNumber int64  `json:"track_number"`

	Lyrics string `json:"-"`
}
