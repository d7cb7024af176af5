package data

// Statistics summarizes word counts across an artist's catalog. Words is nil
// when no song produced lyrics, and is omitted from JSON rather than
// zero-filled.
type Statistics struct {
	NSongs           int          `json:"nsongs"`
	NSongsWithLyrics int          `json:"nsongs_with_lyrics"`
	Words            *WordNumbers `json:"words,omitempty"`
}

type WordNumbers struct {
	Mean     float64 `json:"average_number_of_words"`
	Std      float64 `json:"std_number_of_words"`
	Variance float64 `json:"variance_number_of_words"`
	Min      Extreme `json:"min"`
	Max      Extreme `json:"max"`
}

// Extreme identifies the song achieving a minimum or maximum word count.
type Extreme struct {
	NWords int    `json:"number_of_words"`
	Song   string `json:"song_name"`
}
