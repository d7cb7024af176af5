package data

// Artist is the materialized record for one artist name. It is built at most
// once per name and must not be mutated after that.
type Artist struct {
	Name       string          `json:"name"`
	Songs      map[string]Song `json:"songs"`
	WordCounts []WordCount     `json:"word_counts"`
	Stats      Statistics      `json:"statistics"`
}
