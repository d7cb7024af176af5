package data

import (
	"bytes"
	"encoding/json"
)

// WordCount is the per-song tally for one song that produced at least one
// token. Songs with no lyrics have no WordCount at all.
type WordCount struct {
	Song   string      `json:"name"`
	NWords int         `json:"nwords"`
	Words  Frequencies `json:"words"`
}

// Frequencies is a word table ordered by descending count, ties by first
// appearance in the lyrics.
type Frequencies []WordFreq

type WordFreq struct {
	Word  string
	Count int
}

// MarshalJSON emits the table as a JSON object so the ordering stays visible
// in serialized output.
func (fs Frequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		word, err := json.Marshal(f.Word)
		if err != nil {
			return nil, err
		}
		count, err := json.Marshal(f.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(word)
		buf.WriteByte(':')
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
