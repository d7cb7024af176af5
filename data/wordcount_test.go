package data_test

import (
	"encoding/json"
	"testing"

	"github.com/calmacx/lyrix/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequenciesJSONKeepsTableOrder(t *testing.T) {
	js, err := json.Marshal(data.Frequencies{
		{Word: "dog", Count: 2},
		{Word: "cat", Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"dog":2,"cat":1}`, string(js))
}

func TestFrequenciesJSONEmptyWord(t *testing.T) {
	// punctuation-only chunks tally under the empty string, which is a
	// legal JSON key
	js, err := json.Marshal(data.Frequencies{
		{Word: "la", Count: 2},
		{Word: "", Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"la":2,"":1}`, string(js))
}

func TestFrequenciesJSONEmptyTable(t *testing.T) {
	js, err := json.Marshal(data.Frequencies{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(js))
}

func TestStatisticsJSONOmitsWordsWhenAbsent(t *testing.T) {
	js, err := json.Marshal(data.Statistics{NSongs: 3})
	require.NoError(t, err)
	assert.Equal(t, `{"nsongs":3,"nsongs_with_lyrics":0}`, string(js))
}

func TestStatisticsJSONIncludesWordsWhenPresent(t *testing.T) {
	js, err := json.Marshal(data.Statistics{
		NSongs:           2,
		NSongsWithLyrics: 1,
		Words: &data.WordNumbers{
			Mean: 3, Std: 0, Variance: 0,
			Min: data.Extreme{NWords: 3, Song: "A"},
			Max: data.Extreme{NWords: 3, Song: "A"},
		},
	})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(js, &decoded))
	require.Contains(t, decoded, "words")
	assert.Contains(t, string(decoded["words"]), `"average_number_of_words":3`)
	assert.Contains(t, string(decoded["words"]), `"song_name":"A"`)
}
