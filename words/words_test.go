package words_test

import (
	"testing"

	"github.com/calmacx/lyrix/data"
	"github.com/calmacx/lyrix/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog", "dog"}, words.Tokenize("cat dog dog"))
	assert.Equal(t, []string{"dont", "stop", "me", "now"}, words.Tokenize("Don't stop\tme NOW!"))
	assert.Equal(t, []string{"one", "two"}, words.Tokenize("one\n\n   two"))
}

func TestTokenizeKeepsPunctuationChunks(t *testing.T) {
	// "!!!" is a word-shaped chunk even though nothing survives stripping
	assert.Equal(t, []string{"hey", "", "hey"}, words.Tokenize("hey !!! hey"))
	assert.Equal(t, []string{"", "oh"}, words.Tokenize("(2) oh"))
}

func TestTokenizeIsPure(t *testing.T) {
	text := "Is this the real life?\nIs this just fantasy?"
	first := words.Tokenize(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, words.Tokenize(text))
	}
}

func TestCount(t *testing.T) {
	wc := words.Count("A", []string{"cat", "dog", "dog"})
	assert.Equal(t, "A", wc.Song)
	assert.Equal(t, 3, wc.NWords)
	assert.Equal(t, data.Frequencies{
		{Word: "dog", Count: 2},
		{Word: "cat", Count: 1},
	}, wc.Words)
}

func TestCountIncludesEmptyTokens(t *testing.T) {
	wc := words.Count("A", words.Tokenize("la !!! la"))
	assert.Equal(t, 3, wc.NWords)
	assert.Equal(t, data.Frequencies{
		{Word: "la", Count: 2},
		{Word: "", Count: 1},
	}, wc.Words)
}

func TestCountProperties(t *testing.T) {
	tokens := words.Tokenize("mama just killed a man put a gun against his head")
	wc := words.Count("Bohemian Rhapsody", tokens)

	assert.Equal(t, len(tokens), wc.NWords)

	total := 0
	for _, f := range wc.Words {
		total += f.Count
	}
	assert.Equal(t, len(tokens), total)
}

func TestCountTieBreakIsFirstSeen(t *testing.T) {
	wc := words.Count("A", []string{"b", "a", "b", "a", "c"})
	assert.Equal(t, data.Frequencies{
		{Word: "b", Count: 2},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}, wc.Words)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := words.Summarize(12, nil)
	assert.Equal(t, 12, stats.NSongs)
	assert.Equal(t, 0, stats.NSongsWithLyrics)
	assert.Nil(t, stats.Words)
}

func TestSummarize(t *testing.T) {
	stats := words.Summarize(3, []data.WordCount{
		{Song: "A", NWords: 1},
		{Song: "B", NWords: 2},
	})

	assert.Equal(t, 3, stats.NSongs)
	assert.Equal(t, 2, stats.NSongsWithLyrics)
	require.NotNil(t, stats.Words)
	assert.Equal(t, 1.5, stats.Words.Mean)
	assert.Equal(t, 0.5, stats.Words.Std)
	assert.Equal(t, 0.25, stats.Words.Variance)
	assert.Equal(t, data.Extreme{NWords: 1, Song: "A"}, stats.Words.Min)
	assert.Equal(t, data.Extreme{NWords: 2, Song: "B"}, stats.Words.Max)
}

func TestSummarizeSingleSong(t *testing.T) {
	stats := words.Summarize(2, []data.WordCount{{Song: "A", NWords: 3}})

	assert.Equal(t, 2, stats.NSongs)
	assert.Equal(t, 1, stats.NSongsWithLyrics)
	require.NotNil(t, stats.Words)
	assert.Equal(t, 3.0, stats.Words.Mean)
	assert.Equal(t, 0.0, stats.Words.Std)
	assert.Equal(t, data.Extreme{NWords: 3, Song: "A"}, stats.Words.Min)
	assert.Equal(t, data.Extreme{NWords: 3, Song: "A"}, stats.Words.Max)
}

func TestSummarizeOrderInvariant(t *testing.T) {
	counts := []data.WordCount{
		{Song: "A", NWords: 10},
		{Song: "B", NWords: 20},
		{Song: "C", NWords: 30},
	}
	reversed := []data.WordCount{counts[2], counts[1], counts[0]}

	a, b := words.Summarize(3, counts), words.Summarize(3, reversed)
	assert.Equal(t, a.Words.Mean, b.Words.Mean)
	assert.Equal(t, a.Words.Std, b.Words.Std)
	assert.Equal(t, a.Words.Variance, b.Words.Variance)
	assert.Equal(t, a.Words.Min, b.Words.Min)
	assert.Equal(t, a.Words.Max, b.Words.Max)
}

func TestSummarizeTieBreakIsFirstSeen(t *testing.T) {
	stats := words.Summarize(2, []data.WordCount{
		{Song: "first", NWords: 5},
		{Song: "second", NWords: 5},
	})

	require.NotNil(t, stats.Words)
	assert.Equal(t, "first", stats.Words.Min.Song)
	assert.Equal(t, "first", stats.Words.Max.Song)
}
