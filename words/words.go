package words

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/calmacx/lyrix/data"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonLetter  = regexp.MustCompile(`[^a-zA-Z]+`)
)

// Tokenize splits text on runs of whitespace, lower-cases each chunk, and
// strips every rune that is not an ASCII letter. A chunk that was all
// punctuation comes out as an empty string and is kept: it still counts as a
// word.
func Tokenize(text string) []string {
	chunks := whitespace.Split(text, -1)
	tokens := make([]string, len(chunks))
	for i, chunk := range chunks {
		tokens[i] = nonLetter.ReplaceAllString(strings.ToLower(chunk), "")
	}
	return tokens
}

// Count tallies token frequencies for one song. The resulting table is
// ordered by descending count; ties keep first-appearance order.
func Count(song string, tokens []string) data.WordCount {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	table := make(data.Frequencies, len(order))
	for i, word := range order {
		table[i] = data.WordFreq{Word: word, Count: counts[word]}
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	return data.WordCount{Song: song, NWords: len(tokens), Words: table}
}

// Summarize computes catalog-wide statistics from the per-song tallies.
// nSongs is the size of the resolved catalog, which can be larger than the
// number of songs that produced lyrics. With no tallies at all, the numeric
// block is left out entirely.
//
// Mean, std, and variance are population values, rounded to two decimal
// places. Min and max report the first song to reach the extreme value.
func Summarize(nSongs int, counts []data.WordCount) data.Statistics {
	stats := data.Statistics{
		NSongs:           nSongs,
		NSongsWithLyrics: len(counts),
	}
	if len(counts) == 0 {
		return stats
	}

	min, max := counts[0], counts[0]
	var sum float64
	for _, wc := range counts {
		sum += float64(wc.NWords)
		if wc.NWords < min.NWords {
			min = wc
		}
		if wc.NWords > max.NWords {
			max = wc
		}
	}
	mean := sum / float64(len(counts))

	var sumSquares float64
	for _, wc := range counts {
		d := float64(wc.NWords) - mean
		sumSquares += d * d
	}
	variance := sumSquares / float64(len(counts))

	stats.Words = &data.WordNumbers{
		Mean:     round2(mean),
		Std:      round2(math.Sqrt(variance)),
		Variance: round2(variance),
		Min:      data.Extreme{NWords: min.NWords, Song: min.Song},
		Max:      data.Extreme{NWords: max.NWords, Song: max.Song},
	}
	return stats
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
