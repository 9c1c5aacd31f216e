package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSentiment(t *testing.T) {
	cases := map[string]Sentiment{
		"positive":            SentimentPositive,
		"Positive.":           SentimentPositive,
		"  NEGATIVE\n":        SentimentNegative,
		"\"negative\"":        SentimentNegative,
		"neutral":             SentimentNeutral,
		"":                    SentimentNeutral,
		"mostly positive":     SentimentNeutral,
		"I cannot determine.": SentimentNeutral,
		// wordy replies are not scanned for a label
		"The sentiment is negative": SentimentNeutral,
		"Sentiment: positive":       SentimentNeutral,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSentiment(in), "input %q", in)
	}
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	assert.Empty(t, d.Entries)
	assert.NotNil(t, d.Entries)
	assert.Equal(t, 50, d.CurrentHealth)
}

func TestCloneDoesNotAlias(t *testing.T) {
	d := Document{Entries: []CheckinEntry{{Date: "2026-01-01"}}, CurrentHealth: 60}
	c := d.Clone()
	c.Entries[0].Date = "changed"
	c.Entries = append(c.Entries, CheckinEntry{})

	assert.Equal(t, "2026-01-01", d.Entries[0].Date)
	assert.Len(t, d.Entries, 1)
	assert.Equal(t, 60, c.CurrentHealth)
}

func TestRatingsSum(t *testing.T) {
	assert.Equal(t, 14, Ratings{Mood: 5, Anxiety: 3, Motivation: 4, Connection: 2}.Sum())
}
