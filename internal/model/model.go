package model

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment decodes a free-form classifier reply. Anything that is not
// exactly one of the three labels, after trimming case and punctuation,
// decodes to neutral.
func ParseSentiment(s string) Sentiment {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, " \t\r\n.,;:!?\"'`*")
	switch Sentiment(s) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

type Mood string

const (
	MoodGood     Mood = "Good"
	MoodModerate Mood = "Moderate"
	MoodLow      Mood = "Low"
)

// DefaultHealth is the health score of a store that has never been written.
const DefaultHealth = 50

// CheckinEntry is one recorded check-in. Entries are append-only.
type CheckinEntry struct {
	Date      string    `json:"date"`
	MCQScore  int       `json:"mcq_score"`
	Sentiment Sentiment `json:"sentiment"`
	Mood      Mood      `json:"mood"`
	FreeText  string    `json:"free_text"`
	Feedback  string    `json:"feedback"`
}

// Document is the whole persisted state: chronological entries plus the
// running health score.
type Document struct {
	Entries       []CheckinEntry `json:"entries"`
	CurrentHealth int            `json:"current_health"`
}

func NewDocument() Document {
	return Document{Entries: []CheckinEntry{}, CurrentHealth: DefaultHealth}
}

// Clone returns a copy whose entry slice does not alias d's.
func (d Document) Clone() Document {
	entries := make([]CheckinEntry, len(d.Entries))
	copy(entries, d.Entries)
	return Document{Entries: entries, CurrentHealth: d.CurrentHealth}
}

// Ratings are the four slider values of a check-in, nominally 1-5 each.
type Ratings struct {
	Mood       int
	Anxiety    int
	Motivation int
	Connection int
}

func (r Ratings) Sum() int {
	return r.Mood + r.Anxiety + r.Motivation + r.Connection
}

type CheckinRequest struct {
	Mood       *int    `json:"mood" binding:"required"`
	Anxiety    *int    `json:"anxiety" binding:"required"`
	Motivation *int    `json:"motivation" binding:"required"`
	Connection *int    `json:"connection" binding:"required"`
	FreeText   *string `json:"free_text" binding:"required"`
}

type CheckinResponse struct {
	MoodRating     Mood   `json:"mood_rating"`
	Feedback       string `json:"feedback"`
	NewHealthScore int    `json:"new_health_score"`
	IsEmergency    bool   `json:"is_emergency"`
}

type TreeHealthResponse struct {
	HealthScore int    `json:"health_score"`
	ImageFile   string `json:"image_file"`
	Tier        string `json:"tier"`
}
