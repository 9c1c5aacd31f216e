// Package scoring turns check-in inputs into a mood rating, a health change
// and an emergency flag. Everything here is pure.
package scoring

import (
	"strings"

	"mindtree/internal/model"
)

const (
	goodThreshold     = 21
	moderateThreshold = 13

	// EmergencyHealth replaces the computed health whenever the emergency
	// keyword is present.
	EmergencyHealth = 7

	MinHealth = 0
	MaxHealth = 100
)

// emergencyKeyword is matched as a plain case-insensitive substring, so it
// also fires on "died", "diet" and "diesel". Existing records depend on it.
const emergencyKeyword = "die"

// Result is the outcome of scoring one check-in.
type Result struct {
	RawScore      int
	AdjustedScore int
	Mood          model.Mood
	Delta         int
	Emergency     bool
}

func SentimentBonus(s model.Sentiment) int {
	switch s {
	case model.SentimentPositive:
		return 2
	case model.SentimentNegative:
		return -2
	default:
		return 0
	}
}

func AdjustedScore(raw int, s model.Sentiment) int {
	return raw + SentimentBonus(s)
}

func ClassifyMood(adjusted int) model.Mood {
	switch {
	case adjusted >= goodThreshold:
		return model.MoodGood
	case adjusted >= moderateThreshold:
		return model.MoodModerate
	default:
		return model.MoodLow
	}
}

func HealthDelta(m model.Mood) int {
	switch m {
	case model.MoodGood:
		return 5
	case model.MoodModerate:
		return 1
	default:
		return -5
	}
}

func IsEmergency(text string) bool {
	return strings.Contains(strings.ToLower(text), emergencyKeyword)
}

// Evaluate scores one check-in.
func Evaluate(r model.Ratings, s model.Sentiment, text string) Result {
	raw := r.Sum()
	adjusted := AdjustedScore(raw, s)
	mood := ClassifyMood(adjusted)
	return Result{
		RawScore:      raw,
		AdjustedScore: adjusted,
		Mood:          mood,
		Delta:         HealthDelta(mood),
		Emergency:     IsEmergency(text),
	}
}

// NextHealth applies r to the current health. An emergency overrides the
// delta instead of combining with it.
func (r Result) NextHealth(current int) int {
	if r.Emergency {
		return EmergencyHealth
	}
	return Clamp(current + r.Delta)
}

func Clamp(h int) int {
	return max(MinHealth, min(MaxHealth, h))
}
