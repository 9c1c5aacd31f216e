package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mindtree/internal/logger"
	"mindtree/internal/model"
	"mindtree/internal/scoring"
	"mindtree/internal/store"
)

// ErrPersist marks a check-in that was scored but could not be saved.
var ErrPersist = errors.New("check-in not saved")

const dateLayout = "2006-01-02"

type CheckinInput struct {
	Ratings  model.Ratings
	FreeText string
}

type CheckinResult struct {
	Mood        model.Mood
	Feedback    string
	NewHealth   int
	IsEmergency bool
	Entry       model.CheckinEntry
}

type TreeHealth struct {
	Health int
	Tier   scoring.Tier
}

// CheckinService runs the check-in pipeline: classify, score, generate
// feedback, then update the stored document.
type CheckinService struct {
	classifier SentimentClassifier
	generator  FeedbackGenerator
	store      store.DocumentStore
	timeout    time.Duration
	now        func() time.Time

	// mu serializes the load-modify-save of the document.
	mu sync.Mutex
}

// NewCheckinService wires the pipeline. A nil classifier or generator makes
// check-ins score as neutral with the plain logged message, without any
// upstream call.
func NewCheckinService(classifier SentimentClassifier, generator FeedbackGenerator, st store.DocumentStore, timeout time.Duration) *CheckinService {
	return &CheckinService{
		classifier: classifier,
		generator:  generator,
		store:      st,
		timeout:    timeout,
		now:        time.Now,
	}
}

// SetClock replaces the time source used to date entries.
func (s *CheckinService) SetClock(now func() time.Time) { s.now = now }

func (s *CheckinService) Checkin(ctx context.Context, in CheckinInput) (*CheckinResult, error) {
	log := logger.From(ctx)
	if !ratingsInRange(in.Ratings) {
		log.Warn("checkin.ratings out of range, scoring as given", "ratings", in.Ratings)
	}

	sentiment := s.classify(ctx, in.FreeText)
	result := scoring.Evaluate(in.Ratings, sentiment, in.FreeText)
	feedback := s.feedback(ctx, result.RawScore, sentiment, in.FreeText, result.Mood)

	entry := model.CheckinEntry{
		Date:      s.now().Format(dateLayout),
		MCQScore:  result.RawScore,
		Sentiment: sentiment,
		Mood:      result.Mood,
		FreeText:  in.FreeText,
		Feedback:  feedback,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Load(ctx)
	previous := doc.CurrentHealth
	doc.CurrentHealth = result.NextHealth(previous)
	doc.Entries = append(doc.Entries, entry)
	if err := s.store.Save(ctx, doc); err != nil {
		log.Error("checkin.save failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	log.Info("checkin.saved",
		"mcq_score", result.RawScore,
		"adjusted_score", result.AdjustedScore,
		"sentiment", sentiment,
		"mood", result.Mood,
		"health_before", previous,
		"health_after", doc.CurrentHealth,
		"emergency", result.Emergency,
	)

	return &CheckinResult{
		Mood:        result.Mood,
		Feedback:    feedback,
		NewHealth:   doc.CurrentHealth,
		IsEmergency: result.Emergency,
		Entry:       entry,
	}, nil
}

// classify resolves blank text, or a service built without a classifier, to
// neutral.
func (s *CheckinService) classify(ctx context.Context, text string) model.Sentiment {
	if s.classifier == nil || strings.TrimSpace(text) == "" {
		return model.SentimentNeutral
	}

	ctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	sentiment, err := s.classifier.Classify(ctx, text)
	if err != nil {
		logger.From(ctx).Warn("checkin.classify fallback to neutral", "err", err)
		return model.SentimentNeutral
	}
	switch sentiment {
	case model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative:
		return sentiment
	default:
		return model.SentimentNeutral
	}
}

func (s *CheckinService) feedback(ctx context.Context, rawScore int, sentiment model.Sentiment, text string, mood model.Mood) string {
	if s.generator == nil {
		return emptyFeedbackMessage
	}
	ctx, cancel := s.upstreamContext(ctx)
	defer cancel()

	msg, err := s.generator.Generate(ctx, rawScore, sentiment, text, mood)
	if err != nil {
		logger.From(ctx).Warn("checkin.feedback fallback", "err", err)
		return fmt.Sprintf("%s (Error: %v)", fallbackFeedbackMessage, err)
	}
	return msg
}

func (s *CheckinService) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// TreeHealth reads the current health from the store on every call.
func (s *CheckinService) TreeHealth(ctx context.Context) TreeHealth {
	h := s.store.Load(ctx).CurrentHealth
	return TreeHealth{Health: h, Tier: scoring.TreeTier(h)}
}

// History returns the stored document.
func (s *CheckinService) History(ctx context.Context) model.Document {
	return s.store.Load(ctx)
}

func ratingsInRange(r model.Ratings) bool {
	for _, v := range []int{r.Mood, r.Anxiety, r.Motivation, r.Connection} {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}
