package service

import (
	"context"
	"fmt"
	"strings"

	"mindtree/internal/model"
)

const sentimentInstruction = "Analyze the user's text sentiment and respond with one word ONLY: positive, neutral, or negative."

const (
	emptyFeedbackMessage    = "Thank you for checking in. Your entry has been logged."
	fallbackFeedbackMessage = "Sorry, there was an error generating feedback. Your check-in is still saved."
)

const feedbackPrompt = `Act as a compassionate and supportive mental health companion.
A user has just completed their daily check-in. Here is their data:
- MCQ Score: %d/20
- Free Text Sentiment: %s
- Their private thoughts: "%s"
- Their calculated overall mood: "%s"

Please write a thoughtful, personalized feedback message of about 150-200 words.
Speak directly to the user in a warm and understanding tone.

- If the mood is "Low", be extra supportive. Validate their feelings, show empathy for what they wrote in their thoughts, and perhaps offer one gentle, simple suggestion (like getting some fresh air, listening to a favorite song, or just being kind to themselves).
- If the mood is "Moderate", acknowledge their day. Reflect on their free text and encourage them to keep going.
- If the mood is "Good", celebrate this with them! Reinforce their positive state and encourage them to savor it.

Do not sound like a robot. Be human and supportive.`

type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (model.Sentiment, error)
}

type FeedbackGenerator interface {
	Generate(ctx context.Context, rawScore int, sentiment model.Sentiment, freeText string, mood model.Mood) (string, error)
}

// AIService implements both collaborators on top of one LLM.
type AIService struct {
	llm LLM
}

func NewAIService(llm LLM) *AIService {
	return &AIService{llm: llm}
}

func (s *AIService) Classify(ctx context.Context, text string) (model.Sentiment, error) {
	reply, err := s.llm.Complete(ctx, sentimentInstruction, text, 0)
	if err != nil {
		return model.SentimentNeutral, fmt.Errorf("classify sentiment: %w", err)
	}
	return model.ParseSentiment(reply), nil
}

func (s *AIService) Generate(ctx context.Context, rawScore int, sentiment model.Sentiment, freeText string, mood model.Mood) (string, error) {
	prompt := fmt.Sprintf(feedbackPrompt, rawScore, sentiment, freeText, mood)
	reply, err := s.llm.Complete(ctx, "", prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}
	if reply = strings.TrimSpace(reply); reply == "" {
		return emptyFeedbackMessage, nil
	}
	return reply, nil
}

var (
	_ SentimentClassifier = (*AIService)(nil)
	_ FeedbackGenerator   = (*AIService)(nil)
)
