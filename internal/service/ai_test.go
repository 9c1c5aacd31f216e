package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtree/internal/config"
	"mindtree/internal/model"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, reply string, status int, seen *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		if status != http.StatusOK {
			http.Error(w, "boom", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClientComplete(t *testing.T) {
	var seen chatRequest
	srv := newChatServer(t, "Positive.", http.StatusOK, &seen)
	c := NewOpenAIClient(srv.URL+"/", "test-key", "test-model")

	out, err := c.Complete(context.Background(), "sys", "hello", 0)
	require.NoError(t, err)
	assert.Equal(t, "Positive.", out)
	assert.Equal(t, "test-model", seen.Model)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Equal(t, "hello", seen.Messages[1].Content)
}

func TestOpenAIClientErrorStatus(t *testing.T) {
	srv := newChatServer(t, "", http.StatusInternalServerError, nil)
	c := NewOpenAIClient(srv.URL, "test-key", "m")

	_, err := c.Complete(context.Background(), "", "hello", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm status 500")
}

func TestAIServiceClassify(t *testing.T) {
	srv := newChatServer(t, "  NEGATIVE\n", http.StatusOK, nil)
	ai := NewAIService(NewOpenAIClient(srv.URL, "test-key", "m"))

	s, err := ai.Classify(context.Background(), "awful day")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, s)
}

func TestAIServiceClassifyOddReplyIsNeutral(t *testing.T) {
	srv := newChatServer(t, "It is hard to say.", http.StatusOK, nil)
	ai := NewAIService(NewOpenAIClient(srv.URL, "test-key", "m"))

	s, err := ai.Classify(context.Background(), "hmm")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNeutral, s)
}

func TestAIServiceGeneratePromptCarriesInputs(t *testing.T) {
	var seen chatRequest
	srv := newChatServer(t, "  You did well today.  ", http.StatusOK, &seen)
	ai := NewAIService(NewOpenAIClient(srv.URL, "test-key", "m"))

	msg, err := ai.Generate(context.Background(), 17, model.SentimentPositive, "walked the dog", model.MoodModerate)
	require.NoError(t, err)
	assert.Equal(t, "You did well today.", msg)

	require.Len(t, seen.Messages, 1)
	prompt := seen.Messages[0].Content
	assert.Contains(t, prompt, "MCQ Score: 17/20")
	assert.Contains(t, prompt, "Free Text Sentiment: positive")
	assert.Contains(t, prompt, `"walked the dog"`)
	assert.Contains(t, prompt, `overall mood: "Moderate"`)
}

func TestAIServiceGenerateEmptyReply(t *testing.T) {
	srv := newChatServer(t, "   ", http.StatusOK, nil)
	ai := NewAIService(NewOpenAIClient(srv.URL, "test-key", "m"))

	msg, err := ai.Generate(context.Background(), 10, model.SentimentNeutral, "", model.MoodLow)
	require.NoError(t, err)
	assert.Equal(t, "Thank you for checking in. Your entry has been logged.", msg)
}

func TestAIServiceGenerateError(t *testing.T) {
	srv := newChatServer(t, "", http.StatusBadGateway, nil)
	ai := NewAIService(NewOpenAIClient(srv.URL, "test-key", "m"))

	_, err := ai.Generate(context.Background(), 10, model.SentimentNeutral, "", model.MoodLow)
	assert.Error(t, err)
}

func TestMockLLM(t *testing.T) {
	ai := NewAIService(NewMockLLM())
	ctx := context.Background()

	s, err := ai.Classify(ctx, "I feel great")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, s)

	s, err = ai.Classify(ctx, "so lonely")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, s)

	s, err = ai.Classify(ctx, "went to work")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNeutral, s)

	msg, err := ai.Generate(ctx, 12, model.SentimentNeutral, "", model.MoodLow)
	require.NoError(t, err)
	assert.NotEmpty(t, msg)
}

func TestNewLLMProviders(t *testing.T) {
	ctx := context.Background()

	l, err := NewLLM(ctx, config.LLMConfig{Provider: "mock"})
	require.NoError(t, err)
	assert.IsType(t, &MockLLM{}, l)

	l, err = NewLLM(ctx, config.LLMConfig{Provider: "openai", BaseURL: "http://x", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, l)

	_, err = NewLLM(ctx, config.LLMConfig{Provider: "nope"})
	assert.Error(t, err)
}
