package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// MaxTopics is the number of topics kept from an analysis.
const MaxTopics = 3

const sentimentPrompt = `Analyze the sentiment of the following customer feedback.
Return a JSON object with three keys:
1. "sentiment": a string that must be one of "positive", "negative", or "neutral".
2. "sentiment_score": a number from -1.0 to 1.0.
3. "topics": an array of up to 3 main topic strings.
Feedback: %q`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type rawSentiment struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"sentiment_score"`
	Topics    []string `json:"topics"`
}

type openAISentimentAnalyzer struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewSentimentAnalyzer returns an analyzer backed by an OpenAI-compatible
// chat completions API.
func NewSentimentAnalyzer(cfg config.SentimentAdapter, log *logger.Logger) (SentimentAnalyzer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: sentiment api key is empty", ErrNotConfigured)
	}

	client := utils.NewHTTPClient(cfg.URL, cfg.Timeout)
	client.SetAuthToken(cfg.APIKey)

	model := cfg.Model
	if model == "" {
		model = config.DefaultSentimentModel
	}

	return &openAISentimentAnalyzer{client: client, model: model, logger: log}, nil
}

func (a *openAISentimentAnalyzer) Analyze(ctx context.Context, comment string) (models.SentimentResult, error) {
	body := chatCompletionRequest{
		Model:          a.model,
		Messages:       []chatMessage{{Role: "user", Content: fmt.Sprintf(sentimentPrompt, comment)}},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	var completion chatCompletionResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		return models.SentimentResult{}, requestError("sentiment request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SentimentResult{}, err
	}

	if len(completion.Choices) == 0 {
		return models.SentimentResult{}, fmt.Errorf("%w: no choices in completion", ErrInvalidResponse)
	}

	var raw rawSentiment
	if err = json.Unmarshal([]byte(completion.Choices[0].Message.Content), &raw); err != nil {
		return models.SentimentResult{}, fmt.Errorf("%w: decode sentiment: %w", ErrInvalidResponse, err)
	}

	return normalizeSentiment(raw)
}

// normalizeSentiment lowercases and validates the label, clamps the score to
// [-1, 1] and keeps at most MaxTopics non-empty topics.
func normalizeSentiment(raw rawSentiment) (models.SentimentResult, error) {
	label := models.Sentiment(strings.ToLower(strings.TrimSpace(raw.Sentiment)))
	switch label {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return models.SentimentResult{}, fmt.Errorf("%w: unknown sentiment %q", ErrInvalidResponse, raw.Sentiment)
	}

	score := raw.Score
	if math.IsNaN(score) {
		score = 0
	}
	score = math.Max(-1, math.Min(1, score))

	topics := make([]string, 0, MaxTopics)
	for _, topic := range raw.Topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == MaxTopics {
			break
		}
	}

	return models.SentimentResult{Sentiment: label, Score: score, Topics: topics}, nil
}
