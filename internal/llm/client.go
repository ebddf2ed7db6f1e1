package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"literacy-service/internal/models"
)

// ErrGeneration marks retryable gateway failures: network errors, non-200
// responses and malformed model output all wrap it.
var ErrGeneration = errors.New("challenge generation failed")

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second, // LLM responses can be slow
		},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// GenerateChallenge asks the model for one full challenge payload tailored to
// the student level. A non-empty topic steers the reading passage.
func (c *Client) GenerateChallenge(ctx context.Context, studentLevel int, topic string) (*models.ChallengePayload, error) {
	response, err := c.sendChatRequest(ctx, chatCompletionRequest{
		Model: c.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(studentLevel, topic)},
		},
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrGeneration)
	}

	payload, err := parsePayload(response.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return payload, nil
}

func (c *Client) sendChatRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" && c.APIKey != "none" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// parsePayload extracts the JSON object from the completion text and checks
// it against the active schema. Models wrap answers in code fences often
// enough that both forms are accepted.
func parsePayload(content string) (*models.ChallengePayload, error) {
	raw := strings.TrimSpace(content)
	if i := strings.Index(raw, "{"); i > 0 {
		raw = raw[i:]
	}
	if i := strings.LastIndex(raw, "}"); i >= 0 {
		raw = raw[:i+1]
	}

	var payload models.ChallengePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("Unparseable completion: %.200s", content)
		return nil, fmt.Errorf("malformed completion JSON: %v", err)
	}
	payload.SchemaVersion = models.ChallengeSchemaVersion
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("completion failed schema check: %v", err)
	}
	return &payload, nil
}
