package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable is returned when no TTS backend is configured.
var ErrUnavailable = errors.New("text-to-speech service not configured")

// Client converts passage text to playable audio through an OpenAI-compatible
// speech endpoint.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
	Voice      string
}

func NewClient(baseURL, apiKey, model, voice string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		Voice:      voice,
	}
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize returns a playable data URI for the given passage.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	if c.BaseURL == "" {
		return "", ErrUnavailable
	}

	jsonData, err := json.Marshal(speechRequest{
		Model:          c.Model,
		Input:          text,
		Voice:          c.Voice,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/speech", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TTS API error (status %d): %s", resp.StatusCode, string(body))
	}

	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(body), nil
}
