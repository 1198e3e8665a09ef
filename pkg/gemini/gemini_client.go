package gemini

import (
	"FoodTracker-Backend/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type (
	Client interface {
		GenerateContent(ctx context.Context, req GenerateRequest) (string, error)
	}

	Config struct {
		APIKey  string
		Model   string
		BaseURL string
		Timeout time.Duration
	}

	GenerateRequest struct {
		Prompt      string
		Image       []byte
		MimeType    string
		Temperature float64
		MaxTokens   int
	}

	client struct {
		cfg        Config
		httpClient *http.Client
	}
)

func NewClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// GenerateContent sends one prompt, with an optional inline image, and returns the text
// of the first candidate.
func (c *client) GenerateContent(ctx context.Context, req GenerateRequest) (string, error) {
	if c.cfg.APIKey == "" || c.cfg.Model == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	parts := []map[string]interface{}{
		{"text": req.Prompt},
	}
	if len(req.Image) > 0 {
		mimeType := req.MimeType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(req.Image),
			},
		})
	}

	generationConfig := map[string]interface{}{
		"temperature": req.Temperature,
		"topP":        0.8,
		"topK":        40,
	}
	if req.MaxTokens > 0 {
		generationConfig["maxOutputTokens"] = req.MaxTokens
	}

	requestJSON, err := json.Marshal(map[string]interface{}{
		"contents":         []map[string]interface{}{{"parts": parts}},
		"generationConfig": generationConfig,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Header only: url.Error echoes the request URL.
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiProcessingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: %s - %s", classifyStatus(resp.StatusCode), resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGeminiProcessingFailed, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

func classifyStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrGeminiUnauthorized
	case http.StatusTooManyRequests:
		return domain.ErrGeminiRateLimited
	case http.StatusBadRequest:
		return domain.ErrGeminiBadRequest
	default:
		return domain.ErrGeminiProcessingFailed
	}
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject pulls the outermost {...} out of model output that may be wrapped in
// prose or markdown code fences. It returns false when no object is present.
func ExtractJSONObject(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return strings.TrimSpace(match), true
}
