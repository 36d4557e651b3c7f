package generator

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

	"dream-insight/internal/config"
)

// Client produces a free-form interpretation for a dream text. Any error is
// treated by callers as "generator unavailable"; it is never surfaced to the
// end user.
type Client interface {
	Generate(ctx context.Context, dreamText string) (string, error)
}

const promptTemplate = "Ты психолог-интерпретатор снов. Проанализируй этот сон с точки зрения психологии (не эзотерики): %s"

type ollamaClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *log.Logger
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func NewOllamaClient(cfg config.GeneratorConfig, logger *log.Logger) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &ollamaClient{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *ollamaClient) Generate(ctx context.Context, dreamText string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil generator client")
	}
	endpoint := c.baseURL + "/api/generate"

	body := generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, dreamText),
		Stream: false,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Generator] generate failed endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return "", fmt.Errorf("generator failed: status=%d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode generator response: %w", err)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", errors.New("generator returned empty response")
	}
	return out.Response, nil
}
