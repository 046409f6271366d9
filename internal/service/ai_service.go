package service

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/pkg/tracing"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Completer 文本生成接口，便于替换和测试
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

var ErrAINotConfigured = errors.New("ai provider is not configured")

type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *resty.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	s := &AIService{}
	s.UpdateConfig(cfg)
	return s
}

// UpdateConfig 配置热更新时替换客户端
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	s.mu.Lock()
	s.config = cfg
	s.client = client
	s.mu.Unlock()
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.mu.RLock()
	cfg, client := s.config, s.client
	s.mu.RUnlock()

	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return "", ErrAINotConfigured
	}

	ctx, span := tracing.StartSpan(ctx, "ai.complete", attribute.String("ai.model", cfg.Model))
	defer span.End()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	var result ChatCompletionResponse
	resp, err := client.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if resp.IsError() {
		msg := resp.String()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		err := fmt.Errorf("AI API error (status %d): %s", resp.StatusCode(), msg)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("AI returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// extractJSON 去掉模型回复外层的 markdown 代码块
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if i := strings.Index(text, "\n"); i >= 0 {
			text = text[i+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	start := strings.IndexAny(text, "[{")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}
