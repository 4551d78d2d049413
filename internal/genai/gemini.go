package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	googlegenai "google.golang.org/genai"

	"github.com/autoparts-agent/server/internal/agent/model"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

// GeminiConfig holds what is needed to build the Gemini-backed generator.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   model.GeneratorModelConfig
}

// GeminiGenerator implements Generator on top of the eino Gemini chat model.
// Every call is bounded by the configured timeout.
type GeminiGenerator struct {
	chatModel *gemini.ChatModel
	modelName string
	timeout   time.Duration
}

// NewGeminiGenerator creates the underlying genai client and chat model.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	clientCfg := &googlegenai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: googlegenai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := googlegenai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model.Model,
		Temperature: &cfg.Model.Temperature,
		MaxTokens:   &cfg.Model.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating generator model")
		return nil, fmt.Errorf("error creating generator model: %w", err)
	}

	timeout := time.Duration(cfg.Model.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GeminiGenerator{
		chatModel: chatModel,
		modelName: cfg.Model.Model,
		timeout:   timeout,
	}, nil
}

// Complete sends one system+user exchange and returns the reply text.
func (g *GeminiGenerator) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.chatModel.Generate(callCtx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userText),
	})
	if err != nil {
		logx.Warn().Err(err).Str("component", "genai").Str("model", g.modelName).Msg("generator call failed")
		return "", fmt.Errorf("generate: %w", err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("generate: empty response")
	}

	logUsageCost(g.modelName, out)

	return strings.TrimSpace(out.Content), nil
}

var _ Generator = (*GeminiGenerator)(nil)
