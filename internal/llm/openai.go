package llm

import (
	"context"
	"fmt"
)

// openAIClient implements LLMClient against an OpenAI-compatible
// /v1/chat/completions endpoint.
type openAIClient struct {
	caller
}

// NewOpenAIClient creates an LLMClient for an OpenAI-compatible server.
// cfg.Endpoint is the API base, e.g. "https://api.openai.com".
func NewOpenAIClient(cfg LLMConfig, observer Observer) LLMClient {
	return &openAIClient{caller: newCaller(cfg, observer)}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.send)
}

func (c *openAIClient) send(ctx context.Context, req GenerateRequest, temp float64, maxTok int) (*GenerateResponse, error) {
	body := chatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: temp,
		MaxTokens:   maxTok,
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.UserPrompt})
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var resp chatCompletionResponse
	if err := c.postJSON(ctx, c.cfg.Endpoint+"/v1/chat/completions", c.authHeaders(), body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", ErrInvalidOutput)
	}
	return &GenerateResponse{Text: resp.Choices[0].Message.Content, Model: resp.Model}, nil
}

func (c *openAIClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/v1/models", c.authHeaders())
}

func (c *openAIClient) authHeaders() map[string]string {
	if c.cfg.APIKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}
