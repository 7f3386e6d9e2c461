package llm

import "context"

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	caller
}

// NewOllamaClient creates an LLMClient that talks to an Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	return &ollamaClient{caller: newCaller(cfg, observer)}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Format  string        `json:"format,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.send)
}

func (c *ollamaClient) send(ctx context.Context, req GenerateRequest, temp float64, maxTok int) (*GenerateResponse, error) {
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}
	if req.JSONMode {
		body.Format = "json"
	}

	var resp ollamaResponse
	if err := c.postJSON(ctx, c.cfg.Endpoint+"/api/generate", nil, body, &resp); err != nil {
		return nil, err
	}
	return &GenerateResponse{Text: resp.Response, Model: resp.Model}, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/api/tags", nil)
}
