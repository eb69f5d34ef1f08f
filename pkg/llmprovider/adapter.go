package llmprovider

import (
	"context"

	"skill-tracking-assistant/pkg/deepseek"
	"skill-tracking-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text}},
		}
	}

	for i, msg := range req.Messages {
		role := msg.Role
		// Gemini uses "model" for assistant turns.
		if role == "assistant" {
			role = "model"
		}
		geminiReq.Messages[i] = gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Text}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	text := ""
	if len(resp.Content.Parts) > 0 {
		text = resp.Content.Parts[0].Text
	}

	return &Response{
		Text:         text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]deepseek.Message, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil {
		messages = append(messages, deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Text,
		})
	}

	for _, msg := range req.Messages {
		messages = append(messages, deepseek.Message{
			Role:    msg.Role,
			Content: msg.Text,
		})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	text := ""
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Text:         text,
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}
