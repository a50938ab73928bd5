// Package openai implements question answering over visit history using
// any OpenAI-compatible chat endpoint, including local servers such as
// Ollama or llama.cpp.
package openai

import (
	"context"
	"fmt"

	"github.com/ranjeethpt/openowl"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// systemPrompt steers the model toward grounded answers.
const systemPrompt = "You are a helpful assistant answering questions about pages the user has visited in their browser. Answer based only on the visit records provided. If the answer is not in the records, say so."

// Client is the minimal interface needed to call a chat model. It mirrors
// the CreateChatCompletion method of *openai.Client so that any
// OpenAI-compatible or local backend can be adapted, and tests can stub it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Asker implements openowl.Asker at compile time.
var _ openowl.Asker = (*Asker)(nil)

// Asker implements openowl.Asker over an OpenAI-compatible endpoint.
type Asker struct {
	client Client
	model  string
}

// AskerOption configures an Asker.
type AskerOption func(*Asker)

// WithModel sets the chat model name. Defaults to DefaultModel.
func WithModel(model string) AskerOption {
	return func(a *Asker) {
		if model != "" {
			a.model = model
		}
	}
}

// NewAsker creates a new Asker using the given client.
func NewAsker(client Client, opts ...AskerOption) *Asker {
	a := &Asker{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewClient builds an *openai.Client for apiKey. A non-empty baseURL points
// the client at an alternative OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Ask answers a natural language question using the given visits as context.
func (a *Asker) Ask(ctx context.Context, question string, visits []*openowl.Visit) (string, error) {
	if question == "" {
		return "", openowl.Errorf(openowl.EINVALID, "question required")
	}
	if len(visits) == 0 {
		return "", openowl.Errorf(openowl.ENOTFOUND, "no visits to answer from")
	}

	temp := float32(0.4)
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: temp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(visits, question)},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", openowl.Errorf(openowl.EINTERNAL, "chat endpoint returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildUserPrompt builds the user prompt containing visit records and the
// question.
func BuildUserPrompt(visits []*openowl.Visit, question string) string {
	return fmt.Sprintf("Visited pages:\n\n%s\n\nQuestion: %s", openowl.FormatVisits(visits), question)
}
