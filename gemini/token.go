package gemini

import (
	"context"

	"github.com/ranjeethpt/openowl"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ openowl.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures text against a model's token budget. Counting
// runs on a local tokenizer, so it costs no API call.
type TokenCounter struct {
	local *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the local tokenizer vocabulary for model. It
// fails for models without a published vocabulary.
func NewTokenCounter(model string) (*TokenCounter, error) {
	local, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{local: local}, nil
}

// CountTokens reports how many tokens text occupies. Empty text is zero
// tokens without touching the tokenizer.
func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	content := genai.NewContentFromText(text, "user")
	res, err := c.local.CountTokens([]*genai.Content{content}, nil)
	if err != nil {
		return 0, err
	}

	return int(res.TotalTokens), nil
}
