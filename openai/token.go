package openai

import (
	"context"
	"math"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.TokenCounter = (*TokenCounter)(nil)

// TokenCounter estimates token counts from character counts using a
// conservative heuristic (~4 chars per token in English). OpenAI-compatible
// endpoints don't expose a local tokenizer, so an estimate keeps budget
// selection working across providers.
type TokenCounter struct{}

// NewTokenCounter creates a new estimating TokenCounter.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{}
}

// CountTokens estimates the number of tokens in the given text.
// The result is always at least 1 when text is non-empty.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	return int(math.Ceil(float64(len(text)) / 4.0)), nil
}
