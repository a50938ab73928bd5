// Package gemini implements question answering over visit history using
// Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/ranjeethpt/openowl"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements openowl.Asker at compile time.
var _ openowl.Asker = (*Asker)(nil)

// Asker implements openowl.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// AskerOption configures an Asker.
type AskerOption func(*Asker)

// WithModel sets the Gemini model name. Defaults to DefaultModel.
func WithModel(model string) AskerOption {
	return func(a *Asker) {
		if model != "" {
			a.model = model
		}
	}
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, opts ...AskerOption) *Asker {
	a := &Asker{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers a natural language question using the given visits as context.
func (a *Asker) Ask(ctx context.Context, question string, visits []*openowl.Visit) (string, error) {
	if question == "" {
		return "", openowl.Errorf(openowl.EINVALID, "question required")
	}
	if len(visits) == 0 {
		return "", openowl.Errorf(openowl.ENOTFOUND, "no visits to answer from")
	}

	prompt := BuildUserPrompt(visits, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", openowl.Errorf(openowl.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about pages the user has visited in their browser. Answer based only on the visit records provided. If the answer is not in the records, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing visit records and the
// question.
func BuildUserPrompt(visits []*openowl.Visit, question string) string {
	var sb strings.Builder
	sb.WriteString("<visits>\n")
	for i, v := range visits {
		title := v.Title
		if title == "" {
			title = v.URL
		}
		sb.WriteString("<visit>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<url>%s</url>\n", v.URL)
		if !v.VisitedAt.IsZero() {
			fmt.Fprintf(&sb, "<visited>%s</visited>\n", v.VisitedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", v.Content)
		sb.WriteString("</visit>\n")
	}
	sb.WriteString("</visits>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
