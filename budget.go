package openowl

import "context"

// DefaultContextTokens is the default token budget for question context.
const DefaultContextTokens = 8000

// EstimateTokensFromChars returns a conservative token estimate for a text
// of n characters, assuming roughly four characters per token.
func EstimateTokensFromChars(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 3) / 4
}

// SelectContext picks the subset of visits that fits within maxTokens.
//
// Visits are considered newest first (the order FindVisits returns them in)
// and selected greedily; a visit whose formatted text would push the total
// over budget stops the scan. The selection is returned oldest first so the
// prompt reads chronologically. A maxTokens of zero or less uses
// DefaultContextTokens.
func SelectContext(ctx context.Context, visits []*Visit, counter TokenCounter, maxTokens int) ([]*Visit, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultContextTokens
	}

	var selected []*Visit
	total := 0
	for _, v := range visits {
		text := FormatVisit(v)

		tokens := 0
		if counter != nil {
			n, err := counter.CountTokens(ctx, text)
			if err != nil {
				return nil, err
			}
			tokens = n
		} else {
			tokens = EstimateTokensFromChars(len(text))
		}

		if total+tokens > maxTokens {
			break
		}
		total += tokens
		selected = append(selected, v)
	}

	// Reverse into chronological order.
	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}

	return selected, nil
}
