package openowl

import "context"

// Asker provides natural language question answering over visit history.
type Asker interface {
	// Ask answers a question using the given visits as context.
	// Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string, visits []*Visit) (string, error)
}
