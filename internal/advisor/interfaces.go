package advisor

import "context"

// Client is the contract of the external text-generation service. The only
// guarantee is "returns text or fails"; callers decide what a failure means.
type Client interface {
	// Generate submits the prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model reports the generative model identifier used by this client,
	// for interaction logging.
	Model() string
}
