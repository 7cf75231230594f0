// Package vision abstracts the upstream image-analysis model so handlers can
// be wired to a fake in tests and the real client stays a constructed
// dependency with process lifetime.
package vision

import "context"

type Engine interface {
	Name() string
	Model() string
	// Analyze sends the image with the fixed instruction prompt and returns
	// the model's raw text reply. Single attempt; callers own the timeout.
	Analyze(ctx context.Context, image []byte, mime string) (string, error)
}
