package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// analysisPrompt is the fixed instruction sent with every image. The model is
// asked for strict JSON in the PlantRecord shape; the normalizer still defends
// against prose and code fences around the object.
const analysisPrompt = `Analyze this plant image and provide a detailed assessment.
Identify the species, evaluate the plant's health, and give practical care advice.
Return ONLY a JSON object in exactly this format, with no commentary around it:
{
  "species": {
    "name": "scientific name and common name",
    "characteristics": "key visual characteristics",
    "family": "plant family",
    "origin": "native region"
  },
  "health": {
    "status": "Healthy or Unhealthy",
    "issues": ["visible problem", "..."],
    "assessment": "overall health assessment"
  },
  "recommendations": {
    "care": ["care instruction", "..."],
    "treatment": ["treatment step", "..."],
    "notes": "additional notes"
  },
  "interesting_facts": "one or two interesting facts about this plant"
}`

// Engine calls the Gemini generative model. The underlying client is created
// once at startup and shared by all requests.
type Engine struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Engine{client: cl, model: strings.TrimSpace(model)}, nil
}

func (e *Engine) Close() error { return e.client.Close() }

func (e *Engine) Name() string  { return "gemini" }
func (e *Engine) Model() string { return e.model }

// Analyze sends the instruction prompt plus the inline image and returns the
// raw reply text. One attempt, no retry; the caller's context bounds the call.
func (e *Engine) Analyze(ctx context.Context, image []byte, mime string) (string, error) {
	m := e.client.GenerativeModel(e.model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0.4),
	}

	parts := []genai.Part{
		genai.Text(analysisPrompt),
		&genai.Blob{MIMEType: mime, Data: image},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini analyze: %w", err)
	}
	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", fmt.Errorf("gemini analyze: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
