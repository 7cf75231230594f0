package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), "", "gemini-1.5-flash")
	assert.Error(t, err)

	_, err = New(context.Background(), "   ", "gemini-1.5-flash")
	assert.Error(t, err)
}

func TestFirstText(t *testing.T) {
	assert.Equal(t, "", firstText(nil))
	assert.Equal(t, "", firstText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("reply text")}}},
		},
	}
	assert.Equal(t, "reply text", firstText(resp))
}
