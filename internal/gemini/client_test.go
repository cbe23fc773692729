package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Tai nghe chất lượng cao, "), genai.Text("pin 24h.")},
				},
			},
		},
	}
	if got := extractText(resp); got != "Tai nghe chất lượng cao, pin 24h." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractTextEmptyResponse(t *testing.T) {
	if got := extractText(nil); got != "" {
		t.Fatalf("expected empty text for nil response, got %q", got)
	}
	if got := extractText(&genai.GenerateContentResponse{}); got != "" {
		t.Fatalf("expected empty text for empty response, got %q", got)
	}
}

func TestDisabledAlwaysReturnsFallback(t *testing.T) {
	if got := (Disabled{}).Describe(context.Background(), "Tai nghe", "Điện tử"); got != fallbackError {
		t.Fatalf("unexpected fallback: %q", got)
	}
}
