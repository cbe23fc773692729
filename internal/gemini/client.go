package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Describer produces a short marketing description for a product. It never
// fails: the submission flow continues with fallback text on any error.
type Describer interface {
	Describe(ctx context.Context, name, category string) string
}

const (
	modelName = "gemini-2.0-flash"

	// Fallback shown when generation fails outright.
	fallbackError = "Lỗi khi tạo mô tả. Vui lòng tự nhập mô tả cho sản phẩm."

	// Fallback shown when the model returned nothing usable.
	fallbackEmpty = "Mô tả sản phẩm đang được cập nhật..."
)

// Client wraps the Gemini API behind the Describer contract.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(512)

	return &Client{client: client, model: model}, nil
}

func (c *Client) Describe(ctx context.Context, name, category string) string {
	prompt := fmt.Sprintf(
		"Hãy viết một đoạn mô tả sản phẩm ngắn gọn, hấp dẫn và chuyên nghiệp bằng tiếng Việt cho sản phẩm %q thuộc danh mục %q. Tập trung vào lợi ích cho người dùng.",
		name, category,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Println("[GEMINI] [ERROR] generation failed:", err)
		return fallbackError
	}

	text := extractText(resp)
	if text == "" {
		return fallbackEmpty
	}
	return text
}

func (c *Client) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// Disabled is used when no API key is configured; it always answers with
// the error fallback so the submission flow keeps working.
type Disabled struct{}

func (Disabled) Describe(ctx context.Context, name, category string) string {
	return fallbackError
}
