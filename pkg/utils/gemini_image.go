package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiImageClient implements ImageClientInterface using Google's Gemini
// image-capable models.
type GeminiImageClient struct {
	client     *genai.Client
	imageModel string
	textModel  string
}

func NewGeminiImageClient(apiKey, imageModel, textModel string) (ImageClientInterface, error) {
	if imageModel == "" {
		imageModel = "gemini-2.0-flash-preview-image-generation"
	}
	if textModel == "" {
		textModel = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiImageClient{
		client:     client,
		imageModel: imageModel,
		textModel:  textModel,
	}, nil
}

// GenerateImage sends the prompt plus any inline reference images and returns
// the first image part of the response.
func (c *GeminiImageClient) GenerateImage(ctx context.Context, prompt string, refs []ReferenceImage) (*GeneratedImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.imageModel)
	m.SetTemperature(0.8)

	parts := make([]genai.Part, 0, len(refs)+1)
	parts = append(parts, genai.Text(prompt))
	for _, ref := range refs {
		parts = append(parts, genai.ImageData(ref.Format, ref.Data))
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			mime := blob.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &GeneratedImage{MIMEType: mime, Data: blob.Data}, nil
		}
	}
	return nil, fmt.Errorf("response contained no image part")
}

// EnhancePrompt rewrites a short user prompt into a detailed thumbnail brief.
func (c *GeminiImageClient) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.textModel)
	m.SetTemperature(0.4)
	m.SetMaxOutputTokens(400)

	instruction := fmt.Sprintf(`Rewrite the following thumbnail idea into one vivid, specific
image-generation prompt. Mention subject, composition, lighting and mood.
Return the rewritten prompt only, no preamble, no quotes.

Idea: %s`, prompt)

	resp, err := m.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	enhanced := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if enhanced == "" {
		return "", fmt.Errorf("empty enhancement")
	}
	return enhanced, nil
}

func (c *GeminiImageClient) Close() error {
	return c.client.Close()
}
