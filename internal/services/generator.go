package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/faithfullife/life-dashboard/internal/models"
)

// AnthropicVerseSource generates the per-category verse sets through the
// Anthropic API. Atheism gets science and humanist material instead of
// scripture.
type AnthropicVerseSource struct {
	client anthropic.Client
	model  string
}

func NewAnthropicVerseSource(apiKey, model string) *AnthropicVerseSource {
	return &AnthropicVerseSource{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

const verseJSONShape = `{
  "spiritual": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "physical": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "family": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "oneonone": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "assets": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "income": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "hobby": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}],
  "politics": [{"text": "...", "reference": "..."}, {"text": "...", "reference": "..."}]
}`

func versePrompt(religion string) string {
	if strings.EqualFold(religion, "atheism") {
		return "Provide 2 science-based facts or humanistic philosophical insights for each category. Return ONLY a JSON object with this exact structure, no other text:\n" + verseJSONShape
	}
	return fmt.Sprintf("Provide 2 inspirational verses or wisdom quotes from the %s tradition. Return ONLY a JSON object with this exact structure, no other text:\n%s", religion, verseJSONShape)
}

func (source *AnthropicVerseSource) Generate(ctx context.Context, religion string) (map[string][]models.VerseText, error) {
	message, err := source.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(source.model),
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(versePrompt(religion))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generating verses for %q: %w", religion, err)
	}
	if len(message.Content) == 0 {
		return nil, fmt.Errorf("empty response for %q", religion)
	}

	jsonStr, err := extractJSON(message.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("extracting verses for %q: %w", religion, err)
	}

	var byCategory map[string][]models.VerseText
	if err := json.Unmarshal([]byte(jsonStr), &byCategory); err != nil {
		return nil, fmt.Errorf("decoding verses for %q: %w", religion, err)
	}
	if err := validateVerseSet(byCategory); err != nil {
		return nil, fmt.Errorf("validating verses for %q: %w", religion, err)
	}
	return byCategory, nil
}

func validateVerseSet(byCategory map[string][]models.VerseText) error {
	for _, categoryID := range models.CategoryIDs {
		verses, ok := byCategory[categoryID]
		if !ok || len(verses) == 0 {
			return fmt.Errorf("missing verses for category %q", categoryID)
		}
		for _, verse := range verses {
			if verse.Text == "" || verse.Reference == "" {
				return fmt.Errorf("incomplete verse in category %q", categoryID)
			}
		}
	}
	return nil
}

// extractJSON finds the first complete JSON object in a response.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
