package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// MatchSummary is the scored comparison the insight text is written from.
type MatchSummary struct {
	RequesterName      string
	CandidateName      string
	MatchPercentage    int
	HoroscopeScore     *int
	CompatibilityLevel string
	Satisfied          []string
	Unmet              []string
}

// ErrEmptyInsight is returned when the model answers without any text.
var ErrEmptyInsight = errors.New("gemini returned an empty insight")

// GenerateMatchInsight asks the model for a short explanation of a match.
// Callers fall back to FallbackInsight on error.
func (c *GeminiClient) GenerateMatchInsight(ctx context.Context, s MatchSummary) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(buildInsightPrompt(s)))
	if err != nil {
		return "", fmt.Errorf("failed to generate match insight: %w", err)
	}
	return insightText(resp)
}

func insightText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyInsight
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyInsight
	}
	return text, nil
}

func buildInsightPrompt(s MatchSummary) string {
	horoscope := "not available"
	if s.HoroscopeScore != nil {
		horoscope = fmt.Sprintf("%d%% (%s)", *s.HoroscopeScore, s.CompatibilityLevel)
	}

	return fmt.Sprintf(`
		You are assisting a matrimonial service.
		Person A: %s
		Person B: %s
		Overall match: %d%%
		Horoscope compatibility: %s
		Preferences met: %s
		Preferences not met: %s

		Task: Write a warm, respectful explanation (2-3 sentences) of this match for Person A.
		Mention the strongest points first and be honest about gaps.
		Language: English.
		Output: Just the explanation text.
	`, s.RequesterName, s.CandidateName, s.MatchPercentage, horoscope,
		listOrNone(s.Satisfied), listOrNone(s.Unmet))
}

// FallbackInsight renders a template explanation without calling the model.
func FallbackInsight(s MatchSummary) string {
	name := s.CandidateName
	if name == "" {
		name = "This profile"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is a %d%% match for you.", name, s.MatchPercentage)
	if len(s.Satisfied) > 0 {
		fmt.Fprintf(&sb, " You align on %s.", joinHuman(s.Satisfied))
	}
	if len(s.Unmet) > 0 {
		fmt.Fprintf(&sb, " Differences: %s.", joinHuman(s.Unmet))
	}
	if s.HoroscopeScore != nil {
		fmt.Fprintf(&sb, " Horoscope compatibility is %d%% (%s).", *s.HoroscopeScore, s.CompatibilityLevel)
	}
	return sb.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func joinHuman(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
