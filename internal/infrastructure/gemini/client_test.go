package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackInsight(t *testing.T) {
	score := 22
	s := MatchSummary{
		CandidateName:      "Ananya",
		MatchPercentage:    77,
		HoroscopeScore:     &score,
		CompatibilityLevel: "Below Average Match",
		Satisfied:          []string{"age", "religion", "location"},
		Unmet:              []string{"income"},
	}

	assert.Equal(t,
		"Ananya is a 77% match for you. You align on age, religion and location. Differences: income. Horoscope compatibility is 22% (Below Average Match).",
		FallbackInsight(s),
	)
}

func TestFallbackInsight_Minimal(t *testing.T) {
	assert.Equal(t, "This profile is a 0% match for you.", FallbackInsight(MatchSummary{}))
}

func TestBuildInsightPrompt(t *testing.T) {
	p := buildInsightPrompt(MatchSummary{
		RequesterName:   "Ravi",
		CandidateName:   "Ananya",
		MatchPercentage: 85,
		Satisfied:       []string{"age"},
	})

	assert.Contains(t, p, "Person A: Ravi")
	assert.Contains(t, p, "Overall match: 85%")
	assert.Contains(t, p, "Horoscope compatibility: not available")
	assert.Contains(t, p, "Preferences not met: none")
}

func TestNewGeminiClient_EmptyKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")
	assert.Error(t, err)
}

func TestJoinHuman(t *testing.T) {
	assert.Equal(t, "", joinHuman(nil))
	assert.Equal(t, "age", joinHuman([]string{"age"}))
	assert.Equal(t, "age and height", joinHuman([]string{"age", "height"}))
}

func TestInsightText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("  Ravi shares your values. "), genai.Text("A strong match.")}},
		}},
	}
	text, err := insightText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Ravi shares your values. A strong match.", text)

	for name, resp := range map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{}}},
		"blank text": {Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("   ")}},
		}}},
	} {
		_, err := insightText(resp)
		assert.ErrorIs(t, err, ErrEmptyInsight, name)
	}
}
