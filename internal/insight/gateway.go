package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/mindfuljournal/mindful/internal/models"
)

// ErrNoHistory means there is nothing on or before the target day to
// analyze; callers should not retry without new data.
var ErrNoHistory = errors.New("no journal or ritual history on or before this day")

// Generator produces a structured review from journal and ritual history.
// The store persists whatever a Generator returns; a failed generation
// must leave any previously saved insight untouched.
type Generator interface {
	Generate(ctx context.Context, reflections []models.Reflection, days map[string]models.DailyRecord, targetDay string) (models.Insight, error)
}

// Gemini calls the Gemini API with a strict JSON response schema so the
// reply decodes straight into models.Insight.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"executiveSummary": {Type: genai.TypeString},
		"diagnosis":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"weakElements":     {Type: genai.TypeString},
		"improvements":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"stoicChallenge":   {Type: genai.TypeString},
		"refinedVersion":   {Type: genai.TypeString},
	},
	Required: []string{
		"executiveSummary", "diagnosis", "weakElements",
		"improvements", "stoicChallenge", "refinedVersion",
	},
}

func (g *Gemini) Generate(ctx context.Context, reflections []models.Reflection, days map[string]models.DailyRecord, targetDay string) (models.Insight, error) {
	journal, rituals := selectHistory(reflections, days, targetDay)
	if len(journal) == 0 && len(rituals) == 0 {
		return models.Insight{}, ErrNoHistory
	}

	prompt := buildPrompt(targetDay, journal, rituals)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.3),
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightSchema,
		},
	)
	if err != nil {
		return models.Insight{}, fmt.Errorf("insight generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return models.Insight{}, fmt.Errorf("insight generation failed: empty model response")
	}

	var result models.Insight
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return models.Insight{}, fmt.Errorf("insight generation failed: unparseable model response: %w", err)
	}

	return result, nil
}
