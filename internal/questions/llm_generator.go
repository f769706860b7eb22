package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/profile"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

var _ Generator = (*LLMGenerator)(nil)

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	cfg.Count = clampCount(cfg.Count)
	if cfg.Validators == nil {
		cfg.Validators = DefaultValidators()
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// setOutput is the raw LLM response before validation.
type setOutput struct {
	Questions []Question `json:"questions"`
}

// Generate requests a full question set in one LLM call and validates it.
func (g *LLMGenerator) Generate(ctx context.Context, p profile.Profile) (Set, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionSet)

	userMsg, err := buildUserMessage(p, g.config.Count)
	if err != nil {
		return nil, fmt.Errorf("build question prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	set := Set(raw.Questions)
	if len(set) > g.config.Count {
		set = set[:g.config.Count]
	}

	if err := CheckSet(set, g.config.Validators); err != nil {
		return nil, err
	}
	return set, nil
}
