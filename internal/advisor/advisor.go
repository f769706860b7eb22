// Package advisor produces a short improvement tip for a finished attempt.
// Tips are best-effort: callers treat any error as "no tip".
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/scoring"
)

// Advisor suggests how to improve after an attempt.
type Advisor interface {
	// SuggestImprovement returns "" when there is nothing to improve.
	SuggestImprovement(ctx context.Context, in Input) (string, error)
}

// Input is what the advisor sees of an attempt.
type Input struct {
	Profile profile.Profile
	Result  scoring.Result
}

// Config holds configuration for the LLM advisor.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxMissed caps how many wrong answers are listed in the prompt.
	MaxMissed int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.4,
		MaxMissed:   10,
	}
}

// maxTipLength bounds the stored tip.
const maxTipLength = 400

// LLMAdvisor asks an LLM for a tip based on the questions answered wrong.
type LLMAdvisor struct {
	provider llm.Provider
	cfg      Config
}

var _ Advisor = (*LLMAdvisor)(nil)

// NewLLMAdvisor creates an LLM-backed advisor.
func NewLLMAdvisor(provider llm.Provider, cfg Config) *LLMAdvisor {
	if cfg.MaxMissed <= 0 {
		cfg.MaxMissed = DefaultConfig().MaxMissed
	}
	return &LLMAdvisor{provider: provider, cfg: cfg}
}

type tipOutput struct {
	Tip string `json:"tip"`
}

// SuggestImprovement returns a tip of at most two sentences. Perfect
// attempts return "" without calling the provider.
func (a *LLMAdvisor) SuggestImprovement(ctx context.Context, in Input) (string, error) {
	missed := in.Result.Missed()
	if len(missed) == 0 {
		return "", nil
	}
	if len(missed) > a.cfg.MaxMissed {
		missed = missed[:a.cfg.MaxMissed]
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeImprovementTip)

	userMsg, err := buildTipMessage(in.Profile, missed)
	if err != nil {
		return "", fmt.Errorf("build tip prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      tipSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      TipSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM tip failed: %w", err)
	}

	var out tipOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse tip response: %w", err)
	}
	return clip(strings.TrimSpace(out.Tip), maxTipLength), nil
}

// clip shortens s to n bytes at a word boundary.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := strings.LastIndexByte(s[:n], ' ')
	if cut <= 0 {
		cut = n
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
	}
	return strings.TrimRight(s[:cut], " ,;:") + "..."
}

// TipSchema constrains the advisor response.
var TipSchema = &llm.Schema{
	Name:        "improvement-tip",
	Description: "A concise, encouraging improvement tip for a mock interview candidate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One or two sentences on what to study next",
			},
		},
		"required":             []any{"tip"},
		"additionalProperties": false,
	},
}

const tipSystemPrompt = `You are a supportive interview coach.

Rules:
- Look at the questions the candidate got wrong and name the knowledge gap they share.
- Say what to study or practice next. Do not restate the questions or reveal answers again.
- Be encouraging and concrete. Keep the tip under two sentences.`

var tipUserTemplate = template.Must(template.New("tip").Parse(`Industry: {{.Industry}}

Questions answered incorrectly:
{{range .Missed}}- Question: {{.Question.Prompt}}
  Correct answer: {{.Question.CorrectAnswer}}
  Candidate's answer: {{if .UserAnswer}}{{.UserAnswer}}{{else}}(no answer){{end}}
{{end}}`))

func buildTipMessage(p profile.Profile, missed []scoring.Detail) (string, error) {
	var buf bytes.Buffer
	err := tipUserTemplate.Execute(&buf, struct {
		Industry string
		Missed   []scoring.Detail
	}{p.DisplayIndustry(), missed})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
