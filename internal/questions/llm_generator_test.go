package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/profile"
)

func testProfile() profile.Profile {
	return profile.Profile{
		Industry:    "Technology",
		SubIndustry: "Backend Engineering",
		Experience:  4,
		Skills:      []string{"Go", "PostgreSQL"},
	}
}

func setResponse(qs ...Question) llm.MockResponse {
	return llm.MockJSON(map[string]any{"questions": qs})
}

func TestLLMGenerator_HappyPath(t *testing.T) {
	q1 := validQuestion()
	q2 := Question{
		Prompt:        "Which isolation level prevents phantom reads?",
		Options:       []string{"Read committed", "Repeatable read", "Serializable", "Read uncommitted"},
		CorrectAnswer: "Serializable",
		Explanation:   "Only serializable isolation rules out phantoms in standard SQL.",
	}
	mock := llm.NewMockProvider(setResponse(q1, q2))

	cfg := DefaultConfig()
	cfg.Count = 2
	gen := New(mock, cfg)

	set, err := gen.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(set))
	}
	if set[1].CorrectAnswer != "Serializable" {
		t.Fatalf("unexpected question: %+v", set[1])
	}

	req := mock.Requests()[0]
	if req.Schema != SetSchema {
		t.Fatal("expected SetSchema on request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Generate 2", "Technology (Backend Engineering)", "Go, PostgreSQL", "Years of experience: 4"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestLLMGenerator_TrimsExtraQuestions(t *testing.T) {
	q2 := validQuestion()
	q2.Prompt = "What does 301 mean?"
	q2.CorrectAnswer = "301"
	mock := llm.NewMockProvider(setResponse(validQuestion(), q2))

	cfg := DefaultConfig()
	cfg.Count = 1
	set, err := New(mock, cfg).Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected 1 question, got %d", len(set))
	}
}

func TestLLMGenerator_EmptySet(t *testing.T) {
	mock := llm.NewMockProvider(setResponse())
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), testProfile())
	if !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestLLMGenerator_InvalidQuestion(t *testing.T) {
	bad := validQuestion()
	bad.CorrectAnswer = "not an option"
	mock := llm.NewMockProvider(setResponse(bad))

	_, err := New(mock, DefaultConfig()).Generate(context.Background(), testProfile())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := New(mock, DefaultConfig()).Generate(context.Background(), testProfile())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestLLMGenerator_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": "nope"}`)})
	if _, err := New(mock, DefaultConfig()).Generate(context.Background(), testProfile()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLLMGenerator_TagsPurpose(t *testing.T) {
	var seen string
	p := purposeSpy{fn: func(ctx context.Context) { seen = llm.PurposeFrom(ctx) }}
	_, _ = New(p, DefaultConfig()).Generate(context.Background(), testProfile())
	if seen != llm.PurposeQuestionSet {
		t.Fatalf("purpose = %q, want %q", seen, llm.PurposeQuestionSet)
	}
}

type purposeSpy struct{ fn func(context.Context) }

func (p purposeSpy) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return nil, errors.New("spy")
}

func (p purposeSpy) ModelID() string { return "spy" }

func TestClampCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultCount},
		{-3, DefaultCount},
		{1, 1},
		{20, 20},
		{50, MaxCount},
	}
	for _, tt := range tests {
		if got := clampCount(tt.in); got != tt.want {
			t.Errorf("clampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildUserMessage_OmitsEmptyFields(t *testing.T) {
	msg, err := buildUserMessage(profile.Profile{Industry: "Finance"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(msg, "Focus skills") || strings.Contains(msg, "experience") {
		t.Fatalf("expected optional lines to be omitted:\n%s", msg)
	}
	if !strings.Contains(msg, "Industry: Finance") {
		t.Fatalf("missing industry:\n%s", msg)
	}
}
