package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/careerprep/internal/advisor"
	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/questions"
	"github.com/abhisek/careerprep/internal/quiz"
	"github.com/abhisek/careerprep/internal/store"
)

// deps are the collaborators shared by the TUI and the plain commands.
type deps struct {
	store   *store.Store
	builder *assessment.Builder

	// machine is nil when llmErr is set.
	machine *quiz.Machine
	llmErr  error
}

// openStore opens the configured database, creating its directory.
func openStore() (*store.Store, error) {
	if err := store.EnsureDir(cfg.DB); err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openDeps opens the store and, when an LLM provider is configured, builds
// the quiz machine on top of it. A missing provider is reported in llmErr
// rather than failing so read-only features keep working.
func openDeps(ctx context.Context) (*deps, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}

	d := &deps{
		store:   st,
		builder: assessment.NewBuilder(st.AssessmentRepo(), logger),
	}

	llmCfg := cfg.LLM
	if llmCfg.Provider == "mock" && llmCfg.Mock == nil {
		llmCfg.Mock = demoProvider()
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), logger)
	if err != nil {
		d.llmErr = err
		logger.Warn().Err(err).Msg("LLM provider not configured")
		return d, nil
	}

	genCfg := questions.DefaultConfig()
	genCfg.Count = cfg.Quiz.Questions

	d.machine, err = quiz.New(quiz.Options{
		Generator: questions.New(provider, genCfg),
		Submitter: d.builder,
		Advisor:   advisor.NewLLMAdvisor(provider, advisor.DefaultConfig()),
		Logger:    logger,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return d, nil
}

// demoProvider serves a fixed question set and tip so the app runs offline.
func demoProvider() *llm.MockProvider {
	m := llm.NewMockProvider()
	m.Always(llm.PurposeQuestionSet, llm.MockJSON(map[string]any{"questions": questions.SampleSet()}))
	m.Always(llm.PurposeImprovementTip, llm.MockJSON(map[string]string{
		"tip": "Practice answering out loud with the STAR structure and end every story on a measurable result.",
	}))
	return m
}

func (d *deps) Close() error {
	return d.store.Close()
}
