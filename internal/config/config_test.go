package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerprep/internal/profile"
)

// isolate points every XDG directory and API key env var at nothing so
// the developer's machine cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{
		"CAREERPREP_DB", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultUser, cfg.User)
	assert.Equal(t, 10, cfg.Quiz.Questions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, filepath.Join(dir, "data", "careerprep", "careerprep.db"), cfg.DB)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.Profile.Skills)
}

func TestLoadDefaultLocationFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "careerprep", "config.yaml")
	writeFile(t, path, `
user: alice
profile:
  industry: Technology
  sub_industry: Backend Engineering
  experience: 4
  skills: [Go, PostgreSQL, go]
quiz:
  questions: 5
llm:
  provider: anthropic
  anthropic:
    api_key: sk-test
`)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "technology-backend-engineering", cfg.Profile.IndustryKey())
	assert.Equal(t, 4, cfg.Profile.Experience)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, cfg.Profile.Skills)
	assert.Equal(t, 5, cfg.Quiz.Questions)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.Anthropic.APIKey)
	assert.NoError(t, cfg.LLM.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "quiz:\n  questions: 5\nlog:\n  level: warn\n")

	t.Setenv("CAREERPREP_QUIZ_QUESTIONS", "7")
	t.Setenv("CAREERPREP_PROFILE_SKILLS", "Kubernetes, Terraform")
	t.Setenv("CAREERPREP_LLM_OPENAI_API_KEY", "sk-openai")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Quiz.Questions)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, cfg.Profile.Skills)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-openai", cfg.LLM.OpenAI.APIKey)
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CAREERPREP_USER", "from-env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("user", "", "")
	fs.StringSlice("skills", nil, "")
	require.NoError(t, fs.Parse([]string{"--user", "from-flag", "--skills", "Go,Rust"}))

	v := New()
	require.NoError(t, v.BindPFlag("user", fs.Lookup("user")))
	require.NoError(t, v.BindPFlag("profile.skills", fs.Lookup("skills")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.User)
	assert.Equal(t, []string{"Go", "Rust"}, cfg.Profile.Skills)
}

func TestExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "quiz: [unclosed\n")

	_, err := Load(New(), path)
	assert.Error(t, err)
}

func TestQuestionCountBounds(t *testing.T) {
	for _, n := range []string{"0", "21"} {
		t.Run(n, func(t *testing.T) {
			isolate(t)
			t.Setenv("CAREERPREP_QUIZ_QUESTIONS", n)

			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}

func TestBlankUserFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv("CAREERPREP_USER", "  ")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultUser, cfg.User)
}

func TestSaveProfileKeepsOtherKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "careerprep", "config.yaml")
	writeFile(t, path, "user: alice\nquiz:\n  questions: 5\n")
	t.Setenv("CAREERPREP_LLM_GEMINI_API_KEY", "secret")

	written, err := SaveProfile("", profile.Profile{
		Industry: "Finance", SubIndustry: "Risk", Experience: 6, Skills: []string{"SQL", "Python"},
	})
	require.NoError(t, err)
	assert.Equal(t, path, written)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, 5, cfg.Quiz.Questions)
	assert.Equal(t, "Finance", cfg.Profile.Industry)
	assert.Equal(t, "Risk", cfg.Profile.SubIndustry)
	assert.Equal(t, 6, cfg.Profile.Experience)
	assert.Equal(t, []string{"SQL", "Python"}, cfg.Profile.Skills)
}

func TestSaveProfileCreatesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere", "careerprep.yaml")

	written, err := SaveProfile(path, profile.Profile{Industry: "Healthcare"})
	require.NoError(t, err)
	assert.Equal(t, path, written)

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "Healthcare", cfg.Profile.Industry)
}
