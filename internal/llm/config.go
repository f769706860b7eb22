package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenAIConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration

	// Mock serves Provider "mock". It is never read from configuration.
	Mock *MockProvider
}

// Endpoint is the connection setting shared by every hosted provider.
// Model accepts a short alias (see the *Models maps) or a full model ID.
type Endpoint struct {
	APIKey  string
	Model   string
	BaseURL string
}

type (
	AnthropicConfig = Endpoint
	OpenAIConfig    = Endpoint
	GeminiConfig    = Endpoint
)

// RetryConfig shapes the backoff of RetryProvider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// hostedProviders is also the preference order when the provider has to
// be inferred from whichever key is present.
var hostedProviders = []string{"gemini", "openai", "anthropic", "openrouter"}

// discoveryEnv holds the vendor-standard key variables checked when
// nothing is configured.
var discoveryEnv = map[string]string{
	"gemini":     "GEMINI_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.5-flash", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: time.Minute,
	}
}

// endpoint returns the settings slot for a hosted provider, or nil.
func (c *Config) endpoint(name string) *Endpoint {
	switch name {
	case "anthropic":
		return &c.Anthropic
	case "openai":
		return &c.OpenAI
	case "gemini":
		return &c.Gemini
	case "openrouter":
		return &c.OpenRouter
	}
	return nil
}

// SetDefaults registers the llm.* defaults on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("llm.provider", "")
	for _, name := range hostedProviders {
		e := d.endpoint(name)
		v.SetDefault("llm."+name+".model", e.Model)
		if e.BaseURL != "" {
			v.SetDefault("llm."+name+".base_url", e.BaseURL)
		}
	}
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}

// ConfigFrom reads the llm.* keys of v. With no explicit provider the
// first hosted provider holding a key wins, then the first vendor env var
// found by DiscoverConfig, then the default.
func ConfigFrom(v *viper.Viper) Config {
	cfg := DefaultConfig()
	cfg.Provider = v.GetString("llm.provider")
	for _, name := range hostedProviders {
		prefix := "llm." + name + "."
		*cfg.endpoint(name) = Endpoint{
			APIKey:  v.GetString(prefix + "api_key"),
			Model:   v.GetString(prefix + "model"),
			BaseURL: v.GetString(prefix + "base_url"),
		}
	}
	cfg.Timeout = v.GetDuration("llm.timeout")
	cfg.Retry = RetryConfig{
		MaxAttempts: max(v.GetInt("llm.retry.max_attempts"), 1),
		InitialWait: v.GetDuration("llm.retry.initial_wait"),
		MaxWait:     v.GetDuration("llm.retry.max_wait"),
		Multiplier:  v.GetFloat64("llm.retry.multiplier"),
	}

	if cfg.Provider != "" {
		return cfg
	}
	for _, name := range hostedProviders {
		if cfg.endpoint(name).APIKey != "" {
			cfg.Provider = name
			return cfg
		}
	}
	if found, ok := DiscoverConfig(); ok {
		cfg.Provider = found.Provider
		cfg.endpoint(found.Provider).APIKey = found.endpoint(found.Provider).APIKey
		return cfg
	}
	cfg.Provider = DefaultConfig().Provider
	return cfg
}

// DiscoverConfig looks for a vendor API key variable such as
// GEMINI_API_KEY and returns a default Config for the first provider that
// has one.
func DiscoverConfig() (Config, bool) {
	for _, name := range hostedProviders {
		if key := os.Getenv(discoveryEnv[name]); key != "" {
			cfg := DefaultConfig()
			cfg.Provider = name
			cfg.endpoint(name).APIKey = key
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	e := c.endpoint(c.Provider)
	if e == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if e.APIKey == "" {
		return fmt.Errorf("llm.%s.api_key (or CAREERPREP_LLM_%s_API_KEY) is required for the %s provider",
			c.Provider, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
