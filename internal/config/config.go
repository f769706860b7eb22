// Package config loads careerprep settings from defaults, an optional YAML
// file, CAREERPREP_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/abhisek/careerprep/internal/llm"
	"github.com/abhisek/careerprep/internal/logging"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/questions"
	"github.com/abhisek/careerprep/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. CAREERPREP_LOG_LEVEL.
const EnvPrefix = "CAREERPREP"

// DefaultUser is the local user id when none is configured.
const DefaultUser = "local"

// Config is the fully resolved application configuration.
type Config struct {
	DB      string
	User    string
	Profile profile.Profile
	Quiz    QuizConfig
	Log     LogConfig
	LLM     llm.Config

	// File is the config file that was read, or "" when none was found.
	File string
}

// QuizConfig controls question sets.
type QuizConfig struct {
	Questions int
}

// LogConfig controls where and how much is logged.
type LogConfig struct {
	Level string
	// File is "" for stderr.
	File string
}

// New returns a viper instance with every default and the environment
// binding registered. Flags are bound by the caller with BindPFlag.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("db", "")
	v.SetDefault("user", DefaultUser)
	v.SetDefault("profile.industry", "")
	v.SetDefault("profile.sub_industry", "")
	v.SetDefault("profile.experience", 0)
	v.SetDefault("profile.skills", []string{})
	v.SetDefault("profile.bio", "")
	v.SetDefault("quiz.questions", questions.DefaultCount)
	v.SetDefault("log.level", logging.DefaultLevel)
	v.SetDefault("log.file", "")
	llm.SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and resolves the result. file may be ""
// to search the default location; an explicitly named file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug().Msg("no config file found, using defaults")
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// FromViper resolves a Config from the keys currently held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DB:   v.GetString("db"),
		User: strings.TrimSpace(v.GetString("user")),
		Profile: profile.Profile{
			Industry:    v.GetString("profile.industry"),
			SubIndustry: v.GetString("profile.sub_industry"),
			Experience:  v.GetInt("profile.experience"),
			Skills:      skillsFrom(v.Get("profile.skills")),
			Bio:         v.GetString("profile.bio"),
		},
		Quiz: QuizConfig{Questions: v.GetInt("quiz.questions")},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		LLM: llm.ConfigFrom(v),
	}

	if cfg.DB == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.DB = p
	}
	if cfg.User == "" {
		cfg.User = DefaultUser
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings every command depends on. Profile and LLM
// settings are checked by the commands that need them.
func (c *Config) Validate() error {
	if c.Quiz.Questions < 1 || c.Quiz.Questions > questions.MaxCount {
		return fmt.Errorf("quiz.questions must be between 1 and %d, got %d", questions.MaxCount, c.Quiz.Questions)
	}
	return nil
}

// DefaultDir returns $XDG_CONFIG_HOME/careerprep, or ~/.config/careerprep.
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "careerprep"), nil
}

// SaveProfile writes p into the config file at path, keeping every other
// key already in it. An empty path means config.yaml in DefaultDir. It
// returns the path written.
func SaveProfile(path string, p profile.Profile) (string, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	// A fresh instance so defaults and environment overrides, API keys
	// included, are not written out.
	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read config: %w", err)
	}

	fv.Set("profile.industry", p.Industry)
	fv.Set("profile.sub_industry", p.SubIndustry)
	fv.Set("profile.experience", p.Experience)
	fv.Set("profile.skills", p.Skills)
	fv.Set("profile.bio", p.Bio)

	if err := fv.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// skillsFrom accepts a YAML list or a comma-separated string.
func skillsFrom(raw any) []string {
	if s, ok := raw.(string); ok {
		return profile.ParseSkills(s)
	}
	return profile.ParseSkills(strings.Join(cast.ToStringSlice(raw), ","))
}
