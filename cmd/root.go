package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerprep/internal/config"
	"github.com/abhisek/careerprep/internal/logging"
)

var (
	v       = config.New()
	cfg     *config.Config
	logger  = zerolog.Nop()
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "careerprep",
	Short: "AI mock interviews in your terminal",
	Long: "CareerPrep generates multiple-choice interview questions for your industry, " +
		"scores your answers and tracks your progress over time.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, file)
		if err != nil {
			return err
		}
		cfg = loaded
		return setupLogging(cmd == cmd.Root())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/careerprep/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides CAREERPREP_DB)")
	pf.String("user", "", "User id assessments are saved under")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.String("industry", "", "Industry for generated questions")
	pf.String("sub-industry", "", "Specialization within the industry")
	pf.Int("experience", 0, "Years of experience")
	pf.String("skills", "", "Comma-separated skills")
	pf.Int("questions", 0, "Questions per mock interview")

	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps flags onto config keys. A flag only wins when it is set.
var flagKeys = map[string]string{
	"db":           "db",
	"user":         "user",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"industry":     "profile.industry",
	"sub-industry": "profile.sub_industry",
	"experience":   "profile.experience",
	"skills":       "profile.skills",
	"questions":    "quiz.questions",
}

// setupLogging writes to log.file when set. The TUI owns the terminal, so
// it logs to the default state file instead of stderr.
func setupLogging(tui bool) error {
	var w io.Writer = os.Stderr
	path := cfg.Log.File
	if path == "" && tui {
		p, err := logging.DefaultFile()
		if err != nil {
			return err
		}
		path = p
	}
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	l, err := logging.Setup(cfg.Log.Level, w)
	if err != nil {
		return err
	}
	logger = l
	return nil
}
