package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/careerprep/internal/app"
	"github.com/abhisek/careerprep/internal/config"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	env := &screen.Env{
		Quiz:    d.machine,
		Records: d.builder,
		UserID:  cfg.User,
		Profile: cfg.Profile,
		LLMErr:  d.llmErr,
		SaveProfile: func(p profile.Profile) error {
			path, err := config.SaveProfile(cfg.File, p)
			if err != nil {
				return err
			}
			logger.Info().Str("file", path).Msg("profile saved")
			cfg.File = path
			return nil
		},
	}

	return app.Run(env)
}
