package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/app"
	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/quiz"
)

// runApp loads config, opens the preference store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if noPersist, _ := cmd.Flags().GetBool("no-persist"); noPersist {
		cfg.Preferences.Backend = config.BackendMemory
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	questions, err := quiz.DefaultQuestions()
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	prefs, err := openPreferenceStore(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer prefs.Close()

	log.Info("starting quiz", "questions", len(questions), "feedback_delay", cfg.Delay().String())
	return app.Run(app.Options{
		Session: quiz.NewSession(questions),
		Store:   prefs,
		Logger:  log,
		Delay:   cfg.Delay(),
	})
}
