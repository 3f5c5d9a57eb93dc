package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/logging"
	"github.com/abhisek/quizbox/internal/preference"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the saved theme preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreferenceStore(cmd, func(s preferenceStore) error {
			t, ok, err := s.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("read theme: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "unset")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set light|dark",
	Short:     "Save a theme preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(preference.Light), string(preference.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := preference.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return withPreferenceStore(cmd, func(s preferenceStore) error {
			if err := s.Set(cmd.Context(), t); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", t)
			return nil
		})
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
}

// withPreferenceStore opens the configured store for a one-shot command.
// Subcommands log nowhere unless --log-file is given.
func withPreferenceStore(cmd *cobra.Command, fn func(preferenceStore) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.Nop()
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		if log, err = logging.New(cfg.Log.Mode, p); err != nil {
			return err
		}
		defer log.Sync()
	}

	s, err := openPreferenceStore(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
