package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPreferenceStore(cmd, func(s preferenceStore) error {
			if err := s.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Theme preference cleared")
			return nil
		})
	},
}
