package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/ui/report"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a progress document, upgrading older layouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		return withApp(cmd, func(a *app) error {
			st, err := a.store.Import(cmd.Context(), raw)
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Confirm(fmt.Sprintf(
				"Imported %d workouts, %d rucks and %d badges.",
				len(st.Workouts), len(st.Rucks), len(st.Badges))))
			return nil
		})
	},
}
