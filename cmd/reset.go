package cmd

import (
	"errors"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/ui/report"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all progress with a fresh document",
	Long: "Replace all progress with a fresh document. Earlier snapshots stay in the\n" +
		"database until pruned, so a mistaken reset can be recovered with sqlite3.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset discards all progress; re-run with --yes to confirm")
		}
		return withApp(cmd, func(a *app) error {
			if _, err := a.store.Reset(cmd.Context()); err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Confirm("Progress reset."))
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
