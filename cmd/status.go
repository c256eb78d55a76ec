package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/ui/layout"
	"github.com/abhisek/olympus/internal/ui/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cycle, streak, ruck and badge progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			st, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Status(a.engine.CycleStatus(st), layout.DefaultWidth))
			return nil
		})
	},
}
