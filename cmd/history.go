package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/store"
	"github.com/abhisek/olympus/internal/ui/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent workouts and rucks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		activity, _ := cmd.Flags().GetBool("activity")

		return withApp(cmd, func(a *app) error {
			ctx := cmd.Context()
			if activity {
				events, err := a.store.EventRepo().Query(ctx, store.QueryOpts{Limit: limit})
				if err != nil {
					return err
				}
				lipgloss.Fprintln(cmd.OutOrStdout(), report.Activity(events))
				return nil
			}

			st, err := a.load(ctx)
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.History(st.Workouts, st.Rucks, limit))
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Entries per section (0 = all)")
	historyCmd.Flags().Bool("activity", false, "Show the activity journal instead")
}
