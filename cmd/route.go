package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/engine"
	"github.com/abhisek/olympus/internal/state"
	"github.com/abhisek/olympus/internal/ui/report"
)

var routeCmd = &cobra.Command{
	Use:   "route [stop]",
	Short: "Show the ruck route, or one stop and when it was reached",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			st, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			r := a.engine.Route()
			earned := state.EarnedWaypoints(st.Badges)

			if len(args) == 0 {
				lipgloss.Fprintln(cmd.OutOrStdout(), report.Route(r, r.Loop(st.TotalRuckMiles), earned))
				return nil
			}
			name := strings.Join(args, " ")
			wp, ok := r.Lookup(name)
			if !ok {
				return &engine.NotFoundError{Kind: "waypoint", ID: name}
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Waypoint(wp, earned))
			return nil
		})
	},
}
