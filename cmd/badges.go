package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/state"
	"github.com/abhisek/olympus/internal/ui/report"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned badges in award order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		switch state.BadgeKind(kind) {
		case "", state.BadgeMonster, state.BadgeLaurel, state.BadgeWaypoint:
		default:
			return fmt.Errorf("unknown badge kind %q (use monster, laurel or waypoint)", kind)
		}

		return withApp(cmd, func(a *app) error {
			st, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			list := st.Badges
			if kind != "" {
				list = st.BadgesOfKind(state.BadgeKind(kind))
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Badges(list))
			return nil
		})
	},
}

func init() {
	badgesCmd.Flags().String("kind", "", "Only show one kind: monster, laurel or waypoint")
}
