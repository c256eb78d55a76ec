package cmd

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/engine"
	"github.com/abhisek/olympus/internal/state"
	"github.com/abhisek/olympus/internal/ui/report"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the available training tracks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			st, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Tracks(a.engine.Catalog().All(), st.Track))
			return nil
		})
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the next recommended session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			st, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			session, err := a.engine.TodayWorkout(st)
			if err != nil {
				return todayHint(err)
			}
			track, _ := a.engine.Catalog().Lookup(st.Track)
			lipgloss.Fprintln(cmd.OutOrStdout(), report.Today(track, st.Cycle.SessionsCompleted+1, session))
			return nil
		})
	},
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Start or stop a training cycle",
}

var trackStartCmd = &cobra.Command{
	Use:   "start <track-id>",
	Short: "Select a track and begin a fresh cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return a.mutate(cmd, "track_start", func(st *state.State) (string, error) {
				return a.engine.StartTrack(st, args[0])
			})
		})
	},
}

var trackStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Abandon the current cycle; progress is not kept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return a.mutate(cmd, "track_stop", a.engine.StopTrack)
		})
	},
}

func init() {
	trackCmd.AddCommand(trackStartCmd)
	trackCmd.AddCommand(trackStopCmd)
}

// todayHint adds a next step to the errors a user can act on.
func todayHint(err error) error {
	var nf *engine.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	switch nf.Kind {
	case "active track":
		return fmt.Errorf("%w; run 'olympus tracks' and 'olympus track start <id>'", err)
	case "session":
		return fmt.Errorf("%w; the cycle is complete, run 'olympus track start <id>' for a new one", err)
	}
	return err
}
