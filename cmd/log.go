package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/state"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a workout or a ruck",
}

var logSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Log the next recommended session of the current cycle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			err := a.mutate(cmd, "log_session", a.engine.LogRecommendedSession)
			return todayHint(err)
		})
	},
}

var logCustomCmd = &cobra.Command{
	Use:   "custom <description...>",
	Short: "Log a free-form workout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := strings.Join(args, " ")
		return withApp(cmd, func(a *app) error {
			return a.mutate(cmd, "log_custom", func(st *state.State) (string, error) {
				return a.engine.LogCustomSession(st, desc)
			})
		})
	},
}

var logRuckCmd = &cobra.Command{
	Use:   "ruck",
	Short: "Log a ruck: distance in miles and pack weight in pounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		miles, _ := cmd.Flags().GetFloat64("miles")
		pounds, _ := cmd.Flags().GetFloat64("pounds")
		return withApp(cmd, func(a *app) error {
			return a.mutate(cmd, "log_ruck", func(st *state.State) (string, error) {
				return a.engine.LogRuck(st, miles, pounds)
			})
		})
	},
}

func init() {
	logRuckCmd.Flags().Float64("miles", 0, "Distance covered in miles")
	logRuckCmd.Flags().Float64("pounds", 0, "Pack weight in pounds")
	_ = logRuckCmd.MarkFlagRequired("miles")

	logCmd.AddCommand(logSessionCmd)
	logCmd.AddCommand(logCustomCmd)
	logCmd.AddCommand(logRuckCmd)
}
