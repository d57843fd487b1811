package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/automoto/leapfrog/logger"
	"github.com/automoto/leapfrog/sim"
	"github.com/spf13/cobra"
)

var flagRealtime bool

var simulateCmd = &cobra.Command{
	Use:   "simulate [script.yaml]",
	Short: "Run the course headless from an input script",
	Long: `Run the default course without a window. Inputs come from a YAML script
of held actions per stretch of frames; with no script the built-in demo runs.

Actions: left, right, down, jump, dash, restart.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with a wall-clock ticker")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	script, err := loadScript(args)
	if err != nil {
		return err
	}
	d, err := newCourse()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(d, logger.For("sim"))
	var res sim.Result
	if flagRealtime {
		res, err = runner.RunRealtime(ctx, script)
	} else {
		res, err = runner.Run(ctx, script)
	}
	if err != nil {
		return err
	}

	final := res.Final
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d collected=%d/%d (%d%%) respawns=%d complete=%t elapsed=%v\n",
		res.Frames, final.Collected, final.Total, final.Percent, final.Respawns, final.Complete(), final.Elapsed)
	return nil
}

func loadScript(args []string) (*sim.Script, error) {
	if len(args) == 0 {
		return sim.Demo()
	}
	return sim.LoadScript(args[0])
}
