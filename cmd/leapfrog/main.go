// leapfrog runs the platformer course.
//
// Usage:
//
//	leapfrog play [--watch]          - Open a window and play the course
//	leapfrog simulate [script.yaml]  - Run the course headless from an input script
//	leapfrog config                  - Print the effective tuning as YAML
//
// Global flags:
//
//	--config <path>   - Tuning file (default: ./leapfrog.yaml if present)
//	--log-level <lvl> - Log level (default: LOG_LEVEL or info)
package main

import (
	"fmt"
	"os"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/course"
	"github.com/automoto/leapfrog/level"
	"github.com/automoto/leapfrog/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leapfrog",
	Short: "A platformer movement controller and level director",
	Long: `leapfrog plays a six-act platformer course: double jump, wall jump,
dash, one-way, bouncy and moving platforms, tokens, hazards and a goal.

Examples:
  leapfrog play
  leapfrog play --watch --config leapfrog.yaml
  leapfrog simulate run.yaml --realtime
  leapfrog config > leapfrog.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()
		if flagLogLevel != "" {
			return logger.SetLevel(flagLogLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newCourse loads the tuning and builds the default course.
func newCourse() (*level.Director, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	d, err := level.NewDirector(cfg, level.WithLogger(logger.For("level")))
	if err != nil {
		return nil, err
	}
	if err := d.Build(course.Default(cfg)); err != nil {
		return nil, fmt.Errorf("failed to build course: %w", err)
	}
	return d, nil
}
