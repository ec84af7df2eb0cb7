package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vsariola/scopetrainer/cmd"
	"github.com/vsariola/scopetrainer/trainer"
	"github.com/vsariola/scopetrainer/version"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scope-script",
		Short: "Drive the oscilloscope trainer without a window",
		Long: `scope-script replays a scripted session against the oscilloscope
trainer: it operates controls, clicks and drags at screen coordinates,
advances time and saves what the scope screen shows as PNG files.

It is meant for checking tutorials and rendering documentation images.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Read configuration from file instead of the user config directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newRunCmd(),
		newStepsCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := version.VersionOrHash
			if v == "" {
				v = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scope-script version %s\n", v)
		},
	}
}

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps [tutorial.yml]",
		Short: "List the steps of a tutorial",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tut := trainer.DefaultTutorial()
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				steps, err := trainer.DecodeTutorialSteps(data)
				if err != nil {
					return err
				}
				tut = trainer.NewTutorial(steps)
			}
			out := cmd.OutOrStdout()
			for i, s := range tut.Steps {
				expected := "-"
				if s.Expected != trainer.NoControl {
					expected = s.Expected.String()
				}
				fmt.Fprintf(out, "%2d  %-12s %-10s %s\n", i+1, s.ID, expected, s.Title)
			}
			return nil
		},
	}
	return cmd
}

// loadConfig reads the --config flag, falling back to the user config. A
// config that cannot be read or decoded is kept in YmlError for the model to
// report as an alert; the session runs with what could be decoded.
func loadConfig(c *cobra.Command) trainer.Config {
	path, _ := c.Flags().GetString("config")
	if path == "" {
		return trainer.MakeConfig()
	}
	config, err := trainer.ReadConfig(path)
	if err != nil {
		config.YmlError = err
	}
	return config
}

func newLogger(c *cobra.Command) *zap.Logger {
	debug, _ := c.Flags().GetBool("debug")
	return cmd.NewLogger("", debug)
}
