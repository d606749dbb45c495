package main

import (
	"fmt"
	"os"

	"github.com/parley-sh/parley/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [workflow.yaml]",
	Short: "Run a workflow",
	Long:  `Loads the workflow file and executes its actions in order, prompting on the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = "workflow.yaml"
		}

		phase, _ := cmd.Flags().GetString("hook")
		vars, _ := cmd.Flags().GetStringArray("var")
		session, _ := cmd.Flags().GetString("session")
		redisAddr, _ := cmd.Flags().GetString("persist")
		maskVars, _ := cmd.Flags().GetStringArray("mask")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
		plain, _ := cmd.Flags().GetBool("plain")
		verbose, _ := cmd.Flags().GetBool("verbose")

		opts := cli.RunOptions{
			WorkflowPath: path,
			Phase:        phase,
			Vars:         vars,
			Session:      session,
			RedisAddr:    redisAddr,
			MaskVars:     maskVars,
			MetricsAddr:  metricsAddr,
			Plain:        plain,
			Verbose:      verbose,
		}
		if err := opts.Execute(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("file", "f", "workflow.yaml", "Workflow file to run")
	runCmd.Flags().String("hook", "all", "Hook phase to run (before, after or all)")
	runCmd.Flags().StringArray("var", nil, "Seed a variable (key=value, repeatable)")
	runCmd.Flags().String("session", "", "Session name for persisted variables (defaults to the workflow name)")
	runCmd.Flags().String("persist", "", "Redis address for session persistence (host:port)")
	runCmd.Flags().StringArray("mask", nil, "Mask variables matching this pattern before persisting (repeatable)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	runCmd.Flags().Bool("plain", false, "Plain output: no banner, no colors, no markdown rendering")

	// Make 'run' the default when no subcommand is given.
	rootCmd.Run = runCmd.Run
}
