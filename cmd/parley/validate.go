package main

import (
	"fmt"
	"os"

	"github.com/parley-sh/parley/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [workflow.yaml]",
	Short: "Check a workflow file for consistency",
	Long:  `Parses the workflow and reports structural problems without running anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "workflow.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := cli.Validate(path); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Workflow is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
