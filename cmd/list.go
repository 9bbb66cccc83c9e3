package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bva/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listParallelFlag int

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List methods and their analyzable parameters",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := listParallelFlag
			if !cmd.Flags().Changed("parallel") {
				threads = cfg.Parallel
			}

			return workflow.List(domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
				Threads: threads,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 1, "number of files parsed in parallel (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
