package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bva/internal/domain"
	m "github.com/mouse-blink/bva/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.yaml>",
		Short: "View a saved boundary value report",
		Long:  "View a report written by \"bva analyze --save\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
