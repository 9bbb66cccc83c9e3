package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bva/internal/domain"
	m "github.com/mouse-blink/bva/internal/model"
)

var analyzeLineFlag int
var analyzeSaveFlag bool
var analyzeReportsFlag string

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file> <method>",
		Short: "Derive boundary values for one method",
		Long: `Derive boundary values for the parameters of one method.

The method is given by name, or as Type.name for Go methods and Java
classes. Overloaded methods need --line with the declaration line.

Integer values are computed as 64-bit signed integers: a uint64 parameter
compared with a literal above 9223372036854775807 is reported as a
malformed literal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			reports := analyzeReportsFlag
			if reports == "" {
				reports = cfg.Reports
			}

			return workflow.Analyze(domain.AnalyzeArgs{
				Path:    m.Path(args[0]),
				Method:  args[1],
				Line:    analyzeLineFlag,
				Save:    analyzeSaveFlag,
				Reports: m.Path(reports),
			})
		},
	}
	cmd.Flags().IntVarP(&analyzeLineFlag, "line", "l", 0, "declaration line of the method, for overloads")
	cmd.Flags().BoolVarP(&analyzeSaveFlag, "save", "s", false, "save the result as a YAML report")
	cmd.Flags().StringVarP(&analyzeReportsFlag, "output", "o", "", "reports directory (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
