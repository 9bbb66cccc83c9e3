// Package cmd provides the root command and CLI setup for bva.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/bva/internal/adapter"
	"github.com/mouse-blink/bva/internal/config"
	"github.com/mouse-blink/bva/internal/controller"
	"github.com/mouse-blink/bva/internal/domain"
)

var (
	configFlag  string
	verboseFlag bool

	cfg      config.Config
	logger   = zap.NewNop()
	workflow domain.Workflow
)

const rootLongDescription = `bva derives boundary values for the parameters of a single method.

Every comparison between a parameter and a literal in the method's if
conditions yields a pair of values: one that takes the branch and one
that does not. Go and Java sources are supported.

Settings are read from .bva.yaml (see "bva init").`

const listLongDescription = `List the methods of the given sources with their number of analyzable
parameters and conditions.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./cmd ./pkg    scan multiple directories`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bva",
		Short:        "Boundary value analysis for a single method",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every skipped comparison")

	return cmd
}

// setup loads the configuration and, unless one was injected, builds the
// workflow from it.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cfg = loaded

	logger, err = newLogger(verboseFlag)
	if err != nil {
		return err
	}

	if workflow != nil {
		return nil
	}

	workflow, err = newWorkflow(cmd, cfg, logger)

	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

func newWorkflow(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) (domain.Workflow, error) {
	aliases, err := cfg.AllTypeAliases()
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	extractor := domain.NewBoundaryExtractor(
		domain.WithExtractorLogger(logger.Named("extractor")),
		domain.WithMalformedPolicy(domain.MalformedPolicy(cfg.OnMalformed)),
	)

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewDefaultFrontendRegistry(),
		adapter.NewReportStore(),
		ui,
		extractor,
		domain.WithLogger(logger.Named("workflow")),
		domain.WithTypeAliases(aliases),
		domain.WithLoopConditions(cfg.IncludeLoops),
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
