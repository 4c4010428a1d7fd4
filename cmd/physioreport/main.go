package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/physioreport/internal/config"
	"github.com/mrsinham/physioreport/internal/logging"
	"github.com/mrsinham/physioreport/internal/narrative"
	"github.com/mrsinham/physioreport/internal/report"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, out, errOut io.Writer) int {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app carries what every subcommand needs once the root has loaded the
// configuration.
type app struct {
	cfgPath  string
	logLevel string

	cfg       *config.Config
	log       *zap.Logger
	assembler *report.Assembler
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:               "physioreport",
		Short:             "Generate physiotherapy report narratives",
		Long:              "physioreport turns structured physiotherapy assessment data into the text of a clinical report.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(renderCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(importLiteCmd(a))
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(wizardCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}

	cache, err := narrative.NewCache(cfg.CacheSize)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.With(zap.String("command", cmd.Name()))
	a.assembler = report.NewAssembler(cache)
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgPath),
		zap.String("render_format", cfg.Render.Format),
		zap.Int("cache_size", cfg.CacheSize))
	return nil
}

// loadReport reads a report file and logs its advisory warnings.
func (a *app) loadReport(path string) (report.ReportData, error) {
	d, err := report.Load(path)
	if err != nil {
		return report.ReportData{}, err
	}
	for _, w := range report.Validate(d) {
		a.log.Warn("report warning", zap.String("field", w.Field), zap.String("message", w.Message))
	}
	return d, nil
}
