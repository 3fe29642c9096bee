// Package cmd provides the CLI commands for rdcalc.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/config"
	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/rpgo/rd-calculator/internal/logging"
	rdmoney "github.com/rpgo/rd-calculator/pkg/decimal"
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	verbose  bool
	currency string
	format   string
	planName string

	config *domain.Configuration
	logger *zap.Logger
	engine *calculation.ProjectionEngine
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "rdcalc",
		Short: "Project recurring deposit maturity amounts and goal contributions",
		Long: `rdcalc projects a recurring deposit over 1 to 5 years.

Given a monthly deposit it reports the maturity amount for each duration.
Given a savings goal it reports the monthly deposit needed to reach it.

Examples:
  rdcalc maturity 1000
  rdcalc deposit 1,00,000 --plan quarterly-fixed
  rdcalc compare 2500 --format markdown
  rdcalc --config plans.hcl plans`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logging.Sync(a.logger) },
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "plan configuration file (.yaml, .json or .hcl)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.currency, "currency", "", "display currency code (default from config, else INR)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "output format (console, csv, json, markdown, html, pretty)")
	rootCmd.PersistentFlags().StringVarP(&a.planName, "plan", "p", "", "plan preset or configured plan name")

	rootCmd.AddCommand(
		newMaturityCmd(a),
		newDepositCmd(a),
		newCompareCmd(a),
		newPlansCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		cfg, err := config.NewInputParser().LoadFromFile(a.cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		a.config = cfg
	}

	logCfg := logging.DefaultConfig()
	if a.config != nil && a.config.Logging != nil {
		logCfg = logCfg.Merge(logging.Config{
			Level:  a.config.Logging.Level,
			Format: a.config.Logging.Format,
			Output: a.config.Logging.Output,
		})
	}
	if a.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}
	a.logger = logger

	a.engine = calculation.NewProjectionEngine()
	a.engine.SetLogger(logger.Sugar())
	a.logger.Debug("rdcalc initialized",
		zap.String("command", cmd.Name()),
		zap.String("config", a.cfgFile),
		zap.String("currency", a.displayCurrency()),
	)
	return nil
}

// displayCurrency resolves the currency flag, then the config, then INR.
func (a *app) displayCurrency() string {
	if a.currency != "" {
		return rdmoney.LookupCurrency(a.currency).Code
	}
	if a.config != nil && a.config.Currency != "" {
		return rdmoney.LookupCurrency(a.config.Currency).Code
	}
	return rdmoney.DefaultCurrency
}

func (a *app) resolvePlan() (*calculation.Plan, error) {
	return config.ResolvePlan(a.config, a.planName)
}

// allPlans returns the configured plans, or the presets when no config was loaded.
func (a *app) allPlans() ([]*calculation.Plan, error) {
	if a.config == nil {
		return calculation.Presets(), nil
	}
	return config.Plans(a.config)
}

func out(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out(cmd), "rdcalc version %s\n", Version)
		},
	}
}
