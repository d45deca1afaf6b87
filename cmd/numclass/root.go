package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numclass/internal/config"
	"numclass/internal/logging"
)

// cli holds flag values and the state built in PersistentPreRunE.
type cli struct {
	// Global flags
	configPath string
	verbose    bool
	format     string
	color      bool

	// Range flags
	lower int
	upper int

	cfg *config.Config
	log *logging.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state from leaking between invocations.
func newRootCmd() *cobra.Command {
	c := &cli{}

	// rootCmd represents the base command
	rootCmd := &cobra.Command{
		Use:   "numclass",
		Short: "Classify integers as prime, odd or even",
		Long: `numclass walks an inclusive integer range in ascending order and sorts
every value into exactly one of three groups:

  - prime numbers
  - odd numbers that are not prime (with their divisors)
  - even numbers that are not prime (with their divisors)

Primes are printed first, then odds, then evens.

Run without arguments to classify the configured range (default 1..100).`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				c.log.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: c.runClassify,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&c.format, "format", "f", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&c.color, "color", false, "Color labels when stdout is a terminal")
	c.addRangeFlags(rootCmd)

	rootCmd.AddCommand(c.classifyCmd())
	rootCmd.AddCommand(c.checkCmd())
	rootCmd.AddCommand(c.configCmd())

	return rootCmd
}

func (c *cli) addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.lower, "lower", 1, "Lower bound of the range (inclusive)")
	cmd.Flags().IntVar(&c.upper, "upper", 100, "Upper bound of the range (inclusive)")
}

// setup loads the config file, applies flag overrides and builds the
// logger for this invocation.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = c.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = c.color
	}
	if flags.Changed("lower") {
		cfg.Range.Lower = c.lower
	}
	if flags.Changed("upper") {
		cfg.Range.Upper = c.upper
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := c.initLogger(cfg); err != nil {
		return err
	}

	c.log.Get(logging.CategoryConfig).Debug("config loaded",
		zap.String("path", c.configPath),
		zap.Int("lower", cfg.Range.Lower),
		zap.Int("upper", cfg.Range.Upper),
		zap.String("format", cfg.Output.Format),
	)
	c.log.Get(logging.CategoryCLI).Debug("running command", zap.String("command", cmd.CommandPath()))
	return nil
}

// setupDefaults skips the config file so that commands which replace it
// still work when the existing file is broken.
func (c *cli) setupDefaults(cmd *cobra.Command, args []string) error {
	if err := c.initLogger(config.DefaultConfig()); err != nil {
		return err
	}
	c.log.Get(logging.CategoryCLI).Debug("running command without config file", zap.String("command", cmd.CommandPath()))
	return nil
}

func (c *cli) initLogger(cfg *config.Config) error {
	log, err := logging.New(cfg.Logging, c.verbose)
	if err != nil {
		return err
	}
	c.log = log.With(zap.String("run_id", uuid.NewString()))
	c.cfg = cfg
	return nil
}

func (c *cli) logger(category logging.Category) *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log.Get(category)
}

func wrapErr(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
