package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numclass/internal/config"
	"numclass/internal/logging"
)

// configCmd groups config file helpers
func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		// Overrides the root hook: the file being written may not parse.
		PersistentPreRunE: c.setupDefaults,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigInit(cmd, args, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  c.runConfigShow,
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE:  c.runConfigSchema,
	}

	cmd.AddCommand(initCmd, showCmd, schemaCmd)
	return cmd
}

func (c *cli) runConfigInit(cmd *cobra.Command, args []string, force bool) error {
	path := config.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	c.logger(logging.CategoryConfig).Info("wrote default config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func (c *cli) runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := c.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (c *cli) runConfigSchema(cmd *cobra.Command, args []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
