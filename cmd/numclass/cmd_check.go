package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"numclass/internal/classify"
)

// checkCmd classifies individual integers
func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [n...]",
		Short: "Classify individual integers",
		Long: `Classifies each argument on its own and prints one line per value,
in argument order. Pass negative numbers after "--".

Examples:
  numclass check 12 13
  numclass check -- -4`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runCheck,
	}
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	nums := make([]classify.Number, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		nums = append(nums, classify.ClassifyOne(n))
	}

	out, err := c.renderer(cmd)
	if err != nil {
		return err
	}
	if err := out.Numbers(nums); err != nil {
		return wrapErr("failed to render result", err)
	}
	return nil
}
