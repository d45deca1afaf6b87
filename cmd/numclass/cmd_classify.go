package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numclass/internal/classify"
	"numclass/internal/logging"
	"numclass/internal/render"
)

// classifyCmd classifies the configured range
func (c *cli) classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify every integer in a range",
		Long: `Classifies every integer in [lower, upper] and prints primes, then odds,
then evens. A lower bound above the upper bound classifies nothing.

Examples:
  numclass classify
  numclass classify --lower -10 --upper 10
  numclass classify --upper 1000 --format json`,
		Args: cobra.NoArgs,
		RunE: c.runClassify,
	}
	c.addRangeFlags(cmd)
	return cmd
}

func (c *cli) runClassify(cmd *cobra.Command, args []string) error {
	r := c.cfg.Range.ToRange()
	if r.Empty() {
		c.logger(logging.CategoryCLI).Warn("empty range, nothing to classify",
			zap.Int("lower", r.Lower),
			zap.Int("upper", r.Upper),
		)
	}

	classifier := classify.New(classify.WithLogger(c.logger(logging.CategoryClassify)))
	res := classifier.Classify(r)

	out, err := c.renderer(cmd)
	if err != nil {
		return err
	}
	if err := out.Result(res); err != nil {
		return wrapErr("failed to render result", err)
	}
	return nil
}

func (c *cli) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	format, err := render.ParseFormat(c.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return render.New(cmd.OutOrStdout(), render.Options{
		Format: format,
		Color:  c.cfg.Output.Color,
		Logger: c.logger(logging.CategoryRender),
	})
}
