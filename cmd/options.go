package cmd

import (
	"github.com/marcus/lightbox/internal/config"
	"github.com/marcus/lightbox/internal/models"
	"github.com/spf13/cobra"
)

// optionFlags are the lightbox options that can be overridden per run
type optionFlags struct {
	noPreview  bool
	noOverflow bool
	preloader  string
	arrowLeft  string
	arrowRight string
}

func addOptionFlags(c *cobra.Command, f *optionFlags) {
	c.Flags().BoolVar(&f.noPreview, "no-preview", false, "hide the thumbnail strip")
	c.Flags().BoolVar(&f.noOverflow, "no-overflow", false, "keep the page scrollable while the overlay is open")
	c.Flags().StringVar(&f.preloader, "preloader", "", "loading indicator markup")
	c.Flags().StringVar(&f.arrowLeft, "arrow-left", "", "label of the next control")
	c.Flags().StringVar(&f.arrowRight, "arrow-right", "", "label of the prev control")
}

// apply overrides opts with the flags set on the command line
func (f *optionFlags) apply(c *cobra.Command, opts models.Options) models.Options {
	flags := c.Flags()
	if flags.Changed("no-preview") {
		opts.Preview = !f.noPreview
	}
	if flags.Changed("no-overflow") {
		opts.Overflow = !f.noOverflow
	}
	if flags.Changed("preloader") {
		opts.Preloader = f.preloader
	}
	if flags.Changed("arrow-left") {
		opts.ArrowLeft = f.arrowLeft
	}
	if flags.Changed("arrow-right") {
		opts.ArrowRight = f.arrowRight
	}
	return opts
}

// loadOptions reads the config file and applies the command line on top
func loadOptions(c *cobra.Command, f *optionFlags) (models.Options, error) {
	opts, err := config.Load(getBaseDir())
	if err != nil {
		return models.Options{}, err
	}
	return f.apply(c, opts), nil
}
