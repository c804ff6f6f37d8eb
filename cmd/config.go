package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/marcus/lightbox/internal/config"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the lightbox options",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective options as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		slog.Debug("config: loaded", "base_dir", getBaseDir(), "file", config.Exists(getBaseDir()))
		return output.JSON(opts)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write .lightbox/config.json",
	Long: `Prompts for each option and writes the answers to .lightbox/config.json.
With --defaults, or when stdin is not a terminal, the current options are
written without prompting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := getBaseDir()
		opts, err := config.Load(dir)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if config.Exists(dir) && !force {
			err := errors.New("config already exists; use --force to overwrite")
			output.Error("%v", err)
			return err
		}

		useDefaults, _ := cmd.Flags().GetBool("defaults")
		if !useDefaults && term.IsTerminal(int(os.Stdin.Fd())) {
			if err := optionsForm(&opts).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					output.Warning("aborted, nothing written")
					return nil
				}
				output.Error("%v", err)
				return err
			}
		}

		if err := config.Save(dir, opts); err != nil {
			output.Error("%v", err)
			return err
		}
		slog.Debug("config: saved", "path", config.Path(dir), "preview", opts.Preview, "overflow", opts.Overflow)
		output.Success("Wrote %s", config.Path(dir))
		return nil
	},
}

// optionsForm prompts for every option, prefilled from opts
func optionsForm(opts *models.Options) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show the preview strip?").
				Value(&opts.Preview),
			huh.NewConfirm().
				Title("Lock page scrolling while the lightbox is open?").
				Value(&opts.Overflow),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Preloader markup").
				Description("Shown while media loads. Leave empty for none.").
				Value(&opts.Preloader),
			huh.NewInput().
				Title("Next arrow label").
				Placeholder(models.DefaultArrowLeft).
				Value(&opts.ArrowLeft),
			huh.NewInput().
				Title("Prev arrow label").
				Placeholder(models.DefaultArrowRight).
				Value(&opts.ArrowRight),
		),
	)
}

func init() {
	configInitCmd.Flags().Bool("defaults", false, "Write without prompting")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
