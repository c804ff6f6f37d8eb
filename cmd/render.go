package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/output"
	"github.com/marcus/lightbox/internal/registry"
	"github.com/marcus/lightbox/internal/render"
	"github.com/spf13/cobra"
)

var renderFlags optionFlags

// renderedFrame is the JSON shape of render --json
type renderedFrame struct {
	Item     models.MediaItem `json:"item"`
	Group    string           `json:"group,omitempty"`
	Position int              `json:"position"`
	Classes  []string         `json:"classes"`
	HTML     string           `json:"html"`
}

// renderStep is one session input applied before rendering
type renderStep struct {
	dir   models.Direction
	count int
}

var renderCmd = &cobra.Command{
	Use:   "render PAGE",
	Short: "Print the overlay markup for an item",
	Long: `Opens the lightbox on --item, applies --next then --prev steps inside its
group, then each --step in order, and prints the resulting overlay fragment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		fail := func(code string, err error) error {
			if jsonOutput {
				output.JSONError(code, err.Error())
			} else {
				output.Error("%v", err)
			}
			return err
		}

		opts, err := loadOptions(cmd, &renderFlags)
		if err != nil {
			return fail("config", err)
		}
		reg, err := registry.ScanFile(args[0])
		if err != nil {
			return fail("scan_failed", err)
		}

		id, _ := cmd.Flags().GetInt("item")
		next, _ := cmd.Flags().GetInt("next")
		prev, _ := cmd.Flags().GetInt("prev")
		hide, _ := cmd.Flags().GetBool("hide-controls")
		stepArgs, _ := cmd.Flags().GetStringSlice("step")

		steps, err := parseSteps(stepArgs)
		if err != nil {
			return fail("bad_step", err)
		}
		steps = append([]renderStep{{models.Next, next}, {models.Prev, prev}}, steps...)

		frame, err := renderPage(reg, opts, id, hide, steps...)
		if err != nil {
			return fail("not_found", err)
		}

		if !jsonOutput {
			fmt.Fprintln(output.Stdout, frame.HTML)
			return nil
		}
		return output.JSON(frame)
	},
}

// parseSteps turns --step values such as "next" or "p" into single steps
func parseSteps(values []string) ([]renderStep, error) {
	steps := make([]renderStep, 0, len(values))
	for _, v := range values {
		dir, ok := models.ParseDirection(strings.TrimSpace(v))
		if !ok {
			return nil, fmt.Errorf("unknown step %q (want next or prev)", v)
		}
		steps = append(steps, renderStep{dir, 1})
	}
	return steps, nil
}

// renderPage opens a session on item id, replays steps and renders the frame
func renderPage(reg *registry.Registry, opts models.Options, id int, hideControls bool, steps ...renderStep) (renderedFrame, error) {
	session := gallery.NewSession(gallery.NewIndex(reg), opts, nil)
	if !session.ActivateID(id) {
		return renderedFrame{}, fmt.Errorf("no item %d on page (%d items)", id, reg.Len())
	}
	for _, step := range steps {
		for i := 0; i < step.count; i++ {
			session.Navigate(step.dir)
		}
	}
	if hideControls {
		session.ToggleControls()
	}

	st := session.State()
	frame := render.New(opts).Frame(st)
	markup, err := render.HTML(frame)
	if err != nil {
		return renderedFrame{}, err
	}

	out := renderedFrame{
		Item:     *st.Item,
		Position: st.Position,
		Classes:  frame.Classes(),
		HTML:     markup,
	}
	if st.Group != nil {
		out.Group = st.Group.Name
	}
	slog.Debug("render: frame", "item", out.Item.ID, "group", out.Group, "position", out.Position, "bytes", len(markup))
	return out, nil
}

func init() {
	addOptionFlags(renderCmd, &renderFlags)
	renderCmd.Flags().Int("item", 0, "ID of the item to open")
	renderCmd.Flags().Int("next", 0, "Steps forward inside the group")
	renderCmd.Flags().Int("prev", 0, "Steps back inside the group")
	renderCmd.Flags().StringSlice("step", nil, "Further steps after --next/--prev, e.g. next,prev,prev")
	renderCmd.Flags().Bool("hide-controls", false, "Render with controls hidden")
	renderCmd.Flags().Bool("json", false, "Machine-readable JSON")
	rootCmd.AddCommand(renderCmd)
}
