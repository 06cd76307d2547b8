package cli

import (
	"errors"
	"fmt"

	"github.com/MikeBiancalana/datefield/internal/logger"
	"github.com/MikeBiancalana/datefield/internal/tui"
	"github.com/MikeBiancalana/datefield/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	outputFlag   string
	requiredFlag bool
	titleFlag    string
)

// ErrCancelled is returned when the user leaves the picker without submitting.
var ErrCancelled = errors.New("cancelled")

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a date interactively",
	Long:  "Open a date field with a pop-up calendar (CTRL+O) and print the submitted date.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(outputFlag)
		if err != nil {
			return err
		}

		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		// The terminal belongs to the UI from here on
		if err := logger.InitializeWithConfig(logger.Config{
			Level:   logger.GetLevel().String(),
			Format:  logger.GetFormat(),
			TUIMode: true,
		}); err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		defer logger.Close()

		loc := settings.locale()
		field, err := components.NewDateTextField(titleFlag, loc, settings.options()...)
		if err != nil {
			return err
		}

		model := tui.NewModel(titleFlag, field, loc, requiredFlag)
		p := tea.NewProgram(model, tea.WithOutput(cmd.ErrOrStderr()))
		if _, err := p.Run(); err != nil {
			return err
		}

		if model.Cancelled() {
			return ErrCancelled
		}

		d, ok := model.Result()
		if !ok && format != FormatJSON {
			fmt.Fprintln(cmd.ErrOrStderr(), loc.Msg("result.none"))
		}
		return writeDate(cmd.OutOrStdout(), format, d, ok)
	},
}

func addPickFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, iso, json)")
	cmd.Flags().BoolVar(&requiredFlag, "required", false, "refuse to submit an empty field")
	cmd.Flags().StringVar(&titleFlag, "title", "Datum", "label shown above the field")
}

func init() {
	addPickFlags(pickCmd)
}
