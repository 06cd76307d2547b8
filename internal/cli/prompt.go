package cli

import (
	"errors"
	"fmt"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for a date with a simple inline prompt",
	Long:  "Ask for a DD.MM.YYYY date without the calendar. Input is validated against --min/--max before it is accepted.",
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

		field, err := datefield.New(nil, nil, settings.options()...)
		if err != nil {
			return err
		}

		raw, err := runDatePrompt(titleFlag, settings, field.Text())
		if err != nil {
			return err
		}

		field.CommitTypedText(raw)
		d, ok := field.Value()
		return writeDate(cmd.OutOrStdout(), format, d, ok)
	},
}

// runDatePrompt shows a huh input prefilled with initial.
func runDatePrompt(title string, settings fieldSettings, initial string) (string, error) {
	loc := settings.locale()
	raw := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(loc.Msg("field.placeholder")).
				Description(promptDescription(settings.bounds)).
				CharLimit(10).
				Value(&raw).
				Validate(promptValidator(settings.bounds, requiredFlag, loc.Msg("field.required"))),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return raw, nil
}

// promptValidator applies the same rules as a field commit, so the prompt
// refuses what the field would reset to empty.
func promptValidator(bounds datefield.Range, required bool, requiredMsg string) func(string) error {
	return func(s string) error {
		if s == "" {
			if required {
				return errors.New(requiredMsg)
			}
			return nil
		}
		_, err := datefield.Validate(s, bounds)
		return err
	}
}

func promptDescription(bounds datefield.Range) string {
	if !bounds.IsSet() {
		return ""
	}
	return bounds.String()
}

func init() {
	addPickFlags(promptCmd)
}
