package cli

import (
	"fmt"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <DD.MM.YYYY>",
	Short: "Commit typed text without a UI",
	Long: `Run the field's commit step on the given text and print the normalised
result. Text that is malformed or outside --min/--max is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(outputFlag)
		if err != nil {
			return err
		}

		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		field, err := datefield.New(nil, nil, datefield.WithRange(settings.bounds))
		if err != nil {
			return err
		}

		raw := args[0]
		field.CommitTypedText(raw)
		d, ok := field.Value()

		if err := writeDate(cmd.OutOrStdout(), format, d, ok); err != nil {
			return err
		}

		if !ok && raw != "" {
			// the field swallows the reason, so ask the validator for it
			_, verr := datefield.Validate(raw, settings.bounds)
			return fmt.Errorf("rejected %q: %w", raw, verr)
		}
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <YYYY-MM-DD>",
	Short: "Print an ISO date as DD.MM.YYYY",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := datefield.ParseISO(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), datefield.Format(d))
		return err
	},
}

func init() {
	parseCmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, iso, json)")
}
