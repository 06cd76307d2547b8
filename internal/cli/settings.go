package cli

import (
	"fmt"

	"github.com/MikeBiancalana/datefield/internal/config"
	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/locale"
	"github.com/spf13/cobra"
)

// fieldSettings is the field configuration after merging flags over the
// config file.
type fieldSettings struct {
	bounds  datefield.Range
	initial *datefield.Date
	lang    string
}

func resolveSettings(cmd *cobra.Command) (fieldSettings, error) {
	cfg := fileConfig
	if cfg == nil {
		cfg = &config.File{}
	}

	minDate, err := resolveDate(cmd, "min", minFlag, cfg.Min)
	if err != nil {
		return fieldSettings{}, err
	}
	maxDate, err := resolveDate(cmd, "max", maxFlag, cfg.Max)
	if err != nil {
		return fieldSettings{}, err
	}
	initial, err := resolveDate(cmd, "initial", initialFlag, cfg.Initial)
	if err != nil {
		return fieldSettings{}, err
	}

	bounds, err := datefield.NewRange(minDate, maxDate)
	if err != nil {
		return fieldSettings{}, err
	}

	lang := cfg.Lang
	if cmd.Flags().Changed("lang") {
		lang = langFlag
	}

	return fieldSettings{bounds: bounds, initial: initial, lang: lang}, nil
}

// resolveDate prefers an explicitly set flag, then the config value.
func resolveDate(cmd *cobra.Command, name string, flagValue datefield.Date, configValue string) (*datefield.Date, error) {
	if cmd.Flags().Changed(name) {
		d := flagValue
		return &d, nil
	}
	if configValue == "" {
		return nil, nil
	}
	d, err := datefield.ParseISO(configValue)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return &d, nil
}

func (s fieldSettings) options() []datefield.Option {
	opts := []datefield.Option{datefield.WithRange(s.bounds)}
	if s.initial != nil {
		opts = append(opts, datefield.WithInitial(*s.initial))
	}
	return opts
}

func (s fieldSettings) locale() *locale.Locale {
	return locale.New(s.lang)
}

// file renders the settings in config file form.
func (s fieldSettings) file() config.File {
	f := config.File{Lang: s.lang}
	if s.bounds.Min != nil {
		f.Min = s.bounds.Min.ISO()
	}
	if s.bounds.Max != nil {
		f.Max = s.bounds.Max.ISO()
	}
	if s.initial != nil {
		f.Initial = s.initial.ISO()
	}
	return f
}
