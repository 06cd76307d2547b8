package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MikeBiancalana/datefield/internal/datefield"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatISO  OutputFormat = "iso"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "iso":
		return FormatISO, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, iso, json)", s)
	}
}

// dateResult is the JSON shape of a field's state.
type dateResult struct {
	Text  string `json:"text"`
	Date  string `json:"date,omitempty"`
	Valid bool   `json:"valid"`
}

func writeDate(w io.Writer, format OutputFormat, d datefield.Date, ok bool) error {
	switch format {
	case FormatJSON:
		res := dateResult{Valid: ok}
		if ok {
			res.Text = datefield.Format(d)
			res.Date = d.ISO()
		}
		return json.NewEncoder(w).Encode(res)
	case FormatISO:
		if !ok {
			return nil
		}
		_, err := fmt.Fprintln(w, d.ISO())
		return err
	default:
		if !ok {
			return nil
		}
		_, err := fmt.Fprintln(w, datefield.Format(d))
		return err
	}
}
