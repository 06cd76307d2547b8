package cli

import (
	"encoding/json"
	"testing"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "canonical",
			args: []string{"parse", "24.12.2024"},
			want: "24.12.2024\n",
		},
		{
			name: "single digits normalised",
			args: []string{"parse", "1.2.2024"},
			want: "01.02.2024\n",
		},
		{
			name: "iso output",
			args: []string{"parse", "1.2.2024", "-o", "iso"},
			want: "2024-02-01\n",
		},
		{
			name:    "malformed",
			args:    []string{"parse", "2024-02-01"},
			wantErr: datefield.ErrInvalidInput,
		},
		{
			name:    "impossible day",
			args:    []string{"parse", "30.02.2024"},
			wantErr: datefield.ErrInvalidInput,
		},
		{
			name:    "below min",
			args:    []string{"parse", "31.12.2022", "--min", "2023-01-01", "--max", "2023-12-31"},
			wantErr: datefield.ErrOutOfRange,
		},
		{
			name: "inside range",
			args: []string{"parse", "15.06.2023", "--min", "2023-01-01", "--max", "2023-12-31"},
			want: "15.06.2023\n",
		},
		{
			name:    "inverted range",
			args:    []string{"parse", "15.06.2023", "--min", "2023-12-31", "--max", "2023-01-01"},
			wantErr: datefield.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, stdout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestParseCommand_EmptyText(t *testing.T) {
	stdout, _, err := runCLI(t, "parse", "")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestParseCommand_JSON(t *testing.T) {
	stdout, _, err := runCLI(t, "parse", "29.02.2024", "-o", "json")
	require.NoError(t, err)

	var res dateResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, dateResult{Text: "29.02.2024", Date: "2024-02-29", Valid: true}, res)

	stdout, _, err = runCLI(t, "parse", "29.02.2023", "-o", "json")
	require.ErrorIs(t, err, datefield.ErrInvalidInput)

	res = dateResult{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.False(t, res.Valid)
	assert.Empty(t, res.Text)
}

func TestParseCommand_RangeFromConfig(t *testing.T) {
	path := writeConfig(t, "min: 2023-01-01\nmax: 2023-12-31\n")

	_, _, err := runCLI(t, "parse", "01.01.2024", "--config", path)
	require.ErrorIs(t, err, datefield.ErrOutOfRange)

	// a flag overrides the file
	stdout, _, err := runCLI(t, "parse", "01.01.2024", "--config", path, "--max", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "01.01.2024\n", stdout)
}

func TestParseCommand_BadConfigDate(t *testing.T) {
	path := writeConfig(t, "min: 01.01.2023\n")

	_, _, err := runCLI(t, "parse", "01.01.2024", "--config", path)
	require.ErrorIs(t, err, datefield.ErrInvalidInput)
	assert.Contains(t, err.Error(), "config min")
}

func TestFormatCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "format", "2024-12-24")
	require.NoError(t, err)
	assert.Equal(t, "24.12.2024\n", stdout)

	_, _, err = runCLI(t, "format", "24.12.2024")
	require.ErrorIs(t, err, datefield.ErrInvalidInput)
}
