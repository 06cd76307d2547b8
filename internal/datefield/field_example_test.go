package datefield_test

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datefield/internal/datefield"
)

// ExampleField demonstrates committing typed text into a range-limited field
func ExampleField() {
	field, err := datefield.New(nil, nil,
		datefield.WithMin(datefield.NewDate(2023, time.January, 1)),
		datefield.WithMax(datefield.NewDate(2023, time.December, 31)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, input := range []string{"24.12.2023", "1.2.2023", "01.01.2024", "31.02.2023"} {
		field.CommitTypedText(input)
		fmt.Printf("%-10s -> %q (%s)\n", input, field.Text(), field.State())
	}

	// Output:
	// 24.12.2023 -> "24.12.2023" (valid)
	// 1.2.2023   -> "01.02.2023" (valid)
	// 01.01.2024 -> "" (empty)
	// 31.02.2023 -> "" (empty)
}

// ExampleFormat shows the display format
func ExampleFormat() {
	fmt.Println(datefield.Format(datefield.NewDate(2023, time.October, 31)))
	// Output: 31.10.2023
}
