package formatter_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/diagkit/formatter"
)

func ExampleMessage() {
	msg := formatter.Message("support set size ", 4, ", radius ", 0.70710678, "\n")
	fmt.Print(msg)
	// Output:
	// support set size 4, radius 0.707107
}

func ExampleWriteLapse() {
	formatter.WriteLapse(os.Stdout, "pivoting", 0.0123456)
	// Output:
	// Timer 'pivoting': 0.012346s
}
