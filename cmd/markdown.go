package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When
// rendering fails the raw markdown is still printed: losing styling is
// acceptable, losing the report is not.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot render markdown: %v\n", err)
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
