package interview

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders pairs with 1-based ordinal numbering for display.
func FormatMarkdown(pairs []QAPair) string {
	var b strings.Builder
	for i, p := range pairs {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, p.Question)
		fmt.Fprintf(&b, "Suggested Answer: %s\n\n", p.Answer)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
