package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for a yes/no answer and returns true only on an explicit
// yes. Empty input or a read failure counts as no.
func Confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", WarningStyle.Render(prompt))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
