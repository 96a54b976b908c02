package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console owns the terminal: prompting, confirmation and blocking
// notifications. It satisfies app.Notifier and app.Confirmer.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Notify blocks until the user acknowledges, like the alert dialog the web
// client used for failures.
func (c *Console) Notify(message string) {
	fmt.Fprintf(c.out, "\n!! %s\n", message)
	fmt.Fprint(c.out, "Press Enter to continue... ")
	c.scanner.Scan()
}

// Confirm asks a yes/no question; anything but y/yes declines.
func (c *Console) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	if !c.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
	return answer == "y" || answer == "yes"
}

// Prompt reads one trimmed line under a label.
func (c *Console) Prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

// ReadCommand reads the next command line; ok is false on end of input.
func (c *Console) ReadCommand(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}
