// Package report collects per-theme problems during a run and prints the
// end-of-run summary.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Collector is an append-only list of human-readable error messages.
// The zero value is ready to use.
type Collector struct {
	errors []string
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records msg.
func (c *Collector) Add(msg string) {
	c.errors = append(c.errors, msg)
}

// AddError records err's message.
func (c *Collector) AddError(err error) {
	c.Add(err.Error())
}

// Merge appends every message of other, keeping their order.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.errors = append(c.errors, other.errors...)
}

// Errors returns a copy of the recorded messages.
func (c *Collector) Errors() []string {
	return append([]string(nil), c.errors...)
}

// Len returns the number of recorded messages.
func (c *Collector) Len() int {
	return len(c.errors)
}

// Summary is the outcome of a run.
type Summary struct {
	// Processed counts the themes whose page was written.
	Processed int
	Errors    []string
}

const ruleWidth = 60

// Write prints the error block, when there are errors, followed by the counts.
func (s Summary) Write(w io.Writer) error {
	var b strings.Builder

	if len(s.Errors) > 0 {
		heavy := strings.Repeat("=", ruleWidth)
		light := strings.Repeat("-", ruleWidth)

		b.WriteString("\n\n" + heavy + "\n")
		b.WriteString("ERROR SUMMARY:\n")
		b.WriteString(light + "\n")
		for _, msg := range s.Errors {
			b.WriteString(msg + "\n")
			b.WriteString(light + "\n")
		}
		b.WriteString(heavy + "\n\n")
	}

	fmt.Fprintf(&b, "\nThemes successfully processed: %d\n", s.Processed)
	fmt.Fprintf(&b, "Themes with errors: %d\n", len(s.Errors))

	_, err := io.WriteString(w, b.String())
	return err
}
