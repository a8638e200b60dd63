package check

import (
	"fmt"
	"strings"
)

// Problem renders every non-OK result as "<name> <severity>: <hint>"
// joined with ", ". All-OK result sets yield the empty string.
func Problem(results []Result) string {
	var parts []string
	for _, r := range results {
		if r.Severity == StatusOK {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s: %s", r.Metric.Name, r.Severity, r.Hint))
	}
	return strings.Join(parts, ", ")
}

// Render builds the single plugin output line: the service name and
// status word, the problem description unless everything is OK, then
// the perfdata tokens after a pipe.
func Render(service string, o Outcome) string {
	var b strings.Builder
	b.WriteString(service)
	b.WriteString(" ")
	b.WriteString(o.Severity.Word())
	if o.Severity != StatusOK && o.Problem != "" {
		b.WriteString(" - ")
		b.WriteString(o.Problem)
	}
	if len(o.PerfData) > 0 {
		b.WriteString(" | ")
		b.WriteString(RenderPerfData(o.PerfData))
	}
	return b.String()
}
