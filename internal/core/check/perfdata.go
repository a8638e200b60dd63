package check

import "strings"

// Perfdata is one performance-data entry in the standard
// label=value[unit];warn;crit;min;max form. Nil bounds render empty.
type Perfdata struct {
	Label string
	Value float64
	Unit  string
	Warn  *float64
	Crit  *float64
	Min   *float64
	Max   *float64
}

func (p Perfdata) String() string {
	fields := []string{
		p.Label + "=" + FormatNumber(p.Value) + p.Unit,
		formatBound(p.Warn),
		formatBound(p.Crit),
		formatBound(p.Min),
		formatBound(p.Max),
	}
	last := len(fields)
	for last > 1 && fields[last-1] == "" {
		last--
	}
	return strings.Join(fields[:last], ";")
}

func formatBound(b *float64) string {
	if b == nil {
		return ""
	}
	return FormatNumber(*b)
}

// RenderPerfData joins the entries into the token list appended after
// the pipe on the plugin output line.
func RenderPerfData(entries []Perfdata) string {
	tokens := make([]string, 0, len(entries))
	for _, e := range entries {
		tokens = append(tokens, e.String())
	}
	return strings.Join(tokens, " ")
}
