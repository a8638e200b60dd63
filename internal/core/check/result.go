package check

import "strconv"

// Severity orders check outcomes by badness. The ordinal doubles as the
// monitoring exit code (OK=0, WARN=1, CRIT=2, UNKNOWN=3).
type Severity int

const (
	StatusOK Severity = iota
	StatusWarn
	StatusCrit
	StatusUnknown
)

func (s Severity) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warning"
	case StatusCrit:
		return "critical"
	default:
		return "unknown"
	}
}

// Word is the uppercase status word used on the plugin output line.
func (s Severity) Word() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARNING"
	case StatusCrit:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) ExitCode() int {
	return int(s)
}

type Kind int

const (
	Number Kind = iota
	Boolean
)

// Metric is one named measurement extracted from the miner API.
// Context names the evaluation rule the metric is routed to.
type Metric struct {
	Name    string
	Kind    Kind
	Value   float64
	Bool    bool
	Unit    string
	Context string
}

func Numeric(name string, value float64, unit, context string) Metric {
	return Metric{Name: name, Kind: Number, Value: value, Unit: unit, Context: context}
}

func Bool(name string, value bool, context string) Metric {
	return Metric{Name: name, Kind: Boolean, Bool: value, Context: context}
}

// Result is the verdict of one context over one metric. Hint is only
// rendered when the severity is not OK.
type Result struct {
	Metric   Metric
	Severity Severity
	Hint     string
}

// Outcome is the aggregate of a full probe-evaluate cycle.
type Outcome struct {
	Severity Severity
	Problem  string
	Results  []Result
	PerfData []Perfdata
}

// FormatNumber renders a metric value the shortest way that round-trips,
// so whole numbers print without a decimal point.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
