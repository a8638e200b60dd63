package check

import "fmt"

// Context evaluates one metric into a Result. Performance reports the
// perfdata entry for the metric, or false when the context contributes
// none (boolean contexts).
type Context interface {
	Name() string
	Evaluate(m Metric) Result
	Performance(m Metric) (Perfdata, bool)
}

// BelowThreshold raises when the value drops to or under a bound. Used
// for metrics where low is bad: a stalled rig reports near-zero
// hashrate, a freshly restarted one near-zero uptime.
type BelowThreshold struct {
	NameValue string
	Warning   *float64
	Critical  *float64
}

func (c *BelowThreshold) Name() string {
	return c.NameValue
}

func (c *BelowThreshold) Evaluate(m Metric) Result {
	if c.Critical != nil && m.Value <= *c.Critical {
		return Result{
			Metric:   m,
			Severity: StatusCrit,
			Hint:     fmt.Sprintf("%s<=%s%s", FormatNumber(m.Value), FormatNumber(*c.Critical), m.Unit),
		}
	}
	if c.Warning != nil && m.Value <= *c.Warning {
		return Result{
			Metric:   m,
			Severity: StatusWarn,
			Hint:     fmt.Sprintf("%s<=%s%s", FormatNumber(m.Value), FormatNumber(*c.Warning), m.Unit),
		}
	}
	return Result{Metric: m, Severity: StatusOK}
}

func (c *BelowThreshold) Performance(m Metric) (Perfdata, bool) {
	return Perfdata{
		Label: m.Name,
		Value: m.Value,
		Unit:  m.Unit,
		Warn:  c.Warning,
		Crit:  c.Critical,
	}, true
}

// AboveThreshold is the usual upper-bound rule for temperatures.
type AboveThreshold struct {
	NameValue string
	Warning   *float64
	Critical  *float64
}

func (c *AboveThreshold) Name() string {
	return c.NameValue
}

func (c *AboveThreshold) Evaluate(m Metric) Result {
	if c.Critical != nil && m.Value >= *c.Critical {
		return Result{
			Metric:   m,
			Severity: StatusCrit,
			Hint:     fmt.Sprintf("%s>=%s%s", FormatNumber(m.Value), FormatNumber(*c.Critical), m.Unit),
		}
	}
	if c.Warning != nil && m.Value >= *c.Warning {
		return Result{
			Metric:   m,
			Severity: StatusWarn,
			Hint:     fmt.Sprintf("%s>=%s%s", FormatNumber(m.Value), FormatNumber(*c.Warning), m.Unit),
		}
	}
	return Result{Metric: m, Severity: StatusOK}
}

func (c *AboveThreshold) Performance(m Metric) (Perfdata, bool) {
	return Perfdata{
		Label: m.Name,
		Value: m.Value,
		Unit:  m.Unit,
		Warn:  c.Warning,
		Crit:  c.Critical,
	}, true
}

// BoolEquality compares a boolean metric against an expected value. A
// mismatch raises the configured severity, or stays informational when
// neither tier is enabled.
type BoolEquality struct {
	NameValue string
	Expected  bool
	Warning   bool
	Critical  bool
}

func (c *BoolEquality) Name() string {
	return c.NameValue
}

func (c *BoolEquality) Evaluate(m Metric) Result {
	if m.Bool == c.Expected {
		return Result{Metric: m, Severity: StatusOK}
	}
	severity := StatusOK
	if c.Critical {
		severity = StatusCrit
	} else if c.Warning {
		severity = StatusWarn
	}
	return Result{
		Metric:   m,
		Severity: severity,
		Hint:     fmt.Sprintf("%s is not %s", m.Name, pythonBool(c.Expected)),
	}
}

func (c *BoolEquality) Performance(m Metric) (Perfdata, bool) {
	return Perfdata{}, false
}

// Downstream consumers of the historical plugin parse the Python
// literal casing, so it is kept as-is.
func pythonBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
