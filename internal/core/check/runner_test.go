package check

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeProber struct {
	metrics []Metric
	err     error
}

func (p *fakeProber) Probe(ctx context.Context) ([]Metric, error) {
	return p.metrics, p.err
}

func testContexts() []Context {
	return []Context{
		&BelowThreshold{NameValue: "hashrate", Warning: bound(10), Critical: bound(5)},
		&BelowThreshold{NameValue: "uptime"},
		&AboveThreshold{NameValue: "temperature", Warning: bound(70), Critical: bound(90)},
		&BoolEquality{NameValue: "alive", Expected: true, Critical: true},
	}
}

func TestRunnerAggregatesWorstSeverity(t *testing.T) {
	prober := &fakeProber{metrics: []Metric{
		Numeric("hashrate", 50, "MH/s", "hashrate"),
		Numeric("temperature_0", 75, "C", "temperature"),
		Bool("alive_0", false, "alive"),
	}}
	runner := NewRunner(prober, nil, testContexts()...)

	outcome := runner.Run(context.Background())
	if outcome.Severity != StatusCrit {
		t.Fatalf("unexpected severity: %s", outcome.Severity)
	}
	if len(outcome.Results) != 3 {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}
	if !strings.Contains(outcome.Problem, "alive_0 is not True") {
		t.Fatalf("unexpected problem text: %q", outcome.Problem)
	}
}

func TestRunnerEmptyMetricSetIsOK(t *testing.T) {
	runner := NewRunner(&fakeProber{}, nil, testContexts()...)
	outcome := runner.Run(context.Background())
	if outcome.Severity != StatusOK {
		t.Fatalf("unexpected severity: %s", outcome.Severity)
	}
	if outcome.Problem != "" {
		t.Fatalf("unexpected problem text: %q", outcome.Problem)
	}
}

func TestRunnerProbeFailureIsUnknown(t *testing.T) {
	prober := &fakeProber{err: errors.New("API error: bad command (code 14)")}
	runner := NewRunner(prober, nil, testContexts()...)

	outcome := runner.Run(context.Background())
	if outcome.Severity != StatusUnknown {
		t.Fatalf("unexpected severity: %s", outcome.Severity)
	}
	if !strings.Contains(outcome.Problem, "bad command") {
		t.Fatalf("unexpected problem text: %q", outcome.Problem)
	}
	if len(outcome.Results) != 0 || len(outcome.PerfData) != 0 {
		t.Fatalf("failure outcome must not carry partial results")
	}
}

func TestRunnerDropsUnregisteredContext(t *testing.T) {
	prober := &fakeProber{metrics: []Metric{
		Numeric("fan_0", 3000, "rpm", "fan"),
		Numeric("hashrate", 50, "MH/s", "hashrate"),
	}}
	runner := NewRunner(prober, nil, testContexts()...)

	outcome := runner.Run(context.Background())
	if outcome.Severity != StatusOK {
		t.Fatalf("unexpected severity: %s", outcome.Severity)
	}
	if len(outcome.Results) != 1 {
		t.Fatalf("unexpected result count: %d", len(outcome.Results))
	}
	if outcome.Results[0].Metric.Name != "hashrate" {
		t.Fatalf("unexpected metric: %s", outcome.Results[0].Metric.Name)
	}
}

func TestRunnerPerfDataSkipsBooleans(t *testing.T) {
	prober := &fakeProber{metrics: []Metric{
		Numeric("hashrate", 50, "MH/s", "hashrate"),
		Numeric("uptime", 3600, "s", "uptime"),
		Bool("alive_0", true, "alive"),
	}}
	runner := NewRunner(prober, nil, testContexts()...)

	outcome := runner.Run(context.Background())
	if got := RenderPerfData(outcome.PerfData); got != "hashrate=50MH/s;10;5 uptime=3600s" {
		t.Fatalf("unexpected perfdata: %q", got)
	}
}
