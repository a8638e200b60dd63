package check

import (
	"context"
	"io"
	"log/slog"
)

// Prober produces the metric set for one check invocation.
type Prober interface {
	Probe(ctx context.Context) ([]Metric, error)
}

// Runner routes probed metrics to their contexts and aggregates the
// individual verdicts into one Outcome. It is the single recovery
// boundary: any probe failure becomes an UNKNOWN outcome instead of an
// error, so callers always get something printable.
type Runner struct {
	prober   Prober
	contexts map[string]Context
	log      *slog.Logger
}

func NewRunner(prober Prober, log *slog.Logger, contexts ...Context) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	byName := make(map[string]Context, len(contexts))
	for _, c := range contexts {
		byName[c.Name()] = c
	}
	return &Runner{prober: prober, contexts: byName, log: log}
}

func (r *Runner) Run(ctx context.Context) Outcome {
	metrics, err := r.prober.Probe(ctx)
	if err != nil {
		r.log.Debug("probe failed", "error", err)
		return Outcome{Severity: StatusUnknown, Problem: err.Error()}
	}

	var results []Result
	var perf []Perfdata
	overall := StatusOK
	for _, m := range metrics {
		c, ok := r.contexts[m.Context]
		if !ok {
			// API fields not mapped to a context yet are skipped.
			r.log.Debug("no context for metric", "metric", m.Name, "context", m.Context)
			continue
		}
		res := c.Evaluate(m)
		results = append(results, res)
		if res.Severity > overall {
			overall = res.Severity
		}
		if pd, ok := c.Performance(m); ok {
			perf = append(perf, pd)
		}
	}

	return Outcome{
		Severity: overall,
		Problem:  Problem(results),
		Results:  results,
		PerfData: perf,
	}
}
