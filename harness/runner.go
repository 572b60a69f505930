package harness

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Config configures a Runner
type Config struct {
	Logger *zap.Logger
	// FailFast stops the run at the first failure. Remaining cases are marked as skipped.
	FailFast bool
	// Parallel runs every case concurrently. Ignored when FailFast is set.
	Parallel bool
}

// Runner runs cases and summarizes their results
type Runner struct {
	Config
}

// New returns a Runner for the given config
func New(config Config) *Runner {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Runner{Config: config}
}

type counters struct {
	passed  atomic.Int64
	failed  atomic.Int64
	skipped atomic.Int64
}

// Run runs all cases and returns their results in the same order
func (r *Runner) Run(cases []Case) Summary {
	results := make([]Result, len(cases))
	var counts counters
	if r.Parallel && !r.FailFast {
		var wg sync.WaitGroup
		for i := range cases {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = r.runCase(cases[i], &counts)
			}(i)
		}
		wg.Wait()
	} else {
		for i, c := range cases {
			if r.FailFast && counts.failed.Load() > 0 {
				counts.skipped.Inc()
				results[i] = Result{Case: c, Skipped: true}
				continue
			}
			results[i] = r.runCase(c, &counts)
		}
	}

	summary := Summary{
		Results: results,
		Passed:  int(counts.passed.Load()),
		Failed:  int(counts.failed.Load()),
		Skipped: int(counts.skipped.Load()),
	}
	r.Logger.Info("Finished run",
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
	)
	return summary
}

func (r *Runner) runCase(c Case, counts *counters) Result {
	logger := r.Logger.With(zap.String("suite", c.Suite), zap.String("case", c.Description))
	got, err := c.run()
	if err != nil {
		counts.failed.Inc()
		logger.Warn("Case failed", zap.Int("got", got), zap.Int("want", c.Want), zap.Error(err))
		return Result{Case: c, Got: got, Err: err}
	}
	counts.passed.Inc()
	logger.Debug("Case passed", zap.Int("got", got))
	return Result{Case: c, Got: got}
}

// Summary contains the results of a run
type Summary struct {
	Results []Result
	Passed  int
	Failed  int
	Skipped int
}

// Err returns an *Error with every failure, or nil if all cases passed
func (s Summary) Err() error {
	var errs []error
	for _, result := range s.Results {
		if result.Err != nil {
			errs = append(errs, errors.Wrap(result.Err, result.Case.Name()))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &Error{errs: errs}
}

// ExitCode returns a process exit code for the run: 0 if all cases passed, 1 otherwise
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
