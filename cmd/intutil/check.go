package main

import (
	"fmt"
	"strings"

	"github.com/johnstarich/go/intutil/harness"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (a App) check(c *cli.Context) error {
	format, err := harness.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	suites := c.StringSlice("suite")
	cases := harness.Select(a.cases(), suites...)
	if len(cases) == 0 {
		return errors.Errorf("no cases found for suites: %s", strings.Join(suites, ", "))
	}

	logger := a.newLogger(c.Bool("verbose"))
	defer func() { _ = logger.Sync() }()
	runner := harness.New(harness.Config{
		Logger:   logger,
		FailFast: c.Bool("fail-fast"),
		Parallel: c.Bool("parallel"),
	})
	summary := runner.Run(cases)
	fmt.Fprint(c.App.Writer, summary.Report(format))
	return summary.Err()
}
