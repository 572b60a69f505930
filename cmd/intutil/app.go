package main

import (
	"io"
	"strconv"

	"github.com/johnstarich/go/intutil/harness"
	"github.com/johnstarich/go/intutil/selfcheck"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName   = "intutil"
	envPrefix = "INTUTIL_"
)

// App runs intutil commands
type App struct {
	outWriter io.Writer
	errWriter io.Writer
	cases     func() []harness.Case
}

func newApp(outWriter, errWriter io.Writer) App {
	return App{
		outWriter: outWriter,
		errWriter: errWriter,
		cases:     selfcheck.Cases,
	}
}

// Run runs the command line 'args', excluding the program name
func (a App) Run(args []string) error {
	checkedFlag := &cli.BoolFlag{
		Name:  "checked",
		Usage: "Fail instead of wrapping around when the result overflows a 64-bit integer.",
	}
	cliApp := &cli.App{
		Name:      appName,
		Usage:     "Integer arithmetic and maximums, plus a self-check of both.",
		Writer:    a.outWriter,
		ErrWriter: a.errWriter,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Print A + B",
				ArgsUsage: "[--] A B",
				Action:    a.add,
				Flags:     []cli.Flag{checkedFlag},
			},
			{
				Name:      "subtract",
				Usage:     "Print A - B",
				ArgsUsage: "[--] A B",
				Action:    a.subtract,
				Flags:     []cli.Flag{checkedFlag},
			},
			{
				Name:      "max",
				Usage:     "Print the largest value, or 0 if there are none",
				ArgsUsage: "[--] VALUE...",
				Action:    a.max,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail if no values are provided instead of printing 0.",
					},
				},
			},
			{
				Name:   "check",
				Usage:  "Run the built-in add, subtract, and findmax cases",
				Action: a.check,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "fail-fast",
						Usage:   "Stop at the first failed case.",
						EnvVars: []string{envPrefix + "FAIL_FAST"},
					},
					&cli.BoolFlag{
						Name:    "parallel",
						Usage:   "Run cases concurrently. Ignored with --fail-fast.",
						EnvVars: []string{envPrefix + "PARALLEL"},
					},
					&cli.StringSliceFlag{
						Name:    "suite",
						Usage:   "Only run cases in this suite. May be repeated.",
						EnvVars: []string{envPrefix + "SUITE"},
					},
					&cli.StringFlag{
						Name:    "format",
						Value:   "terminal",
						Usage:   "Report format: terminal or markdown.",
						EnvVars: []string{envPrefix + "FORMAT"},
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Usage:   "Log each case to stderr.",
						EnvVars: []string{envPrefix + "VERBOSE"},
					},
				},
			},
		},
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
	}
	return cliApp.Run(append([]string{appName}, args...))
}

func (a App) newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(a.errWriter)), zap.DebugLevel))
}

func parseInts(strs []string) ([]int64, error) {
	values := make([]int64, len(strs))
	for i, s := range strs {
		value, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", s)
		}
		values[i] = value
	}
	return values, nil
}

func parsePair(c *cli.Context) (a, b int64, err error) {
	const pairLen = 2
	if c.NArg() != pairLen {
		return 0, 0, errors.Errorf("%s: expected 2 integer arguments, got %d", c.Command.Name, c.NArg())
	}
	values, err := parseInts(c.Args().Slice())
	if err != nil {
		return 0, 0, errors.Wrap(err, c.Command.Name)
	}
	return values[0], values[1], nil
}
