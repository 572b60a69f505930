// Command intutil adds, subtracts, and finds the maximum of integers, and checks its own results.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

//nolint:gochecknoglobals // Swapped out by tests to capture output and exit codes.
var (
	osExiter            = os.Exit
	osOut     io.Writer = os.Stdout
	osErr     io.Writer = os.Stderr
	colorOnce sync.Once
)

// forceColor returns true if the environment asks for colored output even without a terminal, like CI=true
func forceColor(getEnv func(string) string) bool {
	ci, err := strconv.ParseBool(getEnv("CI"))
	return err == nil && ci
}

func main() {
	if forceColor(os.Getenv) {
		colorOnce.Do(func() {
			color.NoColor = false
		})
	}
	err := newApp(osOut, osErr).Run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(osErr, err)
		osExiter(1)
	}
}
