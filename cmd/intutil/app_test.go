package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnstarich/go/intutil/harness"
	"github.com/johnstarich/go/intutil/selfcheck"
)

type TestApp struct {
	App

	stdout *outputRecorder
	stderr *outputRecorder
}

func newTestApp(t *testing.T) *TestApp {
	t.Helper()
	stdout := &outputRecorder{name: "stdout", t: t}
	stderr := &outputRecorder{name: "stderr", t: t}
	return &TestApp{
		App: App{
			outWriter: stdout,
			errWriter: stderr,
			cases:     selfcheck.Cases,
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func (t *TestApp) withCases(cases ...harness.Case) *TestApp {
	t.cases = func() []harness.Case { return cases }
	return t
}

func (t *TestApp) Stdout() string {
	return t.stdout.buf.String()
}

func (t *TestApp) Stderr() string {
	return t.stderr.buf.String()
}

// outputRecorder keeps everything written to it and copies each write into the test log.
// Writes are not synchronized. Concurrent writers must hold their own lock.
type outputRecorder struct {
	name string
	t    *testing.T
	buf  bytes.Buffer
}

func (o *outputRecorder) Write(b []byte) (int, error) {
	o.t.Logf("%s: %s", o.name, strings.TrimSuffix(string(b), "\n"))
	return o.buf.Write(b)
}
