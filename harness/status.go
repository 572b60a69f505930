package harness

import "github.com/fatih/color"

type status int

const (
	statusPass status = iota
	statusFail
	statusSkip
)

func statusOf(r Result) status {
	switch {
	case r.Skipped:
		return statusSkip
	case r.Err != nil:
		return statusFail
	default:
		return statusPass
	}
}

func boldGreen() *color.Color { return color.New(color.Bold, color.FgGreen) }
func boldRed() *color.Color   { return color.New(color.Bold, color.FgRed) }
func yellow() *color.Color    { return color.New(color.FgYellow) }
func boldColor() *color.Color { return color.New(color.Bold) }

func (s status) String() string {
	switch s {
	case statusPass:
		return "PASS"
	case statusSkip:
		return "SKIP"
	default:
		return "FAIL"
	}
}

// Colorize formats 'str' with this status's assigned color
func (s status) Colorize(str string) string {
	return s.color().Sprint(str)
}

func (s status) color() *color.Color {
	switch s {
	case statusPass:
		return boldGreen()
	case statusSkip:
		return yellow()
	default:
		return boldRed()
	}
}

// Emoji returns this status's assigned emoji
func (s status) Emoji() string {
	switch s {
	case statusPass:
		return "🟢"
	case statusSkip:
		return "🟡"
	default:
		return "🔴"
	}
}
