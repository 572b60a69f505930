package harness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
)

// Format represents a report's format
type Format int

// Supported formats
const (
	FormatColorTerminal Format = iota
	FormatMarkdown
)

// ParseFormat returns the Format named 'name': "terminal" or "markdown"
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "terminal":
		return FormatColorTerminal, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return 0, errors.Errorf("unsupported report format: %q", name)
	}
}

// Colorize returns 's' and optionally wraps with color 'c' according to the format's rules
func (f Format) Colorize(c *color.Color, s string) string {
	if f == FormatColorTerminal {
		return c.Sprint(s)
	}
	return s
}

func (f Format) colorizeStatus(s status, str string) string {
	if f == FormatColorTerminal {
		return s.Colorize(str)
	}
	return str
}

// FormatTable returns a formatted table according to the format's rules
func (f Format) FormatTable(tbl table.Writer) string {
	if f == FormatMarkdown {
		return tbl.RenderMarkdown()
	}
	tbl.SetStyle(table.StyleLight)
	return tbl.Render()
}

// statusIcon returns an emoji in Markdown and an empty string in a terminal
func (f Format) statusIcon(s status) string {
	if f == FormatMarkdown {
		return s.Emoji()
	}
	return ""
}

// Report renders the summary's results as a table, followed by the pass, fail, and skip counts
func (s Summary) Report(format Format) string {
	var sb strings.Builder
	tbl := table.NewWriter()
	const (
		wantColumnIndex = 6
		gotColumnIndex  = 7
	)
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: wantColumnIndex, Align: text.AlignRight},
		{Number: gotColumnIndex, Align: text.AlignRight},
	})
	tbl.SuppressEmptyColumns()
	bold := boldColor()
	tbl.AppendHeader(table.Row{
		"",
		format.Colorize(bold, "Status"),
		format.Colorize(bold, "Suite"),
		format.Colorize(bold, "Case"),
		format.Colorize(bold, "Inputs"),
		format.Colorize(bold, "Want"),
		format.Colorize(bold, "Got"),
	})
	for _, result := range s.Results {
		st := statusOf(result)
		got := ""
		if !result.Skipped {
			got = strconv.Itoa(result.Got)
		}
		tbl.AppendRow(table.Row{
			format.statusIcon(st),
			format.colorizeStatus(st, st.String()),
			result.Case.Suite,
			result.Case.Description,
			formatInputs(result.Case.Inputs),
			strconv.Itoa(result.Case.Want),
			got,
		})
	}
	sb.WriteString(format.FormatTable(tbl))
	sb.WriteRune('\n')
	sb.WriteString(s.totals(format))
	sb.WriteRune('\n')
	return sb.String()
}

func (s Summary) totals(format Format) string {
	passed := fmt.Sprintf("%d passed", s.Passed)
	failed := fmt.Sprintf("%d failed", s.Failed)
	skipped := fmt.Sprintf("%d skipped", s.Skipped)
	if s.Failed > 0 {
		failed = format.colorizeStatus(statusFail, failed)
	} else {
		passed = format.colorizeStatus(statusPass, passed)
	}
	return strings.Join([]string{passed, failed, skipped}, ", ")
}

func formatInputs(inputs []int) string {
	if len(inputs) == 0 {
		return "(none)"
	}
	strs := make([]string, len(inputs))
	for i, in := range inputs {
		strs[i] = strconv.Itoa(in)
	}
	return strings.Join(strs, ", ")
}
