// Package output renders renewstat results for the terminal.
//
// Summary tables are drawn with go-pretty. ANSI colour is applied only when
// stdout is a TTY and NO_COLOR is unset, so piped output stays plain.
package output

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/renewstat/internal/analyzer"
)

// strongCorrelation is the magnitude above which coefficients are coloured.
const strongCorrelation = 0.7

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given colours if color is enabled,
// otherwise returns the plain text.
func colorize(colors text.Colors, s string) string {
	if IsColorEnabled() {
		return colors.Sprint(s)
	}
	return s
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}

// RenderSummary renders every section of the summary report.
func RenderSummary(s *analyzer.Summary) string {
	var sb strings.Builder

	sb.WriteString(colorize(text.Colors{text.Bold}, fmt.Sprintf("Descriptive Statistics (%d rows):", s.Rows)))
	sb.WriteString("\n")
	sb.WriteString(RenderDescription(s.Columns))

	sb.WriteString("\n\n")
	sb.WriteString(colorize(text.Colors{text.Bold}, "Correlation Matrix:"))
	sb.WriteString("\n")
	sb.WriteString(RenderCorrelation(s.Correlation))

	sb.WriteString("\n\n")
	sb.WriteString(colorize(text.Colors{text.Bold}, "Kurtosis Values:"))
	sb.WriteString("\n")
	sb.WriteString(RenderMoments("Kurtosis", s.Kurtosis))

	sb.WriteString("\n\n")
	sb.WriteString(colorize(text.Colors{text.Bold}, "Skewness Values:"))
	sb.WriteString("\n")
	sb.WriteString(RenderMoments("Skewness", s.Skewness))
	sb.WriteString("\n")

	return sb.String()
}

// RenderDescription renders one row per column. Cells that do not apply to
// the column's kind are shown as "-".
func RenderDescription(cols []analyzer.ColumnSummary) string {
	if len(cols) == 0 {
		return "No columns found.\n"
	}

	t := newTable()
	t.AppendHeader(table.Row{
		"Column", "Type", "Count", "Unique", "Top", "Freq",
		"Mean", "Std", "Min", "25%", "50%", "75%", "Max",
	})

	for _, c := range cols {
		if c.Numeric() {
			t.AppendRow(table.Row{
				c.Name, c.Kind.String(), c.Count, "-", "-", "-",
				formatFloat(c.Mean), formatFloat(c.Std), formatFloat(c.Min),
				formatFloat(c.Q25), formatFloat(c.Median), formatFloat(c.Q75),
				formatFloat(c.Max),
			})
			continue
		}
		t.AppendRow(table.Row{
			c.Name, c.Kind.String(), c.Count, c.Unique, truncate(c.Top, 24), c.Freq,
			"-", "-", "-", "-", "-", "-", "-",
		})
	}

	return t.Render()
}

// RenderCorrelation renders the correlation matrix with column names on
// both axes. Strong coefficients are coloured when colour is enabled.
func RenderCorrelation(c *analyzer.Correlation) string {
	if c == nil || c.Len() == 0 {
		return "No numeric columns.\n"
	}

	t := newTable()
	header := table.Row{""}
	for _, name := range c.Columns {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i, name := range c.Columns {
		row := table.Row{name}
		for j := range c.Columns {
			row = append(row, formatCorrelation(c.At(i, j)))
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// RenderMoments renders a two-column table of per-column values.
func RenderMoments(label string, moments []analyzer.Moment) string {
	if len(moments) == 0 {
		return "No numeric columns.\n"
	}

	t := newTable()
	t.AppendHeader(table.Row{"Column", label})
	for _, m := range moments {
		t.AppendRow(table.Row{m.Column, formatFloat(m.Value)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	return t.Render()
}

func formatCorrelation(v float64) string {
	s := formatFloat(v)
	switch {
	case math.IsNaN(v):
		return colorize(text.Colors{text.FgHiBlack}, s)
	case v >= strongCorrelation:
		return colorize(text.Colors{text.FgRed}, s)
	case v <= -strongCorrelation:
		return colorize(text.Colors{text.FgBlue}, s)
	default:
		return s
	}
}

// formatFloat prints v with four decimals, or NaN.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
