package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/tod/foundation/utils/timex"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	extremeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// columns is the number of times per row in pretty output.
const columns = 6

// printTimes writes one time per line, or a boxed grid when pretty is set.
func printTimes(w io.Writer, ts []timex.TimeOfDay, format string, pretty bool, title string) {
	if !pretty {
		for _, t := range ts {
			fmt.Fprintln(w, t.Format(format))
		}
		return
	}

	var rows []string
	for i := 0; i < len(ts); i += columns {
		end := i + columns
		if end > len(ts) {
			end = len(ts)
		}
		cells := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cell := ts[j].Format(format)
			if j == 0 || j == len(ts)-1 {
				cell = extremeStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, "  "))
	}

	body := "(empty)"
	if len(rows) > 0 {
		body = strings.Join(rows, "\n")
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, subtitleStyle.Render(fmt.Sprintf("%d values", len(ts))))
	fmt.Fprintln(w, boxStyle.Render(body))
}
