package ui

import (
	"os"
	"strings"

	"startyparty-news/internal/notify"
	"startyparty-news/internal/presenter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 80

// TerminalWidth returns the width of f when it is a terminal, else 80.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Row renders one entry on a single line of the given width, with the
// accessory right-aligned.
func Row(e presenter.Entry, selected bool, width int) string {
	marker := UnselectedMarker.String()
	title := TextStyle
	if selected {
		marker = SelectedMarker.String()
		title = SelectedTitleStyle
	}
	if e.Placeholder() {
		title = DimStyle
	}
	accessory := ""
	if e.Accessory != "" {
		accessory = SourceStyle.Render(e.Accessory)
	}
	avail := width - lipgloss.Width(marker) - lipgloss.Width(accessory) - 3
	if avail < 10 {
		avail = 10
	}
	left := marker + " " + title.MaxWidth(avail).Render(e.Title)
	gap := width - lipgloss.Width(left) - lipgloss.Width(accessory)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + accessory
}

// List renders every entry, one per line, without a selection.
func List(entries []presenter.Entry, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(Row(e, false, width))
		b.WriteByte('\n')
		if e.Icon != nil || len(e.Actions) > 0 {
			b.WriteString(Detail(e))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Detail renders the icon and action lines of an entry.
func Detail(e presenter.Entry) string {
	return detail(e, iconPending)
}

type iconStatus int

const (
	iconPending iconStatus = iota
	iconLoaded
	iconFallback
)

func detail(e presenter.Entry, status iconStatus) string {
	var parts []string
	if e.Icon != nil {
		var line string
		switch status {
		case iconLoaded:
			line = DimStyle.Render("icon ") + LinkStyle.Render(e.Icon.Source)
		case iconFallback:
			line = DimStyle.Render("icon fallback ") + TextStyle.Render(e.Icon.Fallback)
		default:
			line = DimStyle.Render("icon ") + LinkStyle.Render(e.Icon.Source) +
				DimStyle.Render(" (fallback "+e.Icon.Fallback+")")
		}
		parts = append(parts, "  "+line+DimStyle.Render(" · "+e.Icon.Tooltip))
	}
	for _, a := range e.Actions {
		parts = append(parts, "  "+KeyStyle.Render(a.Title)+" "+LinkStyle.Render(a.URL))
	}
	return strings.Join(parts, "\n")
}

// Toast renders a notification as a single status line.
func Toast(n notify.Notification) string {
	style := DimStyle
	switch n.Severity {
	case notify.SeverityError:
		style = ErrorStyle
	case notify.SeveritySuccess:
		style = SuccessStyle
	}
	s := style.Render(n.Title)
	if n.Body != "" {
		s += " " + TextStyle.Render(n.Body)
	}
	return s
}
