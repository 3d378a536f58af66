package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `
# Keys

## Grid

| Key | Action |
| --- | ------ |
| arrows, hjkl | move between days |
| enter | edit the day's time windows and note |
| a | mark the day available all day |
| x | clear the day |
| w | copy the day onto every same weekday |
| n / p | next / previous month |
| m | edit the month note |
| q, esc | quit |

## Editor

Times are hour:minute between 7:00 and 23:59. Leave a side blank for an
open bound; blank both sides to drop the window. Full-width digits are
accepted and a colon is inserted after two digits.
`

func (m *Model) helpView() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	out, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	return out + "\npress any key to close"
}
