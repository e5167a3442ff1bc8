package views

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"xhsdash/internal/api"
)

// Badge pairs a status label with its terminal style.
type Badge struct {
	Label string
	Style text.Colors
}

// Render returns the label, styled when colorize is set.
func (b Badge) Render(colorize bool) string {
	if colorize && len(b.Style) > 0 {
		return b.Style.Sprint(b.Label)
	}
	return b.Label
}

// neutralStyle is the fallback for values outside the known enumerations.
var neutralStyle = text.Colors{text.FgHiBlack}

// statusStyles maps each lifecycle status to a color family. The palette
// follows the dashboard convention: gray for idle, cool colors while the
// request moves toward a provider, warm green once results exist, red for
// terminal failure. RUNNING uses the indigo family, rendered as hi-magenta.
var statusStyles = map[api.TaskStatus]text.Colors{
	api.TaskStatusPending:   {text.FgHiBlack},
	api.TaskStatusExtracted: {text.FgBlue},
	api.TaskStatusSubmitted: {text.FgYellow},
	api.TaskStatusRunning:   {text.FgHiMagenta},
	api.TaskStatusSucceeded: {text.FgGreen},
	api.TaskStatusEmailed:   {text.FgHiGreen},
	api.TaskStatusFailed:    {text.FgRed},
}

// StatusBadge maps a task status to its badge. Unknown values get the
// neutral style rather than failing.
func StatusBadge(status api.TaskStatus) Badge {
	if style, ok := statusStyles[status]; ok {
		return Badge{Label: string(status), Style: style}
	}
	return Badge{Label: string(status), Style: neutralStyle}
}

// DeliveryBadge maps a delivery status to its badge: green for SENT, red for
// any failure value.
func DeliveryBadge(status api.DeliveryStatus) Badge {
	if status == api.DeliveryStatusSent {
		return Badge{Label: string(status), Style: text.Colors{text.FgGreen}}
	}
	return Badge{Label: string(status), Style: text.Colors{text.FgRed}}
}
