package views

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"xhsdash/internal/api"
)

const timestampLayout = "2006-01-02 15:04:05"

var titleCaser = cases.Title(language.English)

// FormatTimestamp renders a wire timestamp in the operator's local time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}

// FormatOptTimestamp renders an optional timestamp, "-" when absent.
func FormatOptTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatTimestamp(*t)
}

// FormatConfidence renders an intent score as a whole percentage for list
// rows, e.g. 0.842 -> "84%".
func FormatConfidence(confidence *float64) string {
	if confidence == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", *confidence*100)
}

// FormatConfidenceDetail renders an intent score with one decimal for the
// detail view, e.g. 0.842 -> "84.2%".
func FormatConfidenceDetail(confidence *float64) string {
	if confidence == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *confidence*100)
}

// OrDash dereferences an optional string, "-" when absent or empty.
func OrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

// requestTypeMarker distinguishes image from video at a glance, independent
// of color support.
func requestTypeMarker(requestType api.RequestType) string {
	switch requestType {
	case api.RequestTypeImage:
		return "▣"
	case api.RequestTypeVideo:
		return "▶"
	default:
		return "?"
	}
}

// RequestTypeCell renders the list-row type column, marker plus raw type.
func RequestTypeCell(requestType api.RequestType) string {
	return requestTypeMarker(requestType) + " " + string(requestType)
}

// RequestTypeLabel renders the detail-view type, marker plus title-cased
// label ("▣ Image", "▶ Video").
func RequestTypeLabel(requestType api.RequestType) string {
	return requestTypeMarker(requestType) + " " + titleCaser.String(string(requestType))
}
