// Package datefmt renders textual timestamps for display. It is the view
// layer's date filter: pure, no side effects.
package datefmt

import (
	"fmt"
	"time"
)

// Style keywords understood by Format. Anything else is handed to
// time.Time.Format unchanged as a raw layout.
const (
	StyleFull   = "full"
	StyleMedium = "medium"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// layouts accepted on input, tried in order.
var layouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	time.DateTime,
	time.DateOnly,
}

// Format parses value as a timestamp and renders it in the given style.
// An empty style means medium.
func Format(value, style string) (string, error) {
	parsed, err := Parse(value)
	if err != nil {
		return "", err
	}

	switch style {
	case StyleFull:
		return parsed.Format(fullLayout), nil
	case StyleMedium, "":
		return parsed.Format(mediumLayout), nil
	default:
		return parsed.Format(style), nil
	}
}

// Parse interprets a textual timestamp against the accepted layouts.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
