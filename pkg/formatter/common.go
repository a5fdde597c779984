package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

const timestampLayout = "2006-01-02 15:04:05"

// formatTimestamp renders creation times the way all tables display them
func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// formatAge renders a relative age such as "3 months ago"
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return humanize.Time(t)
}

// PrintJSON writes any finding list as indented JSON
func PrintJSON(w io.Writer, data interface{}) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
