package archive

import (
	"fmt"
	"time"
)

// Attachment is a fully materialized email attachment ready for upload.
type Attachment struct {
	// Filename as it should appear in Drive, including any decoration.
	Filename string
	// Data holds the decoded attachment bytes.
	Data []byte
	// MimeType of the content, never empty.
	MimeType string
	// Description records the provenance of the file (sender, subject).
	Description string
}

// TimeDetails carries the date partition derived from a message timestamp.
// All values are rendered in UTC.
type TimeDetails struct {
	Month     string // full English month name, e.g. "March"
	Year      string // four digit year, e.g. "2024"
	TimeOfDay string // HH:MM:SS
}

// TimeDetailsFromMillis derives the folder partition and filename timestamp
// from a Gmail internal date (epoch milliseconds). Non-positive values are
// rejected so messages without a usable timestamp can be skipped.
func TimeDetailsFromMillis(ms int64) (TimeDetails, error) {
	if ms <= 0 {
		return TimeDetails{}, fmt.Errorf("invalid message timestamp %d", ms)
	}

	t := time.UnixMilli(ms).UTC()
	return TimeDetails{
		Month:     t.Month().String(),
		Year:      fmt.Sprintf("%04d", t.Year()),
		TimeOfDay: t.Format("15:04:05"),
	}, nil
}
