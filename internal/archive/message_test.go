package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gmail "google.golang.org/api/gmail/v1"
)

func TestMessageDetails(t *testing.T) {
	headers := []*gmail.MessagePartHeader{
		{Name: "From", Value: `Jane Doe <jane@example.com>`},
		{Name: "Subject", Value: "Invoice"},
		{Name: "To", Value: "me@example.com"},
	}

	sender, subject := messageDetails(headers)
	assert.Equal(t, Sender{Name: "Jane Doe", Email: "jane@example.com"}, sender)
	assert.Equal(t, "Invoice", subject)
}

func TestMessageDetailsCaseInsensitiveHeaders(t *testing.T) {
	headers := []*gmail.MessagePartHeader{
		{Name: "from", Value: "jane@example.com"},
		{Name: "SUBJECT", Value: "hello"},
	}

	sender, subject := messageDetails(headers)
	assert.Equal(t, "Unknown Sender", sender.Name)
	assert.Equal(t, "jane@example.com", sender.Email)
	assert.Equal(t, "hello", subject)
}

func TestMessageDetailsFallbacks(t *testing.T) {
	sender, subject := messageDetails(nil)
	assert.Equal(t, Sender{Name: "Unknown Sender"}, sender)
	assert.Equal(t, "No Subject", subject)
}

func TestParseSender(t *testing.T) {
	tests := []struct {
		name string
		from string
		want Sender
	}{
		{name: "name and address", from: `Jane Doe <jane@example.com>`, want: Sender{Name: "Jane Doe", Email: "jane@example.com"}},
		{name: "bare address falls back to placeholder name", from: "jane@example.com", want: Sender{Name: "Unknown Sender", Email: "jane@example.com"}},
		{name: "angle brackets without display name", from: "<jane@example.com>", want: Sender{Name: "Unknown Sender", Email: "jane@example.com"}},
		{name: "quoted name", from: `"Doe, Jane" <jane@example.com>`, want: Sender{Name: "Doe, Jane", Email: "jane@example.com"}},
		{name: "empty", from: "", want: Sender{Name: "Unknown Sender"}},
		{name: "unparsable keeps raw value", from: "not an address", want: Sender{Name: "not an address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSender(tt.from))
		})
	}
}
