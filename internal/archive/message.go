package archive

import (
	"net/mail"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

const (
	unknownSender = "Unknown Sender"
	noSubject     = "No Subject"
)

// Sender identifies the author of a message.
type Sender struct {
	Name  string
	Email string
}

// messageDetails pulls the sender and subject out of the payload headers.
// Missing or malformed headers fall back to placeholder values so a single
// odd message never blocks the run.
func messageDetails(headers []*gmail.MessagePartHeader) (Sender, string) {
	var from, subject string
	for _, h := range headers {
		switch {
		case strings.EqualFold(h.Name, "From"):
			from = h.Value
		case strings.EqualFold(h.Name, "Subject"):
			subject = h.Value
		}
	}

	if subject == "" {
		subject = noSubject
	}
	return parseSender(from), subject
}

// parseSender splits an RFC 5322 From header into display name and address.
func parseSender(from string) Sender {
	if from == "" {
		return Sender{Name: unknownSender}
	}

	addr, err := mail.ParseAddress(from)
	if err != nil {
		// Keep the raw header as the name so the file still says
		// something about where it came from.
		return Sender{Name: strings.TrimSpace(from)}
	}

	name := addr.Name
	if name == "" {
		// A bare address has no display name to put in the filename
		name = unknownSender
	}
	return Sender{Name: name, Email: addr.Address}
}
