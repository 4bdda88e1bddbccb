package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	gmail "google.golang.org/api/gmail/v1"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/logging"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/query"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/spell"
)

// DefaultRootFolder is the top-level Drive folder the archive lives under.
const DefaultRootFolder = "Files"

// MessageStore is the mail side of the pipeline.
type MessageStore interface {
	// SearchMessages returns the IDs of messages matching the query.
	SearchMessages(ctx context.Context, query string) ([]string, error)
	// GetMessage retrieves a full message by ID.
	GetMessage(ctx context.Context, messageID string) (*gmail.Message, error)
	// GetAttachment retrieves and decodes the bytes of one attachment.
	GetAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error)
}

// Store is the archive side of the pipeline.
type Store interface {
	FileStore
	// EnsureFolder returns the ID of the folder with the given name under
	// the parent, creating it when absent. The created flag reports whether
	// a new folder was made.
	EnsureFolder(ctx context.Context, name, parentID string) (id string, created bool, err error)
}

// Failure records one item that could not be archived.
type Failure struct {
	MessageID string
	Filename  string // empty when the whole message failed
	Err       error
}

// Summary reports what one run did.
type Summary struct {
	// Query is the expanded Gmail query the run searched with.
	Query string
	// Messages is the number of messages the search returned.
	Messages int
	// Uploaded counts attachments newly written to Drive.
	Uploaded int
	// Skipped counts attachments that already existed in Drive.
	Skipped int
	// SkippedMessages counts messages left unfiled, e.g. without a usable
	// timestamp.
	SkippedMessages int
	// Failures lists every item that errored. The run keeps going past
	// individual failures.
	Failures []Failure
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRootFolder overrides the top-level Drive folder name.
func WithRootFolder(name string) Option {
	return func(p *Pipeline) {
		if name != "" {
			p.rootFolder = name
		}
	}
}

// WithLogger sets the structured logger the pipeline reports to.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProgress sets the writer for human-readable progress output.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.progress = w
		}
	}
}

// Pipeline archives Gmail attachments into a date-partitioned Drive tree.
type Pipeline struct {
	messages   MessageStore
	store      Store
	expander   *query.Expander
	rootFolder string
	logger     *slog.Logger
	progress   io.Writer
}

// New builds a pipeline over the given mail and storage backends.
func New(messages MessageStore, store Store, opts ...Option) (*Pipeline, error) {
	checker, err := spell.Spanish()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	p := &Pipeline{
		messages:   messages,
		store:      store,
		expander:   query.NewExpander(checker),
		rootFolder: DefaultRootFolder,
		logger:     slog.Default(),
		progress:   io.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run expands the keywords into a Gmail query, searches the inbox and
// archives every attachment of every matching message. Failures are scoped
// to the item they occurred on and collected in the summary.
func (p *Pipeline) Run(ctx context.Context, keywords string) (*Summary, error) {
	logger := logging.WithOperation(p.logger, "archive")

	terms := p.expander.Expand(keywords)
	gmailQuery := query.Build(terms)

	summary := &Summary{Query: gmailQuery}
	logger.Info("Searching messages", slog.String("query", gmailQuery))

	ids, err := p.messages.SearchMessages(ctx, gmailQuery)
	if err != nil {
		return summary, fmt.Errorf("failed to search messages: %w", err)
	}

	summary.Messages = len(ids)
	fmt.Fprintf(p.progress, "Found %d messages\n", len(ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := p.processMessage(ctx, id, summary); err != nil {
			logger.Error("Failed to archive message", logging.MessageID(id), logging.Err(err))
			summary.Failures = append(summary.Failures, Failure{MessageID: id, Err: err})
		}
	}

	logger.Info("Run complete",
		slog.Int("messages", summary.Messages),
		slog.Int("uploaded", summary.Uploaded),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failures", len(summary.Failures)))
	return summary, nil
}

// processMessage archives all attachments of one message. An error return
// means the message as a whole could not be handled; per-attachment upload
// failures are recorded in the summary instead.
func (p *Pipeline) processMessage(ctx context.Context, messageID string, summary *Summary) error {
	logger := logging.WithOperation(p.logger, "archive")

	msg, err := p.messages.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.Payload == nil {
		logger.Debug("Message has no payload", logging.MessageID(messageID))
		return nil
	}

	details, err := TimeDetailsFromMillis(msg.InternalDate)
	if err != nil {
		// Without a timestamp there is no folder to file into.
		logger.Warn("Skipping message without usable timestamp",
			logging.MessageID(messageID), logging.Err(err))
		summary.SkippedMessages++
		return nil
	}

	sender, subject := messageDetails(msg.Payload.Headers)

	fetch := func(ctx context.Context, attachmentID string) ([]byte, error) {
		return p.messages.GetAttachment(ctx, messageID, attachmentID)
	}
	raw, collectErr := CollectAttachments(ctx, msg.Payload, fetch)
	if collectErr != nil {
		summary.Failures = append(summary.Failures, Failure{MessageID: messageID, Err: collectErr})
	}
	if len(raw) == 0 {
		return nil
	}

	folderID, err := p.folderFor(ctx, details)
	if err != nil {
		return err
	}

	for _, r := range raw {
		att := Attachment{
			Filename:    fmt.Sprintf("(%s) (%s) (%s)", sender.Name, details.TimeOfDay, r.Filename),
			Data:        r.Data,
			MimeType:    r.MimeType,
			Description: fmt.Sprintf("Email from %s_%s with subject '%s'", sender.Name, sender.Email, subject),
		}

		res, err := WriteIfAbsent(ctx, p.store, att, folderID)
		if err != nil {
			logger.Error("Failed to save attachment",
				logging.MessageID(messageID), logging.Filename(att.Filename), logging.Err(err))
			summary.Failures = append(summary.Failures, Failure{
				MessageID: messageID,
				Filename:  att.Filename,
				Err:       err,
			})
			continue
		}

		if res.Written {
			summary.Uploaded++
			fmt.Fprintf(p.progress, "File %q saved to Drive with ID: %s\n", att.Filename, res.FileID)
			logger.Info("Attachment saved",
				logging.MessageID(messageID), logging.Filename(att.Filename),
				logging.UserHash(sender.Email), logging.Status(logging.StatusSuccess))
		} else {
			summary.Skipped++
			fmt.Fprintf(p.progress, "Skipping upload for %q as it already exists\n", att.Filename)
			logger.Debug("Attachment already archived",
				logging.MessageID(messageID), logging.Filename(att.Filename),
				logging.UserHash(sender.Email), logging.Status(logging.StatusSkipped))
		}
	}

	return nil
}

// folderFor resolves root/year/month for the message date, creating levels
// as needed.
func (p *Pipeline) folderFor(ctx context.Context, details TimeDetails) (string, error) {
	ensure := func(ctx context.Context, name, parentID string) (string, error) {
		id, created, err := p.store.EnsureFolder(ctx, name, parentID)
		if err != nil {
			return "", fmt.Errorf("failed to ensure folder %q: %w", name, err)
		}
		if created {
			fmt.Fprintf(p.progress, "Folder %q created with ID: %s\n", name, id)
			logging.WithOperation(p.logger, "archive").Info("Folder created",
				logging.Folder(name), slog.String("id", id))
		}
		return id, nil
	}

	return ResolveFolderPath(ctx, ensure, p.rootFolder, details.Year, details.Month)
}
