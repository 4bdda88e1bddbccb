package archive

import (
	"context"
	"errors"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// defaultMimeType is used when a part does not declare a content type.
const defaultMimeType = "application/octet-stream"

// FetchFunc retrieves and decodes the bytes of one attachment by its ID.
type FetchFunc func(ctx context.Context, attachmentID string) ([]byte, error)

// rawAttachment is an attachment as it appears in the MIME tree, before
// any filename decoration.
type rawAttachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// CollectAttachments walks the MIME part tree of a message in pre-order and
// fetches the content of every attachment leaf. A part counts as an
// attachment when it carries both a filename and an attachment ID.
//
// A fetch failure does not abort the walk. The remaining attachments are
// still collected and the failures come back joined into a single error
// alongside the successful results.
func CollectAttachments(ctx context.Context, part *gmail.MessagePart, fetch FetchFunc) ([]rawAttachment, error) {
	if part == nil {
		return nil, nil
	}

	var (
		collected []rawAttachment
		errs      []error
	)

	if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
		data, err := fetch(ctx, part.Body.AttachmentId)
		if err != nil {
			errs = append(errs, fmt.Errorf("attachment %q: %w", part.Filename, err))
		} else {
			mimeType := part.MimeType
			if mimeType == "" {
				mimeType = defaultMimeType
			}
			collected = append(collected, rawAttachment{
				Filename: part.Filename,
				MimeType: mimeType,
				Data:     data,
			})
		}
	}

	for _, child := range part.Parts {
		children, err := CollectAttachments(ctx, child, fetch)
		collected = append(collected, children...)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return collected, errors.Join(errs...)
}
