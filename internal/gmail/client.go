package gmail

import (
	"context"
	"encoding/base64"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/google"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/retry"
)

const (
	// DefaultMaxSearchResults bounds a search to one reasonably sized page.
	// Pagination across very large result sets is out of scope.
	DefaultMaxSearchResults = 100
)

// Client wraps the Gmail Users service for read-only message access
type Client struct {
	svc        *gmail.UsersService
	account    string // The account this client is associated with
	maxResults int64
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return google.HasToken()
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication for
// a specific account. Returns an error if no valid token exists - use
// HasTokenForAccount() to check first.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:        svc.Users,
		account:    account,
		maxResults: DefaultMaxSearchResults,
	}, nil
}

// NewClient creates a new Gmail client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// SetMaxSearchResults overrides the search page size. Values <= 0 keep the default.
func (c *Client) SetMaxSearchResults(n int64) {
	if n > 0 {
		c.maxResults = n
	}
}

// SearchMessages returns the IDs of messages matching the query, first page only.
func (c *Client) SearchMessages(ctx context.Context, query string) ([]string, error) {
	res, err := retry.Do(ctx, func() (*gmail.ListMessagesResponse, error) {
		return c.svc.Messages.List("me").Q(query).MaxResults(c.maxResults).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	ids := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, m.Id)
	}
	return ids, nil
}

// GetMessage retrieves a full Gmail message, including the MIME part tree
// and headers.
func (c *Client) GetMessage(ctx context.Context, messageID string) (*gmail.Message, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}

	msg, err := retry.Do(ctx, func() (*gmail.Message, error) {
		return c.svc.Messages.Get("me", messageID).Format("full").Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}

// GetAttachment retrieves and decodes the content of an attachment
func (c *Client) GetAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}
	if attachmentID == "" {
		return nil, fmt.Errorf("attachmentID is required")
	}

	attachment, err := retry.Do(ctx, func() (*gmail.MessagePartBody, error) {
		return c.svc.Messages.Attachments.Get("me", messageID, attachmentID).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment %s: %w", attachmentID, err)
	}

	data, err := decodeBody(attachment.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode attachment data: %w", err)
	}
	return data, nil
}

// decodeBody decodes base64url-encoded body data (Gmail API uses RFC 4648
// base64url encoding), falling back to standard base64.
func decodeBody(data string) ([]byte, error) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, err
		}
	}
	return decoded, nil
}
