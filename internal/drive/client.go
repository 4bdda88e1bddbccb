package drive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/archive"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/google"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/retry"
)

// FolderMimeType is the Drive MIME type that marks a file as a folder.
const FolderMimeType = "application/vnd.google-apps.folder"

// Client wraps the Google Drive service for folder and file management
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Drive client with OAuth2 authentication for
// a specific account. Returns an error if no valid token exists.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: svc,
		account: account,
	}, nil
}

// NewClient creates a new Drive client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// EnsureFolder returns the ID of the folder with the given name under the
// parent, creating it when absent. The created flag reports whether a new
// folder was made. An empty parentID means the Drive root.
func (c *Client) EnsureFolder(ctx context.Context, name, parentID string) (id string, created bool, err error) {
	if name == "" {
		return "", false, fmt.Errorf("folder name is required")
	}

	id, err = c.findFolder(ctx, name, parentID)
	if err != nil {
		return "", false, err
	}
	if id != "" {
		return id, false, nil
	}

	folder := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}
	if parentID != "" {
		folder.Parents = []string{parentID}
	}

	f, err := retry.Do(ctx, func() (*drive.File, error) {
		return c.service.Files.Create(folder).Fields("id").Context(ctx).Do()
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return f.Id, true, nil
}

// findFolder looks up a folder by name under the parent. Returns an empty ID
// when no folder matches. If several match, the first result wins.
func (c *Client) findFolder(ctx context.Context, name, parentID string) (string, error) {
	query := folderQuery(name, parentID)

	res, err := retry.Do(ctx, func() (*drive.FileList, error) {
		return c.service.Files.List().Q(query).Spaces("drive").Fields("files(id, name)").Context(ctx).Do()
	})
	if err != nil {
		return "", fmt.Errorf("failed to search for folder %q: %w", name, err)
	}

	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

// FindFile looks up a non-folder file by name inside a folder. Returns an
// empty ID when no file matches.
func (c *Client) FindFile(ctx context.Context, name, folderID string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("file name is required")
	}

	query := fileQuery(name, folderID)

	res, err := retry.Do(ctx, func() (*drive.FileList, error) {
		return c.service.Files.List().Q(query).Spaces("drive").Fields("files(id, name)").Context(ctx).Do()
	})
	if err != nil {
		return "", fmt.Errorf("failed to search for file %q: %w", name, err)
	}

	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

// UploadFile uploads attachment content into the given folder and returns the
// new file ID.
func (c *Client) UploadFile(ctx context.Context, att archive.Attachment, folderID string) (string, error) {
	if att.Filename == "" {
		return "", fmt.Errorf("attachment filename is required")
	}
	if folderID == "" {
		return "", fmt.Errorf("folderID is required")
	}

	meta := &drive.File{
		Name:        att.Filename,
		Description: att.Description,
		Parents:     []string{folderID},
	}

	f, err := retry.Do(ctx, func() (*drive.File, error) {
		// Fresh reader per attempt, the media upload consumes it.
		return c.service.Files.Create(meta).
			Media(bytes.NewReader(att.Data), googleapi.ContentType(att.MimeType)).
			Fields("id").
			Context(ctx).
			Do()
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %q: %w", att.Filename, err)
	}
	return f.Id, nil
}

// queryEscaper escapes values embedded in Drive query strings.
var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func folderQuery(name, parentID string) string {
	parent := "root"
	if parentID != "" {
		parent = queryEscaper.Replace(parentID)
	}
	return fmt.Sprintf("name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		queryEscaper.Replace(name), FolderMimeType, parent)
}

func fileQuery(name, folderID string) string {
	parent := "root"
	if folderID != "" {
		parent = queryEscaper.Replace(folderID)
	}
	return fmt.Sprintf("name = '%s' and mimeType != '%s' and '%s' in parents and trashed = false",
		queryEscaper.Replace(name), FolderMimeType, parent)
}
