package archive

import "context"

// FileStore is the minimal storage surface needed to place one file
// idempotently inside a folder.
type FileStore interface {
	// FindFile returns the ID of a file with the given name inside the
	// folder, or an empty string when no such file exists.
	FindFile(ctx context.Context, name, folderID string) (string, error)
	// UploadFile stores the attachment inside the folder and returns the
	// new file ID.
	UploadFile(ctx context.Context, att Attachment, folderID string) (string, error)
}

// WriteResult reports the outcome of an idempotent write.
type WriteResult struct {
	// Written is true when a new file was uploaded, false when a file with
	// the same name already existed.
	Written bool
	// FileID identifies the file, whether new or pre-existing.
	FileID string
}

// WriteIfAbsent uploads the attachment into the folder unless a file with
// the same name is already there. Existing content is never overwritten.
func WriteIfAbsent(ctx context.Context, store FileStore, att Attachment, folderID string) (WriteResult, error) {
	existing, err := store.FindFile(ctx, att.Filename, folderID)
	if err != nil {
		return WriteResult{}, err
	}
	if existing != "" {
		return WriteResult{Written: false, FileID: existing}, nil
	}

	id, err := store.UploadFile(ctx, att, folderID)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: true, FileID: id}, nil
}
