package archive

import "context"

// EnsureFolderFunc resolves one folder level: it returns the ID of the
// folder with the given name under the parent, creating it when absent.
// An empty parentID means the storage root.
type EnsureFolderFunc func(ctx context.Context, name, parentID string) (string, error)

// ResolveFolderPath walks a folder path segment by segment, ensuring each
// level exists, and returns the ID of the final folder. Resolving the same
// path twice yields the same ID.
func ResolveFolderPath(ctx context.Context, ensure EnsureFolderFunc, segments ...string) (string, error) {
	parentID := ""
	for _, name := range segments {
		id, err := ensure(ctx, name, parentID)
		if err != nil {
			return "", err
		}
		parentID = id
	}
	return parentID, nil
}
