// Package drive provides a Google Drive client for folder and file
// management.
//
// The client covers the archive side of the pipeline: ensuring folders
// exist (find-or-create by name under a parent), checking whether a file
// already exists inside a folder, and uploading attachment content.
//
// The client supports multi-account authentication using the Google OAuth2
// flow; tokens come from the google package, one file per account. Lookups
// go through Drive query strings with the usual escaping rules for embedded
// names, and all remote calls run through the retry package.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := drive.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, created, err := client.EnsureFolder(ctx, "Files", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
package drive
