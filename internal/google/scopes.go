package google

import (
	drive "google.golang.org/api/drive/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// DefaultOAuthScopes are the Google OAuth scopes this application requires.
//
// The scopes provide access to:
//   - Gmail: read-only (search, message and attachment fetch)
//   - Google Drive: per-file access to files created by this application
//
// If these scopes change, existing token files must be deleted and the
// consent flow repeated.
var DefaultOAuthScopes = []string{
	gmail.GmailReadonlyScope,
	drive.DriveFileScope,
}
