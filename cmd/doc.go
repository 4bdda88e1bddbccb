// Package cmd implements the command-line interface for gmail-drive-pipe.
//
// This package provides the following commands:
//   - archive: Search the inbox for keywords and save attachments to Drive
//   - auth: Run the OAuth consent flow and store a token for an account
//   - version: Display version information
//
// The archive command is the default command when no subcommand is specified.
package cmd
