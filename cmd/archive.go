package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/archive"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/drive"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/gmail"
	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/logging"
)

func newArchiveCmd() *cobra.Command {
	var (
		account    string
		folder     string
		maxResults int64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "archive [keywords...]",
		Short: "Search the inbox and save matching attachments to Drive",
		Long: `Search your Gmail inbox for messages with attachments matching the given
keywords. The keywords are expanded with spelling corrections and plural
forms before searching. Every attachment found is saved into Drive under
<folder>/<year>/<month>, named after the sender and the time the message
arrived. Attachments that are already in Drive are skipped.

Keywords can be passed as arguments; without arguments you will be
prompted for them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gmail.HasTokenForAccount(account) {
				return fmt.Errorf("no OAuth token for account %s, run 'gmail-drive-pipe auth' first", account)
			}

			keywords := strings.Join(args, " ")
			if strings.TrimSpace(keywords) == "" {
				var err error
				keywords, err = promptKeywords(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			gmailClient, err := gmail.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
			}
			gmailClient.SetMaxSearchResults(maxResults)

			driveClient, err := drive.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.WithAccount(
				slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), account)

			pipeline, err := archive.New(gmailClient, driveClient,
				archive.WithRootFolder(folder),
				archive.WithLogger(logger),
				archive.WithProgress(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			summary, err := pipeline.Run(ctx, keywords)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			if len(summary.Failures) > 0 {
				return fmt.Errorf("%d items could not be archived", len(summary.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&folder, "folder", archive.DefaultRootFolder, "Top-level Drive folder to archive into")
	cmd.Flags().Int64Var(&maxResults, "max-results", gmail.DefaultMaxSearchResults, "Maximum number of messages to process")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// promptKeywords asks the user for keywords on the terminal.
func promptKeywords(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter keywords to search for emails (separated by spaces): ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read keywords: %w", err)
		}
		return "", fmt.Errorf("no keywords entered")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func printSummary(out io.Writer, summary *archive.Summary) {
	fmt.Fprintf(out, "Done: %d messages, %d uploaded, %d already archived\n",
		summary.Messages, summary.Uploaded, summary.Skipped)
	if summary.SkippedMessages > 0 {
		fmt.Fprintf(out, "Skipped %d messages without a usable timestamp\n", summary.SkippedMessages)
	}
	for _, f := range summary.Failures {
		if f.Filename != "" {
			fmt.Fprintf(out, "Failed: message %s attachment %q: %v\n", f.MessageID, f.Filename, f.Err)
		} else {
			fmt.Fprintf(out, "Failed: message %s: %v\n", f.MessageID, f.Err)
		}
	}
}
