package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Gmail and Drive for an account",
		Long: `Run the Google OAuth consent flow and store the resulting token on disk.
The token is saved per account, so several Google accounts can be
authorized side by side.

Client credentials are read from the GOOGLE_OAUTH_CLIENT_ID and
GOOGLE_OAUTH_CLIENT_SECRET environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := google.GetAuthURLForAccount(account)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Visit this URL to authorize account %s:\n\n%s\n\n", account, url)
			fmt.Fprint(cmd.OutOrStdout(), "Enter the authorization code: ")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read authorization code: %w", err)
				}
				return fmt.Errorf("no authorization code entered")
			}
			code := strings.TrimSpace(scanner.Text())
			if code == "" {
				return fmt.Errorf("no authorization code entered")
			}

			if err := google.SaveTokenForAccount(context.Background(), account, code); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved for account %s\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize (default: 'default')")
	return cmd
}
