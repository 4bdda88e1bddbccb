package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the gmail-drive-pipe application
var rootCmd = &cobra.Command{
	Use:   "gmail-drive-pipe",
	Short: "Archives Gmail attachments into Google Drive",
	Long: `gmail-drive-pipe searches your Gmail inbox for messages matching a set of
keywords, tolerant of typos and plural forms, and saves every attachment
into a date-partitioned folder tree in Google Drive. Re-running the same
search never duplicates files.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gmail-drive-pipe version %s\n" .Version}}`)

	// If no subcommand is provided, run the archive command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "archive")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newArchiveCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
