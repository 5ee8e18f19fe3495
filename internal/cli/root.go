package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const banner = `  _ _       _                   _ _ _
 | (_)_ __ | | ____ _ _   _  __| (_) |_
 | | | '_ \| |/ / _' | | | |/ _' | | __|
 | | | | | |   < (_| | |_| | (_| | | |_
 |_|_|_| |_|_|\_\__,_|\__,_|\__,_|_|\__|`

// NewRootCmd builds the command tree. Each call returns fresh commands and
// flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linkaudit",
		Short: "Product-link checker for data files",
		Long: banner + `

linkaudit reads a data file of product records and checks the URL fields:
  - counts every primary link field (ownUrl by default)
  - flags links that point to a forbidden marketplace host
  - flags primary fields that are probably missing a trailing comma

Findings never change the exit status; a report is always printed when
the file could be read.

Exit Codes:
  0  - Success (with or without findings)
  1  - General error
  2  - CLI usage error (missing path, invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or rule overrides
  11 - Data file missing, unreadable or not UTF-8`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command tree with args, writing the report to stdout
// and diagnostics to stderr. SIGINT and SIGTERM cancel the audit.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "--version" {
		printVersionInfo(stdout, stderr)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
