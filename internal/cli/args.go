package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// OptionalPath accepts zero or one data file path. Without an argument the
// path comes from linkaudit.yaml or LINKAUDIT_PATH.
func OptionalPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}

// missingPathError explains every way to supply the data file path.
func missingPathError(cmd *cobra.Command) error {
	return fmt.Errorf(`missing required argument: <path>

Usage: %s

Provide the data file as an argument, as 'path' in %s, or via $%s.

Example:
  %s data/handpan-data/scales.ts`, cmd.UseLine(), linkaudit.ConfigFileName, linkaudit.EnvPath, cmd.CommandPath())
}
