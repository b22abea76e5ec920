package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/pkg/files"
)

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <script>",
		Short: "Move a script to the archive",
		Long: `Move a script out of the active set without deleting it.
Archived scripts can be brought back with 'storybeat restore'.

Examples:
  storybeat archive old-draft`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.ArchiveScript(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Archived script %s\n", args[0])
			return nil
		},
	}
}
