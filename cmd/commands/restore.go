package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/pkg/files"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <script>",
		Short: "Restore an archived script",
		Long: `Move an archived script back into the active set.

Examples:
  storybeat restore old-draft`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.RestoreScript(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Restored script %s\n", args[0])
			return nil
		},
	}
}
