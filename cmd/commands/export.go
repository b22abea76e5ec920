package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/markdown"
)

var (
	exportToFile string
	exportCopy   bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <script>",
		Short: "Export a script as timecoded markdown",
		Long: `Export a script in the timecoded markdown exchange format: one line
per row, visual directions in braces.

By default the markdown is written to stdout.

Examples:
  # Export to stdout
  storybeat export launch

  # Export to a file
  storybeat export launch --file launch.md

  # Copy to the system clipboard
  storybeat export launch --copy`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().BoolVarP(&exportCopy, "copy", "c", false, "Copy to the system clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := files.ReadScript(args[0])
	if err != nil {
		return err
	}

	output := markdown.Export(*s)

	switch {
	case exportCopy:
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("✓ Copied %s to clipboard\n", args[0])
	case exportToFile != "":
		if err := os.WriteFile(exportToFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportToFile, err)
		}
		fmt.Printf("✓ Exported %s to %s\n", args[0], exportToFile)
	default:
		fmt.Print(output)
	}
	return nil
}
