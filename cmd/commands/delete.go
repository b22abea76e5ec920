package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/pkg/files"
)

var deleteForce bool

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <script>",
		Short: "Delete a script permanently",
		Long: `Delete a script permanently. Consider 'storybeat archive' instead,
which keeps the script recoverable.

Examples:
  storybeat delete old-draft
  storybeat delete old-draft --force`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !deleteForce {
		fmt.Printf("Delete script %s permanently? [y/N] ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := files.DeleteScript(name); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted script %s\n", name)
	return nil
}
