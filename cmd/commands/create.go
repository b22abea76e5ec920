package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
)

var createTitle string

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty script",
		Long: `Create a new script with a single empty row.

Examples:
  # Create a script named after its slug
  storybeat create launch

  # Create with an explicit display title
  storybeat create launch --title "Launch Video"`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runCreate,
	}

	cmd.Flags().StringVarP(&createTitle, "title", "t", "", "Display title (defaults to the name)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := cli.ValidateScriptName(name); err != nil {
		return err
	}
	if _, err := files.ReadScript(name); err == nil {
		return fmt.Errorf("script %s already exists", name)
	} else if !errors.Is(err, files.ErrNotFound) {
		return err
	}

	title := createTitle
	if title == "" {
		title = name
	}

	mut := projectMutator()
	if err := files.WriteScript(name, mut.New(title)); err != nil {
		return err
	}

	fmt.Printf("✓ Created script %s\n", name)
	return nil
}
