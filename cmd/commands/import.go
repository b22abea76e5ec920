package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/markdown"
)

var importName string

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a timecoded markdown file as a new script",
		Long: `Import a markdown file in the exchange format produced by export.
The script name defaults to a slug of the document title.

Examples:
  storybeat import launch.md
  storybeat import launch.md --name launch-v2`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	cmd.Flags().StringVarP(&importName, "name", "n", "", "Script name (defaults to the title slug)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	mut := projectMutator()
	s, err := markdown.Parse(string(content), mut.Est)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	name := importName
	if name == "" {
		name = cli.Slugify(s.Title)
	}
	if name == "" {
		name = strings.TrimSuffix(args[0], ".md")
		name = cli.Slugify(name)
	}
	if err := cli.ValidateScriptName(name); err != nil {
		return err
	}
	if _, err := files.ReadScript(name); err == nil {
		return fmt.Errorf("script %s already exists", name)
	} else if !errors.Is(err, files.ErrNotFound) {
		return err
	}

	if err := files.WriteScript(name, s); err != nil {
		return err
	}
	fmt.Printf("✓ Imported %s as %s (%d rows)\n", args[0], name, len(s.Pairs))
	return nil
}
