package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <script> <field> <value>",
		Short: "Set a script's title or target duration",
		Long: `Set a script field without opening the editor.

Fields:
  title     - display title
  duration  - target runtime in seconds

Examples:
  storybeat set launch title "Launch Video v2"
  storybeat set launch duration 90`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"title", "duration"},
		PreRunE:   requireProject,
		RunE:      runSet,
	}
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	name, field, value := args[0], args[1], args[2]

	s, err := files.ReadScript(name)
	if err != nil {
		return err
	}

	mut := projectMutator()
	switch field {
	case "title":
		*s = mut.UpdateTitle(*s, value)
	case "duration":
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		if seconds < 0 {
			return fmt.Errorf("duration must be non-negative")
		}
		*s = mut.UpdateTargetDuration(*s, seconds)
	default:
		return fmt.Errorf("unknown field %q (title, duration)", field)
	}

	if err := files.WriteScript(name, *s); err != nil {
		return err
	}
	fmt.Printf("✓ Updated %s of %s\n", field, name)
	if field == "duration" && s.OverBudget() {
		fmt.Printf("  Note: spoken content (%s) now exceeds the target\n", cli.FormatSeconds(s.SpokenDuration()))
	}
	return nil
}
