package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single script in the list
type ListItem struct {
	Name            string  `json:"name" yaml:"name"`
	Title           string  `json:"title" yaml:"title"`
	Rows            int     `json:"rows" yaml:"rows"`
	SpokenSeconds   float64 `json:"spoken_seconds" yaml:"spoken_seconds"`
	TargetSeconds   float64 `json:"target_seconds" yaml:"target_seconds"`
	OverBudget      bool    `json:"over_budget,omitempty" yaml:"over_budget,omitempty"`
	IsArchived      bool    `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
}

var listShowArchived bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scripts in the current project",
		Long: `List all scripts in the current project with their row count,
spoken duration and target runtime.

Examples:
  # List active scripts
  storybeat list

  # List archived scripts
  storybeat list --archived

  # JSON output
  storybeat list -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runList,
	}

	cmd.Flags().BoolVarP(&listShowArchived, "archived", "a", false, "Show only archived scripts")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	var names []string
	var err error
	if listShowArchived {
		names, err = files.ListArchivedScripts()
	} else {
		names, err = files.ListScripts()
	}
	if err != nil {
		return err
	}

	result := ListResult{Count: len(names)}
	for _, name := range names {
		item := ListItem{Name: name, IsArchived: listShowArchived}
		if !listShowArchived {
			if s, err := files.ReadScript(name); err == nil {
				item.Title = s.Title
				item.Rows = len(s.Pairs)
				item.SpokenSeconds = s.SpokenDuration()
				item.TargetSeconds = s.TotalDurationSeconds
				item.OverBudget = s.OverBudget()
			}
		}
		result.Items = append(result.Items, item)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" && outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if result.Count == 0 {
		fmt.Println("No scripts found.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "TITLE", "ROWS", "SPOKEN", "TARGET")
	for _, item := range result.Items {
		table.Row(
			item.Name,
			cli.Truncate(item.Title, 32),
			fmt.Sprintf("%d", item.Rows),
			cli.FormatSeconds(item.SpokenSeconds),
			cli.FormatSeconds(item.TargetSeconds),
		)
	}
	table.Flush()
	return nil
}
