package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/markdown"
	"github.com/storybeat/storybeat-cli/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <script>",
		Short: "Show a script's rows with timecodes and durations",
		Long: `Show every row of a script: start timecode, spoken text, visual
direction and estimated duration.

Examples:
  # Show a script
  storybeat show launch

  # Show as YAML
  storybeat show launch -o yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := files.ReadScript(args[0])
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" && outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, s)
	}

	fmt.Printf("%s  (%s spoken of %s target)\n\n",
		s.Title,
		cli.FormatSeconds(s.SpokenDuration()),
		cli.FormatSeconds(s.TotalDurationSeconds))

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("START", "SPOKEN", "VISUAL", "DURATION")
	at := 0.0
	for _, p := range s.Pairs {
		speech := p.Speech.Content
		if p.Speech.Kind == models.KindPause {
			speech = fmt.Sprintf("(pause %gs)", p.Speech.DurationSeconds)
		}
		visual := p.Visual.Content
		if p.VisualSpan == 0 {
			visual = "^"
		} else if p.VisualSpan > 1 {
			visual = fmt.Sprintf("%s (x%d rows)", visual, p.VisualSpan)
		}
		table.Row(
			markdown.FormatTimecode(at),
			cli.Truncate(speech, 40),
			cli.Truncate(visual, 30),
			cli.FormatSeconds(p.Speech.DurationSeconds),
		)
		at += p.Speech.DurationSeconds
	}
	table.Flush()

	if s.OverBudget() {
		fmt.Printf("\nOver budget by %s\n", cli.FormatSeconds(s.SpokenDuration()-s.TotalDurationSeconds))
	}
	return nil
}
