package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [script]",
		Short: "Show word and duration statistics",
		Long: `Show per-script statistics: rows, words, pauses, spoken duration
and the target runtime. Without an argument, all scripts are listed.

Examples:
  storybeat stats
  storybeat stats launch`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runStats,
	}
}

type scriptStats struct {
	name   string
	rows   int
	words  int
	pauses int
	spoken float64
	target float64
	over   bool
}

func collectStats(name string) (scriptStats, error) {
	s, err := files.ReadScript(name)
	if err != nil {
		return scriptStats{}, err
	}
	st := scriptStats{
		name:   name,
		rows:   len(s.Pairs),
		spoken: s.SpokenDuration(),
		target: s.TotalDurationSeconds,
		over:   s.OverBudget(),
	}
	for _, p := range s.Pairs {
		if p.Speech.Kind == models.KindPause {
			st.pauses++
			continue
		}
		st.words += timing.CountWords(p.Speech.Content)
	}
	return st, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	var names []string
	if len(args) == 1 {
		names = args
	} else {
		var err error
		names, err = files.ListScripts()
		if err != nil {
			return err
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Script", "Rows", "Words", "Pauses", "Spoken", "Target", "Budget"})

	var totalWords, totalRows int
	for _, name := range names {
		st, err := collectStats(name)
		if err != nil {
			return err
		}
		budget := "ok"
		if st.over {
			budget = "over"
		}
		t.AppendRow(table.Row{
			st.name, st.rows, st.words, st.pauses,
			cli.FormatSeconds(st.spoken), cli.FormatSeconds(st.target), budget,
		})
		totalWords += st.words
		totalRows += st.rows
	}
	if len(names) > 1 {
		t.AppendFooter(table.Row{"total", totalRows, totalWords, "", "", "", ""})
	}
	t.Render()
	return nil
}
