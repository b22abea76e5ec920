package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/script"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

// requireProject is the shared PreRunE for commands that need an
// initialized project in the working directory.
func requireProject(cmd *cobra.Command, args []string) error {
	if !files.ProjectExists() {
		return fmt.Errorf("no .storybeat directory found. Run 'storybeat init' first")
	}
	return nil
}

// projectMutator builds a mutator from the project's timing settings.
func projectMutator() script.Mutator {
	settings, err := files.ReadSettings()
	if err != nil {
		return script.NewMutator(timing.NewEstimator())
	}
	est := timing.Estimator{
		WordsPerMinute:  settings.Timing.WordsPerMinute,
		MinTextSeconds:  settings.Timing.MinTextSeconds,
		MinPauseSeconds: settings.Timing.MinPauseSeconds,
	}
	m := script.NewMutator(est)
	if settings.Timing.DefaultPauseSecs > 0 {
		m.DefaultPause = settings.Timing.DefaultPauseSecs
	}
	return m
}
