package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/storybeat/storybeat-cli/cmd/commands"
	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "storybeat",
	Short: "Terminal editor for two-track recording scripts",
	Long: `Storybeat is a terminal editor for recording scripts. Every row pairs
spoken text with a visual direction, and row heights encode estimated
speaking time against a target runtime. Scripts are stored as plain
YAML files and exported as timecoded markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No .storybeat directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'storybeat init' first to initialize a new project.\n")
			os.Exit(1)
		}

		lock, err := files.AcquireProjectLock()
		if err != nil {
			return err
		}
		defer lock.Release()

		settings, err := files.ReadSettings()
		if err != nil {
			return err
		}

		app := tui.NewApp(settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Storybeat project",
	Long:  `Creates the .storybeat folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Storybeat project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .storybeat folder structure")
		fmt.Println("✓ You can now create scripts!")
		fmt.Println("\nRun 'storybeat' to start the interactive editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Storybeat",
	Long:  `Display the current version of the Storybeat CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Storybeat version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
