package cli

import (
	"github.com/developerashkan/Gantt-Chart-Generator/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "gantt",
	Short:   "Render a project schedule as a Gantt chart",
	Long:    `Gantt turns a single pasted line of tasks into a horizontal bar chart. Run without arguments for the interactive view.`,
	Version: version.String(),
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
