package progress

import "github.com/spf13/cobra"

var ProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Reading progress commands",
	Long:  "Log and manage your daily reading progress",
}
