package stats

import "github.com/spf13/cobra"

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistics commands",
	Long:  "View your reading statistics and streaks",
}
