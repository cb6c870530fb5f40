package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your reading statistics",
	Long:  "Display library totals, streaks and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := viper.GetString("user.token")
		if token == "" {
			return fmt.Errorf("not logged in. Please run: bookify auth login")
		}

		serverURL := fmt.Sprintf("http://%s:%d/api/v1/stats",
			viper.GetString("server.host"),
			viper.GetInt("server.http_port"))

		req, _ := http.NewRequest("GET", serverURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to get statistics: %w", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		var result map[string]interface{}
		json.Unmarshal(respBody, &result)

		if result["success"] != true {
			return fmt.Errorf("failed: %v", result["error"])
		}

		data := result["data"].(map[string]interface{})

		num := func(key string) int {
			if v, ok := data[key].(float64); ok {
				return int(v)
			}
			return 0
		}

		fmt.Println("\nReading Statistics:")
		fmt.Println("")
		fmt.Printf("Library:\n")
		fmt.Printf("  Total books: %d\n", num("total_books"))
		fmt.Printf("  Completed: %d\n", num("completed_books"))
		fmt.Printf("  Currently reading: %d\n", num("current_books"))
		fmt.Printf("  Planned: %d\n", num("planned_books"))
		fmt.Printf("  Completion rate: %d%%\n", num("completion_rate"))
		fmt.Println("")
		fmt.Printf("This year:\n")
		fmt.Printf("  Books completed: %d\n", num("books_this_year"))
		fmt.Printf("  Goal progress: %d%%\n", num("goal_progress"))
		fmt.Println("")
		fmt.Printf("Streaks:\n")
		fmt.Printf("  Current: %d days\n", num("current_streak"))
		fmt.Printf("  Longest: %d days\n", num("longest_streak"))

		if genres, ok := data["genres"].([]interface{}); ok && len(genres) > 0 {
			fmt.Println("")
			fmt.Printf("Top genres:\n")
			for i, item := range genres {
				if i >= 5 {
					break
				}
				g := item.(map[string]interface{})
				fmt.Printf("  %s: %.0f books (%.0f%%)\n", g["genre"], g["count"], g["percentage"])
			}
		}

		return nil
	},
}

func init() {
	StatsCmd.AddCommand(showCmd)
}
