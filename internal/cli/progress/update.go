package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Log reading progress",
	Long:  "Log pages read for a book. Logging twice on the same day replaces that day's entry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, _ := cmd.Flags().GetString("book-id")
		pages, _ := cmd.Flags().GetInt("pages")
		date, _ := cmd.Flags().GetString("date")

		if bookID == "" {
			return fmt.Errorf("--book-id is required")
		}

		token := viper.GetString("user.token")
		if token == "" {
			return fmt.Errorf("not logged in. Please run: bookify auth login")
		}

		body := map[string]interface{}{
			"pages_read": pages,
		}
		if date != "" {
			body["date"] = date
		}

		jsonBody, _ := json.Marshal(body)
		serverURL := fmt.Sprintf("http://%s:%d/api/v1/books/%s/progress",
			viper.GetString("server.host"),
			viper.GetInt("server.http_port"),
			bookID)

		req, _ := http.NewRequest("POST", serverURL, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to log progress: %w", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		var result map[string]interface{}
		json.Unmarshal(respBody, &result)

		if result["success"] == true {
			data := result["data"].(map[string]interface{})
			book := data["book"].(map[string]interface{})

			fmt.Printf("✓ Progress logged!\n")
			fmt.Printf("  Book: %s\n", book["title"])
			fmt.Printf("  Pages read: %d\n", pages)
			current, hasCurrent := book["current_page"].(float64)
			total, hasTotal := book["total_pages"].(float64)
			if hasCurrent && hasTotal && total > 0 {
				fmt.Printf("  Position: %.0f/%.0f pages\n", current, total)
			}
		} else {
			return fmt.Errorf("failed: %v", result["error"])
		}

		return nil
	},
}

func init() {
	updateCmd.Flags().String("book-id", "", "Book ID (required)")
	updateCmd.Flags().Int("pages", 0, "Pages read")
	updateCmd.Flags().String("date", "", "Date (YYYY-MM-DD, defaults to today)")
	updateCmd.MarkFlagRequired("book-id")
	ProgressCmd.AddCommand(updateCmd)
}
