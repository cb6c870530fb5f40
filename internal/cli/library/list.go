package library

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your book library",
	Long:  "View all books in your library with reading progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		token := viper.GetString("user.token")
		if token == "" {
			return fmt.Errorf("not logged in. Please run: bookify auth login")
		}

		serverURL := fmt.Sprintf("http://%s:%d/api/v1/books?limit=100",
			viper.GetString("server.host"),
			viper.GetInt("server.http_port"))
		if status != "" {
			serverURL += "&status=" + status
		}

		req, _ := http.NewRequest("GET", serverURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to get library: %w", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		var result map[string]interface{}
		json.Unmarshal(respBody, &result)

		if result["success"] == true {
			page := result["data"].(map[string]interface{})
			books := page["data"].([]interface{})

			fmt.Printf("\nYour Library (%d books):\n\n", len(books))

			for i, item := range books {
				book := item.(map[string]interface{})

				fmt.Printf("%d. %s\n", i+1, book["title"].(string))
				fmt.Printf("   Author: %s\n", book["author"].(string))
				fmt.Printf("   Status: %s\n", book["status"].(string))
				if series, ok := book["series_name"].(string); ok && series != "" {
					fmt.Printf("   Series: %s\n", series)
				}
				current, hasCurrent := book["current_page"].(float64)
				total, hasTotal := book["total_pages"].(float64)
				if hasCurrent && hasTotal && total > 0 {
					fmt.Printf("   Progress: %.0f/%.0f pages\n", current, total)
				}
				fmt.Println()
			}
		} else {
			return fmt.Errorf("failed: %v", result["error"])
		}

		return nil
	},
}

func init() {
	listCmd.Flags().String("status", "", "Filter by status (planned, current, past)")
	LibraryCmd.AddCommand(listCmd)
}
