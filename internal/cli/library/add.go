package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to your library",
	Long:  "Add a book to your library with optional status, genres and page count",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		genres, _ := cmd.Flags().GetString("genres")
		status, _ := cmd.Flags().GetString("status")
		pages, _ := cmd.Flags().GetInt("pages")

		if title == "" {
			return fmt.Errorf("--title is required")
		}
		if author == "" {
			return fmt.Errorf("--author is required")
		}

		token := viper.GetString("user.token")
		if token == "" {
			return fmt.Errorf("not logged in. Please run: bookify auth login")
		}

		genreList := []string{}
		for _, g := range strings.Split(genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genreList = append(genreList, g)
			}
		}

		body := map[string]interface{}{
			"title":  title,
			"author": author,
			"genres": genreList,
			"status": status,
		}
		if pages > 0 {
			body["total_pages"] = pages
		}

		jsonBody, _ := json.Marshal(body)
		serverURL := fmt.Sprintf("http://%s:%d/api/v1/books",
			viper.GetString("server.host"),
			viper.GetInt("server.http_port"))

		req, _ := http.NewRequest("POST", serverURL, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to add book: %w", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		var result map[string]interface{}
		json.Unmarshal(respBody, &result)

		if result["success"] == true {
			book := result["data"].(map[string]interface{})
			fmt.Printf("✓ Book added to library\n")
			fmt.Printf("  ID: %s\n", book["id"])
			fmt.Printf("  Title: %s\n", title)
			fmt.Printf("  Author: %s\n", author)
			fmt.Printf("  Status: %s\n", status)
			if series, ok := book["series_name"].(string); ok && series != "" {
				fmt.Printf("  Series: %s\n", series)
			}
		} else {
			return fmt.Errorf("failed: %v", result["error"])
		}

		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "Book title (required)")
	addCmd.Flags().String("author", "", "Book author (required)")
	addCmd.Flags().String("genres", "", "Comma-separated genres")
	addCmd.Flags().String("status", "planned", "Status (planned, current, past)")
	addCmd.Flags().Int("pages", 0, "Total pages")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("author")
	LibraryCmd.AddCommand(addCmd)
}
