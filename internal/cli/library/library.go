package library

import "github.com/spf13/cobra"

var LibraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Library commands",
	Long:  "Manage the books in your personal library",
}
