package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hridaya423/bookify/internal/cli/auth"
	cliconfig "github.com/hridaya423/bookify/internal/cli/config"
	"github.com/hridaya423/bookify/internal/cli/library"
	"github.com/hridaya423/bookify/internal/cli/progress"
	"github.com/hridaya423/bookify/internal/cli/stats"
)

var rootCmd = &cobra.Command{
	Use:   "bookify",
	Short: "Bookify reading tracker CLI",
	Long:  "Track your books, reading progress and statistics from the command line",
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".bookify"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Missing config file is fine, defaults apply until first login.
	viper.ReadInConfig()
}

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(cliconfig.ConfigCmd)
	rootCmd.AddCommand(library.LibraryCmd)
	rootCmd.AddCommand(progress.ProgressCmd)
	rootCmd.AddCommand(stats.StatsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
