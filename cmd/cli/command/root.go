package command

// root.go defines the root command for the libraryhub CLI.
// Global flags and shared client/cache state live here.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"libraryhub/cmd/cli/cache"
	"libraryhub/cmd/cli/client"
)

var (
	apiURL  string // global flag for API server URL
	cfgFile string // config file path

	httpClient *client.HTTPClient
	queryCache *cache.QueryCache
	cliConfig  *Config
)

var rootCmd = &cobra.Command{
	Use:   "libraryhub",
	Short: "libraryhub - personal media catalogue CLI",
	Long: `libraryhub is a command line client for the libraryhub API. Use it to:
- Catalogue your books and movies
- Organize them on shelves and in categories
- Track reading and watching progress
- Connect with friends and browse their profiles

Use "libraryhub [command] -h" to see all available commands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cliConfig = loadCLIConfig(cfgFile)
		httpClient = client.NewHTTPClient(apiURL)
		if cliConfig.AccessToken != "" {
			httpClient.SetToken(cliConfig.AccessToken)
		}
		queryCache = cache.New(cachePath(cfgFile), 5*time.Minute)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		queryCache.Save()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "config file path")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".libraryhub/config.json"
	}
	return filepath.Join(home, ".libraryhub", "config.json")
}

// cachePath keeps the query cache next to the config file.
func cachePath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "cache.json")
}
