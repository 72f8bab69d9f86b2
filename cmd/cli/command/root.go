package command

// root.go defines the root command for the tunahub CLI and its global flags.

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"tunahub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL  string        // Global flag for API server URL
	timeout time.Duration // per-command deadline
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tunahub",
	Short: "tunahub - music catalog command line interface",
	Long: `tunahub is a small client for the tunahub catalog API. Use it to:
- Create, list, update and delete artists
- Manage songs and move them between artists
- Tag songs with genres

Use "tunahub [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("TUNAHUB_API")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(artistCmd, songCmd, genreCmd, songGenreCmd)
}

func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// requireFlags fails when any of names was not set on the command line.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("--%s is required", name)
		}
	}
	return nil
}
