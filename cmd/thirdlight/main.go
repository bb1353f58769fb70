// Command thirdlight talks to a ThirdLight IMS account from the shell.
//
// The account is configured through flags or environment variables
// (a .env file in the working directory is honored):
//
//	THIRDLIGHT_URL      https://<account>.thirdlight.com
//	THIRDLIGHT_API_KEY  the API key
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	thirdlight "github.com/rethought/thirdlight-go"
)

var rootCmd = &cobra.Command{
	Use:   "thirdlight",
	Short: "Interact with a ThirdLight IMS account",
	Long: `Interact with a ThirdLight IMS account.

Examples:
  thirdlight call Files.GetAssetDetails assetId=123
  thirdlight upload photo.jpg --folder /Uploads --caption "At the beach" --keyword beach
  thirdlight folders`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("url", "", "account URL (defaults to $THIRDLIGHT_URL)")
	rootCmd.PersistentFlags().String("api-key", "", "API key (defaults to $THIRDLIGHT_API_KEY)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(foldersCmd)
}

// newClient builds and connects a client from flags and environment.
func newClient(ctx context.Context, cmd *cobra.Command) (*thirdlight.Client, error) {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = os.Getenv("THIRDLIGHT_URL")
	}
	key, _ := cmd.Flags().GetString("api-key")
	if key == "" {
		key = os.Getenv("THIRDLIGHT_API_KEY")
	}
	if url == "" || key == "" {
		return nil, fmt.Errorf("account URL and API key required (--url/--api-key or THIRDLIGHT_URL/THIRDLIGHT_API_KEY)")
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := thirdlight.New(url, key, thirdlight.WithLogger(logger))
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return client, nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
