// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/naka-gawa/github-insights/internal/activity"
	"github.com/naka-gawa/github-insights/internal/config"
	"github.com/naka-gawa/github-insights/internal/gateway"
	"github.com/naka-gawa/github-insights/internal/review"
	"github.com/naka-gawa/github-insights/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "github-insights",
	Short: "Analyse GitHub profiles and score their hireability.",
	Long: `github-insights aggregates a GitHub user's profile, repositories and
language usage into one summary with a hireability score and a short review.
Run "serve" for the dashboard API, or "analyze"/"compare" for one-off JSON output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr)
		}

		// A .env file is optional; the environment always wins over it.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Printf("Warning: error loading .env file: %v", err)
		}

		configFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (yaml, json or toml)")
}

// newAnalyzer wires the gateway, review generator and activity source.
// It returns domain.ErrMissingToken when no GitHub token is configured.
func newAnalyzer(cfg config.Config, logger *log.Logger) (*usecase.Analyzer, error) {
	githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubToken, cfg.GitHubAPIURL, logger)
	if err != nil {
		return nil, err
	}

	var source usecase.ActivitySource = activity.NewMock()
	if cfg.ActivitySource == config.ActivityGitHub {
		source = activity.NewGitHub(githubGateway)
	}

	return usecase.NewAnalyzer(githubGateway, review.NewTemplate(), source, logger), nil
}
