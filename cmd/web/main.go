package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/growth-tools/goal-report/pkg/server"
	"github.com/growth-tools/goal-report/pkg/services/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the goal-report web server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.goal-report-sites", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the site profile registry (default is $HOME/.goal-report-sites)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create site registry: %w", err)
	}

	sites, err := registry.GetSites(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list site profiles: %w", err)
	}
	logger.Info().Msgf("Site registry found at `%s` successfully loaded.", cfgPath)
	for _, site := range sites {
		logger.Info().Msgf("Site: `%s`", site)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry: registry,
		},
	})

	return api.Start()
}
