package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursehound/course-api/api"
	"github.com/coursehound/course-api/api/types"
	"github.com/coursehound/course-api/internal/metrics"
	"github.com/coursehound/course-api/internal/services/recommender"
	"github.com/coursehound/course-api/pkg/config"
	"github.com/coursehound/course-api/pkg/logging"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Course Finder server",
	Long: `Start the Course Finder server with the configured settings.

The server renders the course search page, proxies search requests to the
configured recommendation backend, and serves the JSON search API.

Example:
  course-api serve
  course-api serve --port 9090
  course-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// The recommender base URL is injected here once, at startup, so the
	// endpoint resolution stays a pure function of configuration.
	courseClient := recommender.NewClient(recommender.Config{
		BaseURL:   cfg.Recommender.BaseURL,
		Timeout:   cfg.Recommender.Timeout,
		UserAgent: cfg.Recommender.UserAgent,
	}, logger)

	if cfg.Recommender.BaseURL == "" {
		logger.Warn("no recommender base URL configured; searches will use the relative path and fail unless a reverse proxy fills it in",
			zap.String("endpoint", courseClient.Endpoint()),
		)
	}

	deps := &types.Dependencies{
		CourseClient:  courseClient,
		Logger:        logger,
		Metrics:       metrics.New(),
		TopN:          cfg.Recommender.TopN,
		SearchTimeout: cfg.Recommender.Timeout,
	}

	srv := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	srv.SetDependencies(deps)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	logger.Info("starting Course Finder server",
		zap.String("host", serverHost),
		zap.Int("port", serverPort),
		zap.String("endpoint", recommender.ResolveEndpoint(cfg.Recommender.BaseURL)),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		logger.Info("shutting down server")
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server gracefully stopped")
	return nil
}
