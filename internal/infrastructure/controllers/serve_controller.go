package controllers

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
	"github.com/rios0rios0/repograde/internal/infrastructure/server"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	server   *server.Server
	history  repositories.HistoryRepository
	settings *entities.Settings
}

// NewServeController creates a new ServeController.
func NewServeController(
	srv *server.Server,
	history repositories.HistoryRepository,
	settings *entities.Settings,
) *ServeController {
	return &ServeController{server: srv, history: history, settings: settings}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API that scores repositories and lists recent analyses.

Endpoints:
  POST /api/analyze   Score a repository, body {"url": "https://github.com/owner/repo"}
  GET  /api/history   List the most recent analyses
  GET  /healthz       Liveness probe

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
	}
}

// Execute serves until the process receives an interrupt, then releases the
// history store.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) error {
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		it.settings.Server.Port = port
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer it.closeHistory()

	return it.server.Run(ctx, it.settings.ListenAddress())
}

func (it *ServeController) closeHistory() {
	closer, ok := it.history.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warnf("Failed to close history store: %v", err)
	}
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("port", "p", "", "Port to listen on (overrides PORT and server.port)")
}
