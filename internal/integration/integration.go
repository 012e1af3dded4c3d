// Package integration wires the flow configuration, client and HTTP
// facade together and offers the scripted entry points used by the CLI.
package integration

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flowbridge/flowbridge/internal/config"
	"github.com/flowbridge/flowbridge/internal/flow"
	"github.com/flowbridge/flowbridge/internal/server"
)

// Integration composes Config -> Client -> Server.
type Integration struct {
	cfg    *config.Config
	client server.Invoker
	server *server.Server
	logger *zap.Logger
}

// New builds the flow client for cfg and the HTTP facade in front of it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Integration, error) {
	client, err := flow.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating flow client: %w", err)
	}
	return newWith(cfg, client, logger), nil
}

func newWith(cfg *config.Config, client server.Invoker, logger *zap.Logger) *Integration {
	srv := server.New(server.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		AllowAll: true,
	}, client, logger)

	return &Integration{
		cfg:    cfg,
		client: client,
		server: srv,
		logger: logger,
	}
}

// TestFlow sends a single text input through the same payload shape
// as the HTTP path and returns the envelope directly.
func (i *Integration) TestFlow(ctx context.Context, text string) flow.Result {
	i.logger.Info("testing flow", zap.String("input", text))
	return i.client.Invoke(ctx, flow.NewInputPayload(text))
}

// RunServer starts the HTTP facade on the configured host and port.
// It blocks until the server stops.
func (i *Integration) RunServer() error {
	return i.server.Start()
}

// Shutdown gracefully stops the HTTP facade.
func (i *Integration) Shutdown(ctx context.Context) error {
	return i.server.Shutdown(ctx)
}
