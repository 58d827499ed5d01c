package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adhikav/customerdesk/internal/config"
	"github.com/adhikav/customerdesk/internal/graph"
)

// Open selects a backend from the storage configuration. The returned close
// function releases any underlying handle and is safe to call on every
// backend.
func Open(ctx context.Context, cfg config.Storage, logger *slog.Logger) (Repository, func(context.Context) error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), func(context.Context) error { return nil }, nil
	case config.DriverSQLite:
		repo, err := OpenSQLite(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, func(context.Context) error { return repo.Close() }, nil
	case config.DriverGraph:
		client, err := graph.NewNeo4jClient(ctx, graph.Options{
			URI:            cfg.Graph.URI,
			Database:       cfg.Graph.Database,
			Username:       cfg.Graph.Username,
			Password:       cfg.Graph.Password,
			MaxConnections: cfg.Graph.MaxConnections,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := OpenGraph(ctx, client, logger)
		if err != nil {
			_ = client.Close(ctx)
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
