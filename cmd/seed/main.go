package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adhikav/customerdesk/internal/config"
	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/generator"
	"github.com/adhikav/customerdesk/internal/logging"
	"github.com/adhikav/customerdesk/internal/metrics"
	"github.com/adhikav/customerdesk/internal/repository"
	"github.com/adhikav/customerdesk/internal/viewmodel"
)

var errMissingDataset = errors.New("dataset not found")

func main() {
	var (
		datasetDir    = flag.String("dataset-dir", "./data", "Directory containing customers.json")
		customersPath = flag.String("customers", "", "Path to customers.json (overrides dataset-dir)")
		workers       = flag.Int("workers", 4, "Number of concurrent workers for loading")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, "seed")

	path, err := resolveDatasetPath(*datasetDir, *customersPath)
	if err != nil {
		logger.Error("dataset resolution failed", "error", err)
		os.Exit(1)
	}

	records, err := loadCustomerRecords(path)
	if err != nil {
		logger.Error("failed to load customers", "error", err, "path", path)
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Error("customer dataset empty", "path", path)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := repository.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open repository", "error", err, "driver", cfg.Storage.Driver)
		os.Exit(1)
	}
	defer func() {
		if err := closeRepo(context.Background()); err != nil {
			logger.Warn("closing repository failed", "error", err)
		}
	}()

	customers := make([]*domain.Customer, len(records))
	for i, rec := range records {
		customers[i] = domain.NewFrom(rec.TotalSales, rec.FirstName, rec.LastName, rec.IsCompany, rec.Email)
	}

	start := time.Now()
	logger.Info("loading customers", "count", len(customers), "workers", *workers, "driver", cfg.Storage.Driver)

	loader := repository.NewBulkLoader(repo, *workers)
	if err := loader.Load(ctx, customers); err != nil {
		logger.Error("customer loading failed", "error", err)
		os.Exit(1)
	}

	logger.Info("loading complete", "duration", time.Since(start).String(), "customers", len(customers))

	if err := summarizeRepository(ctx, repo, logger); err != nil {
		logger.Error("post-load summary failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsSummary {
		if err := metrics.WriteCounters(os.Stdout); err != nil {
			logger.Warn("metrics summary failed", "error", err)
		}
	}
}

// summarizeRepository wraps the loaded repository in a list view, selects every
// customer, and reports the aggregate total as a sanity check on the load.
func summarizeRepository(ctx context.Context, repo repository.Repository, logger *slog.Logger) error {
	list, err := viewmodel.NewCustomerListView(ctx, repo, logger)
	if err != nil {
		return fmt.Errorf("building customer list: %w", err)
	}
	defer list.Close()

	total := viewmodel.NewSelectedTotal(list)
	defer total.Close()

	for _, member := range list.Collection().Items() {
		member.SetSelected(true)
	}

	logger.Info("repository summary",
		"customers", list.Collection().Len(),
		"total_sales", total.Total())
	return nil
}

func resolveDatasetPath(baseDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("stat %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}
	path := filepath.Join(baseDir, "customers.json")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", errMissingDataset, path)
	}
	return path, nil
}

func loadCustomerRecords(path string) ([]generator.CustomerRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var records []generator.CustomerRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
