package repository

import (
	"context"
	"sync"

	"github.com/adhikav/customerdesk/internal/domain"
)

// BatchError accumulates per-customer failures from a bulk load.
type BatchError struct {
	Errors []error
}

func (e *BatchError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *BatchError) append(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *BatchError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BulkLoader adds customer batches through a worker pool. Intended for
// seeding a backend before any observers attach; added events fire from
// worker goroutines.
type BulkLoader struct {
	repo    Repository
	workers int
}

// NewBulkLoader returns a loader with the provided concurrency.
func NewBulkLoader(repo Repository, workers int) *BulkLoader {
	if repo == nil {
		panic("repository: nil repository")
	}
	if workers <= 0 {
		workers = 4
	}
	return &BulkLoader{repo: repo, workers: workers}
}

// Load adds every customer, collecting individual failures into a BatchError.
// Context cancellation aborts the run and is returned as-is.
func (l *BulkLoader) Load(ctx context.Context, customers []*domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	indexCh := make(chan int)
	errCh := make(chan error, len(customers))
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := l.repo.Add(ctx, customers[idx]); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < l.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := range customers {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	// A cancelled feed leaves the batch partially loaded even when every
	// queued Add succeeded, so the context error takes precedence.
	if err := ctx.Err(); err != nil {
		return err
	}

	var batchErr BatchError
	for err := range errCh {
		batchErr.append(err)
	}
	return batchErr.asError()
}
