// Package graph abstracts the Bolt-speaking database the graph-backed
// customer repository persists into.
package graph

import (
	"context"
	"errors"
)

// Client is the minimal query surface the customer repository needs.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result carries the records produced by one statement.
type Result struct {
	Records []Record
}

// Record is a single row of keyed values.
type Record map[string]any

// Options configures a concrete client.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates no graph endpoint was configured.
var ErrMissingURI = errors.New("graph URI is required")
