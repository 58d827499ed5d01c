package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/graph"
)

// Graph is the customer repository persisted into a Bolt-speaking graph
// database. Customers are nodes keyed by a repository-assigned id; the full
// node set is loaded into owned instances at open so instance membership
// works the same way as for the in-process backend.
type Graph struct {
	addedBroadcaster
	mu        sync.Mutex
	client    graph.Client
	logger    *slog.Logger
	customers []*domain.Customer
	ids       map[*domain.Customer]string
}

// OpenGraph loads every customer node and returns the backed repository.
func OpenGraph(ctx context.Context, client graph.Client, logger *slog.Logger) (*Graph, error) {
	if client == nil {
		panic("repository: nil graph client")
	}
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		client: client,
		logger: logger,
		ids:    make(map[*domain.Customer]string),
	}

	res, err := client.ExecuteRead(ctx, listCustomersCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list customer nodes: %w", err)
	}
	for _, record := range res.Records {
		c := &domain.Customer{
			TotalSales: toFloat64(record["totalSales"]),
			FirstName:  toString(record["firstName"]),
			LastName:   toString(record["lastName"]),
			IsCompany:  toBool(record["isCompany"]),
			Email:      toString(record["email"]),
		}
		g.customers = append(g.customers, c)
		g.ids[c] = toString(record["customerId"])
	}

	logger.Info("graph repository opened", "customers", len(g.customers))
	return g, nil
}

// ListAll returns the loaded customers in node id order.
func (g *Graph) ListAll(context.Context) ([]*domain.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*domain.Customer(nil), g.customers...), nil
}

// Contains reports instance membership.
func (g *Graph) Contains(_ context.Context, c *domain.Customer) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.ids[c]
	return ok, nil
}

// Add merges a customer node, records the instance, and fires the added
// event. Re-adding a held instance is a no-op.
func (g *Graph) Add(ctx context.Context, c *domain.Customer) error {
	if c == nil {
		panic("repository: nil customer")
	}
	g.mu.Lock()
	if _, ok := g.ids[c]; ok {
		g.mu.Unlock()
		return nil
	}
	g.mu.Unlock()

	id := uuid.NewString()
	params := map[string]any{
		"customerId": id,
		"totalSales": c.TotalSales,
		"firstName":  c.FirstName,
		"lastName":   c.LastName,
		"isCompany":  c.IsCompany,
		"email":      c.Email,
	}
	if _, err := g.client.ExecuteWrite(ctx, mergeCustomerCypher, params); err != nil {
		return fmt.Errorf("merge customer node %s: %w", id, err)
	}

	g.mu.Lock()
	if _, ok := g.ids[c]; ok {
		g.mu.Unlock()
		return nil
	}
	g.customers = append(g.customers, c)
	g.ids[c] = id
	g.mu.Unlock()

	g.fireAdded(c)
	return nil
}

// Close releases the underlying client.
func (g *Graph) Close(ctx context.Context) error {
	return g.client.Close(ctx)
}

const mergeCustomerCypher = `
MERGE (c:Customer {customerId: $customerId})
SET c.totalSales = $totalSales,
    c.firstName = $firstName,
    c.lastName = $lastName,
    c.isCompany = $isCompany,
    c.email = $email
`

const listCustomersCypher = `
MATCH (c:Customer)
RETURN c.customerId AS customerId,
       c.totalSales AS totalSales,
       c.firstName AS firstName,
       c.lastName AS lastName,
       c.isCompany AS isCompany,
       c.email AS email
ORDER BY customerId
`

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}
