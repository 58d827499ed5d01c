// Package repository implements the customer store contract the presentation
// layer depends on: an ordered listing, instance membership, and an add
// operation that refuses duplicates and announces accepted customers to
// subscribers synchronously.
package repository

import (
	"context"

	"github.com/adhikav/customerdesk/internal/domain"
)

// AddedListener receives a customer the moment the repository accepts it.
type AddedListener func(*domain.Customer)

// AddedSubscription identifies one added-event registration.
type AddedSubscription uint64

// Repository is the three-operation contract plus the added-event feed. All
// backends track membership by customer instance: a customer is "contained"
// only if that exact instance was listed or added, never by field equality.
type Repository interface {
	// ListAll returns the customers currently held, in insertion order.
	ListAll(ctx context.Context) ([]*domain.Customer, error)
	// Contains reports whether the instance is already held.
	Contains(ctx context.Context, c *domain.Customer) (bool, error)
	// Add stores the customer and fires the added event before returning.
	// Adding an already-contained instance is a no-op and fires nothing.
	Add(ctx context.Context, c *domain.Customer) error
	// SubscribeAdded registers a listener for accepted customers.
	SubscribeAdded(fn AddedListener) AddedSubscription
	// UnsubscribeAdded drops a registration; unknown tokens are ignored.
	UnsubscribeAdded(sub AddedSubscription)
}

type addedRegistration struct {
	token AddedSubscription
	fn    AddedListener
}

// addedBroadcaster is the shared added-event fan-out embedded by backends.
// Dispatch snapshots the registration list, so listeners may unsubscribe
// during a broadcast.
type addedBroadcaster struct {
	next AddedSubscription
	subs []addedRegistration
}

func (b *addedBroadcaster) SubscribeAdded(fn AddedListener) AddedSubscription {
	if fn == nil {
		panic("repository: nil added listener")
	}
	b.next++
	b.subs = append(b.subs, addedRegistration{token: b.next, fn: fn})
	return b.next
}

func (b *addedBroadcaster) UnsubscribeAdded(sub AddedSubscription) {
	for i, reg := range b.subs {
		if reg.token == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

func (b *addedBroadcaster) fireAdded(c *domain.Customer) {
	snapshot := append([]addedRegistration(nil), b.subs...)
	for _, reg := range snapshot {
		reg.fn(c)
	}
}
