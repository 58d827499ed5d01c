package viewmodel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/notify"
	"github.com/adhikav/customerdesk/internal/repository"
)

// CustomerListView keeps an observable collection of customer views
// synchronized with the repository's membership. It relays every member
// notification through its own notifier, on top of the PropCustomers
// membership notification it fires per append, so aggregates and command
// gates can subscribe in one place.
type CustomerListView struct {
	repo     repository.Repository
	logger   *slog.Logger
	notifier *notify.Notifier

	collection *Collection
	wrapped    map[*domain.Customer]*CustomerView
	memberSubs map[*CustomerView]notify.Subscription

	appendSub AppendSubscription
	addedSub  repository.AddedSubscription
	closed    bool
}

// NewCustomerListView snapshots the repository and wraps every customer.
// Member wiring is keyed off the collection's append events and the append
// subscription is registered before the first member enters, so no member is
// ever observable unwired.
func NewCustomerListView(ctx context.Context, repo repository.Repository, logger *slog.Logger) (*CustomerListView, error) {
	if repo == nil {
		panic("viewmodel: nil repository")
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := &CustomerListView{
		repo:       repo,
		logger:     logger,
		notifier:   notify.New(),
		collection: NewCollection(),
		wrapped:    make(map[*domain.Customer]*CustomerView),
		memberSubs: make(map[*CustomerView]notify.Subscription),
	}
	l.appendSub = l.collection.SubscribeAppend(l.wireMember)

	customers, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot repository: %w", err)
	}
	for _, c := range customers {
		l.appendCustomer(c)
	}
	l.addedSub = repo.SubscribeAdded(l.onCustomerAdded)

	logger.Debug("customer list wired", "members", l.collection.Len())
	return l, nil
}

// Notifier exposes the coordinator's notifier: membership changes arrive as
// PropCustomers, member property changes under their own names.
func (l *CustomerListView) Notifier() *notify.Notifier {
	return l.notifier
}

// Collection returns the observable member collection.
func (l *CustomerListView) Collection() *Collection {
	return l.collection
}

// onCustomerAdded mirrors a repository acceptance into the collection. A
// customer instance that is already wrapped is never wrapped twice.
func (l *CustomerListView) onCustomerAdded(c *domain.Customer) {
	if l.closed {
		return
	}
	if _, ok := l.wrapped[c]; ok {
		return
	}
	l.appendCustomer(c)
}

func (l *CustomerListView) appendCustomer(c *domain.Customer) {
	v := newCustomerView(l.repo, c, false)
	l.wrapped[c] = v
	l.collection.Append(v)
}

// wireMember subscribes to a new member's notifications and then announces
// the membership change. Runs inside Collection.Append, before the member is
// visible to other subscribers.
func (l *CustomerListView) wireMember(v *CustomerView) {
	sub := v.Notifier().Subscribe(func(prop string) {
		l.notifier.Notify(prop)
	})
	l.memberSubs[v] = sub
	l.notifier.Notify(PropCustomers)
}

// Close unwires every member, the membership subscription, and the repository
// subscription, then clears the collection. Calling it again is a no-op.
func (l *CustomerListView) Close() {
	if l.closed {
		return
	}
	l.closed = true

	l.repo.UnsubscribeAdded(l.addedSub)
	l.collection.UnsubscribeAppend(l.appendSub)
	for v, sub := range l.memberSubs {
		v.Notifier().Unsubscribe(sub)
	}
	l.memberSubs = make(map[*CustomerView]notify.Subscription)
	l.wrapped = make(map[*domain.Customer]*CustomerView)
	l.collection.Clear()
}
