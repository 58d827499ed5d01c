package notify

import "github.com/adhikav/customerdesk/internal/metrics"

// Listener receives the name of a property that changed on the owning object.
type Listener func(property string)

// Subscription identifies a single registration so it can be removed later.
// Tokens are never reused within one Notifier.
type Subscription uint64

type registration struct {
	token Subscription
	fn    Listener
}

// Notifier is a per-object registry of property change subscriptions. Dispatch
// is synchronous and single-threaded: Notify invokes every currently-subscribed
// listener in subscription order and returns only once all of them have run.
type Notifier struct {
	next      Subscription
	listeners []registration
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers a listener and returns its subscription token. Repeat
// subscriptions of the same function are not deduplicated; each registration
// is invoked once per Notify.
func (n *Notifier) Subscribe(fn Listener) Subscription {
	if fn == nil {
		panic("notify: nil listener")
	}
	n.next++
	n.listeners = append(n.listeners, registration{token: n.next, fn: fn})
	return n.next
}

// Unsubscribe removes the registration identified by the token. Unknown tokens
// are ignored.
func (n *Notifier) Unsubscribe(sub Subscription) {
	for i, reg := range n.listeners {
		if reg.token == sub {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Notify fires all listeners subscribed at the moment of the call, in
// subscription order. The listener list is snapshotted first, so a listener
// may subscribe or unsubscribe itself or others during dispatch without
// affecting the current round.
func (n *Notifier) Notify(property string) {
	if len(n.listeners) == 0 {
		return
	}
	metrics.NotificationsDispatched.WithLabelValues(property).Inc()
	snapshot := append([]registration(nil), n.listeners...)
	for _, reg := range snapshot {
		reg.fn(property)
	}
}

// Len reports the number of active registrations.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
