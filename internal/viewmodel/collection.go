package viewmodel

// AppendListener receives a view the moment it joins a collection.
type AppendListener func(*CustomerView)

// AppendSubscription identifies one append registration.
type AppendSubscription uint64

type appendRegistration struct {
	token AppendSubscription
	fn    AppendListener
}

// Collection is an observable ordered list of customer views. Membership
// changes are announced through append subscriptions, so wiring keyed off
// membership works the same for repository-driven and direct appends.
type Collection struct {
	items []*CustomerView
	next  AppendSubscription
	subs  []appendRegistration
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Append adds a view to the end of the collection and announces it. The
// announcement runs before Append returns, so subscribers see every member
// wired as soon as it is observable.
func (c *Collection) Append(v *CustomerView) {
	if v == nil {
		panic("viewmodel: nil customer view")
	}
	c.items = append(c.items, v)
	snapshot := append([]appendRegistration(nil), c.subs...)
	for _, reg := range snapshot {
		reg.fn(v)
	}
}

// SubscribeAppend registers a membership listener.
func (c *Collection) SubscribeAppend(fn AppendListener) AppendSubscription {
	if fn == nil {
		panic("viewmodel: nil append listener")
	}
	c.next++
	c.subs = append(c.subs, appendRegistration{token: c.next, fn: fn})
	return c.next
}

// UnsubscribeAppend drops a registration; unknown tokens are ignored.
func (c *Collection) UnsubscribeAppend(sub AppendSubscription) {
	for i, reg := range c.subs {
		if reg.token == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the members in order.
func (c *Collection) Items() []*CustomerView {
	return append([]*CustomerView(nil), c.items...)
}

// Len reports the member count.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the member at position i.
func (c *Collection) At(i int) *CustomerView {
	return c.items[i]
}

// Clear drops every member without announcing anything.
func (c *Collection) Clear() {
	c.items = nil
}
