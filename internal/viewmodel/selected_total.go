package viewmodel

import "github.com/adhikav/customerdesk/internal/notify"

// SelectedTotal is the derived sum of TotalSales over the members of a
// customer list whose Selected flag is set. It recomputes only when a
// "selected" notification arrives from the list: edits to unrelated fields
// neither change the total nor fire its notification.
type SelectedTotal struct {
	list     *CustomerListView
	notifier *notify.Notifier
	listSub  notify.Subscription
	total    float64
}

// NewSelectedTotal attaches to the list and computes the initial total.
func NewSelectedTotal(list *CustomerListView) *SelectedTotal {
	if list == nil {
		panic("viewmodel: nil customer list")
	}
	s := &SelectedTotal{
		list:     list,
		notifier: notify.New(),
	}
	s.listSub = list.Notifier().Subscribe(s.onListChanged)
	s.total = s.compute()
	return s
}

// Notifier exposes the aggregate's notifier; PropTotalSelected fires after
// each recomputation.
func (s *SelectedTotal) Notifier() *notify.Notifier {
	return s.notifier
}

// Total returns the current aggregate value.
func (s *SelectedTotal) Total() float64 {
	return s.total
}

func (s *SelectedTotal) onListChanged(prop string) {
	if prop != PropSelected {
		return
	}
	s.total = s.compute()
	s.notifier.Notify(PropTotalSelected)
}

func (s *SelectedTotal) compute() float64 {
	var total float64
	for _, v := range s.list.Collection().Items() {
		if v.Selected() {
			total += v.TotalSales()
		}
	}
	return total
}

// Close detaches the aggregate from the list.
func (s *SelectedTotal) Close() {
	s.list.Notifier().Unsubscribe(s.listSub)
}
