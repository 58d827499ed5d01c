package viewmodel

import (
	"context"

	"github.com/adhikav/customerdesk/internal/metrics"
	"github.com/adhikav/customerdesk/internal/notify"
)

// Command pairs an operation with a re-evaluatable eligibility guard. The
// guard is never cached: CanExecute queries it fresh, and Execute re-checks
// it so a stale caller cannot slip through.
type Command struct {
	execute    func(context.Context) error
	canExecute func() bool
	notifier   *notify.Notifier
	bindings   []commandBinding
}

type commandBinding struct {
	notifier *notify.Notifier
	sub      notify.Subscription
}

// NewCommand builds a gated command. A nil guard means always executable.
func NewCommand(execute func(context.Context) error, canExecute func() bool) *Command {
	if execute == nil {
		panic("viewmodel: nil execute")
	}
	if canExecute == nil {
		canExecute = func() bool { return true }
	}
	return &Command{
		execute:    execute,
		canExecute: canExecute,
		notifier:   notify.New(),
	}
}

// Notifier exposes the command's notifier; PropCanExecute fires whenever a
// bound property changes and the guard should be re-queried.
func (c *Command) Notifier() *notify.Notifier {
	return c.notifier
}

// CanExecute queries the guard.
func (c *Command) CanExecute() bool {
	return c.canExecute()
}

// Execute re-checks the guard and runs the operation. It returns
// ErrNotExecutable when the guard refuses, without running anything.
func (c *Command) Execute(ctx context.Context) error {
	if !c.canExecute() {
		metrics.CommandsExecuted.WithLabelValues("refused").Inc()
		return ErrNotExecutable
	}
	metrics.CommandsExecuted.WithLabelValues("executed").Inc()
	return c.execute(ctx)
}

// BindTo registers the properties this command's eligibility depends on:
// whenever one of them is notified on n, the command fires PropCanExecute so
// bound controls re-query the guard. With no properties listed, every
// notification on n re-triggers; over-triggering is harmless, missing a
// trigger is not.
func (c *Command) BindTo(n *notify.Notifier, properties ...string) {
	if n == nil {
		panic("viewmodel: nil notifier")
	}
	watched := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		watched[p] = struct{}{}
	}
	sub := n.Subscribe(func(prop string) {
		if len(watched) > 0 {
			if _, ok := watched[prop]; !ok {
				return
			}
		}
		c.notifier.Notify(PropCanExecute)
	})
	c.bindings = append(c.bindings, commandBinding{notifier: n, sub: sub})
}

// Release drops every binding registered through BindTo.
func (c *Command) Release() {
	for _, b := range c.bindings {
		b.notifier.Unsubscribe(b.sub)
	}
	c.bindings = nil
}
