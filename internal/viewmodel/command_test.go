package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/adhikav/customerdesk/internal/notify"
)

func TestCommandExecutesWhenEligible(t *testing.T) {
	ran := 0
	cmd := NewCommand(func(context.Context) error {
		ran++
		return nil
	}, func() bool { return true })

	if !cmd.CanExecute() {
		t.Fatalf("expected executable command")
	}
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ran != 1 {
		t.Fatalf("expected one run, got %d", ran)
	}
}

func TestCommandRefusesWhenGuardFails(t *testing.T) {
	ran := 0
	eligible := false
	cmd := NewCommand(func(context.Context) error {
		ran++
		return nil
	}, func() bool { return eligible })

	if err := cmd.Execute(context.Background()); !errors.Is(err, ErrNotExecutable) {
		t.Fatalf("expected ErrNotExecutable, got %v", err)
	}
	if ran != 0 {
		t.Fatalf("refused command must not run, got %d", ran)
	}

	// the guard is re-queried at execution time, never cached
	eligible = true
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ran != 1 {
		t.Fatalf("expected one run, got %d", ran)
	}
}

func TestCommandNilGuardAlwaysEligible(t *testing.T) {
	cmd := NewCommand(func(context.Context) error { return nil }, nil)
	if !cmd.CanExecute() {
		t.Fatalf("nil guard must mean always executable")
	}
}

func TestCommandPropagatesExecuteError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewCommand(func(context.Context) error { return boom }, nil)
	if err := cmd.Execute(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestBindToFiltersProperties(t *testing.T) {
	cmd := NewCommand(func(context.Context) error { return nil }, nil)
	source := notify.New()
	cmd.BindTo(source, PropEmail, PropLastName)

	fires := 0
	cmd.Notifier().Subscribe(func(prop string) {
		if prop == PropCanExecute {
			fires++
		}
	})

	source.Notify(PropEmail)
	source.Notify(PropSelected)
	source.Notify(PropLastName)

	if fires != 2 {
		t.Fatalf("expected 2 re-evaluation triggers, got %d", fires)
	}
}

func TestBindToWithoutPropertiesTriggersOnEverything(t *testing.T) {
	cmd := NewCommand(func(context.Context) error { return nil }, nil)
	source := notify.New()
	cmd.BindTo(source)

	fires := 0
	cmd.Notifier().Subscribe(func(string) { fires++ })

	source.Notify(PropEmail)
	source.Notify(PropSelected)

	if fires != 2 {
		t.Fatalf("expected 2 triggers, got %d", fires)
	}
}

func TestReleaseDropsBindings(t *testing.T) {
	cmd := NewCommand(func(context.Context) error { return nil }, nil)
	source := notify.New()
	cmd.BindTo(source, PropEmail)
	cmd.Release()

	fires := 0
	cmd.Notifier().Subscribe(func(string) { fires++ })

	source.Notify(PropEmail)
	if fires != 0 {
		t.Fatalf("released command must not re-trigger, got %d", fires)
	}
	if source.Len() != 0 {
		t.Fatalf("release must unsubscribe from the source, got %d registrations", source.Len())
	}
}
