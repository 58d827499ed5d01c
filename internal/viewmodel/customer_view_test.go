package viewmodel

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/repository"
	"github.com/adhikav/customerdesk/internal/validation"
)

// countingRepo wraps a repository and counts Add calls.
type countingRepo struct {
	repository.Repository
	addCalls int
}

func (r *countingRepo) Add(ctx context.Context, c *domain.Customer) error {
	r.addCalls++
	return r.Repository.Add(ctx, c)
}

func newTestView(t *testing.T, c *domain.Customer) (*CustomerView, *countingRepo) {
	t.Helper()
	repo := &countingRepo{Repository: repository.NewMemory()}
	v, err := NewCustomerView(context.Background(), repo, c)
	if err != nil {
		t.Fatalf("new customer view: %v", err)
	}
	return v, repo
}

func recordNotifications(v *CustomerView) *[]string {
	var fired []string
	v.Notifier().Subscribe(func(prop string) { fired = append(fired, prop) })
	return &fired
}

func TestSetterNoOpFiresNothing(t *testing.T) {
	v, _ := newTestView(t, domain.NewFrom(0, "Ada", "Berg", false, "ada@example.com"))
	fired := recordNotifications(v)

	v.SetFirstName("Ada")
	v.SetLastName("Berg")
	v.SetEmail("ada@example.com")
	v.SetSelected(false)

	if len(*fired) != 0 {
		t.Fatalf("expected zero notifications, got %v", *fired)
	}
}

func TestSetterEffectiveChangeFiresExactlyOne(t *testing.T) {
	v, _ := newTestView(t, domain.NewFrom(0, "Ada", "Berg", false, "ada@example.com"))
	fired := recordNotifications(v)

	v.SetFirstName("Grace")

	want := []string{PropFirstName}
	if !reflect.DeepEqual(*fired, want) {
		t.Fatalf("expected %v, got %v", want, *fired)
	}
	if v.Customer().FirstName != "Grace" {
		t.Fatalf("entity not mutated, got %q", v.Customer().FirstName)
	}
}

func TestCustomerTypeSelectorFiresSelectorThenLastName(t *testing.T) {
	v, _ := newTestView(t, domain.New())
	if v.CustomerType() != TypeUnspecified {
		t.Fatalf("new customer must start unspecified, got %v", v.CustomerType())
	}
	fired := recordNotifications(v)

	v.SetCustomerType(TypeCompany)

	want := []string{PropCustomerType, PropLastName}
	if !reflect.DeepEqual(*fired, want) {
		t.Fatalf("expected %v, got %v", want, *fired)
	}
	if !v.IsCompany() {
		t.Fatalf("company flag not forced true")
	}
}

func TestCustomerTypeSelectorNoOps(t *testing.T) {
	v, _ := newTestView(t, domain.New())
	v.SetCustomerType(TypePerson)
	fired := recordNotifications(v)

	v.SetCustomerType(TypePerson)
	v.SetCustomerType(TypeUnspecified)

	if len(*fired) != 0 {
		t.Fatalf("expected zero notifications, got %v", *fired)
	}
	if v.IsCompany() {
		t.Fatalf("person selection must force the company flag false")
	}
}

func TestSelectorResolvedForAcceptedCustomers(t *testing.T) {
	person := domain.NewFrom(0, "Ada", "Berg", false, "ada@example.com")
	company := domain.NewFrom(0, "Acme Group", "", true, "contact@acme.com")
	repo := repository.NewMemory(person, company)

	pv, err := NewCustomerView(context.Background(), repo, person)
	if err != nil {
		t.Fatalf("wrap person: %v", err)
	}
	cv, err := NewCustomerView(context.Background(), repo, company)
	if err != nil {
		t.Fatalf("wrap company: %v", err)
	}

	if pv.IsNew() || cv.IsNew() {
		t.Fatalf("accepted customers must not be new")
	}
	if pv.CustomerType() != TypePerson {
		t.Fatalf("expected person selector, got %v", pv.CustomerType())
	}
	if cv.CustomerType() != TypeCompany {
		t.Fatalf("expected company selector, got %v", cv.CustomerType())
	}
}

func TestDisplayName(t *testing.T) {
	v, _ := newTestView(t, domain.NewFrom(0, "Ada", "Berg", false, "ada@example.com"))
	if got := v.DisplayName(); got != DisplayNameNew {
		t.Fatalf("new customer display name = %q, want %q", got, DisplayNameNew)
	}

	if err := v.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := v.DisplayName(); got != "Berg, Ada" {
		t.Fatalf("person display name = %q, want %q", got, "Berg, Ada")
	}

	company := domain.NewFrom(0, "Acme Group", "", true, "contact@acme.com")
	cv, _ := newTestView(t, company)
	if err := cv.Save(context.Background()); err != nil {
		t.Fatalf("save company: %v", err)
	}
	if got := cv.DisplayName(); got != "Acme Group" {
		t.Fatalf("company display name = %q, want %q", got, "Acme Group")
	}
}

func TestSaveInvalidCustomerNeverCallsRepository(t *testing.T) {
	v, repo := newTestView(t, domain.New())

	err := v.Save(context.Background())
	if !errors.Is(err, ErrCustomerInvalid) {
		t.Fatalf("expected ErrCustomerInvalid, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("repository must not be called, got %d adds", repo.addCalls)
	}
	if !v.IsNew() {
		t.Fatalf("failed save must not mark the customer accepted")
	}
}

func TestSaveNewValidCustomer(t *testing.T) {
	v, repo := newTestView(t, domain.NewFrom(0, "Ada", "Berg", false, "ada@example.com"))
	fired := recordNotifications(v)

	if err := v.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if repo.addCalls != 1 {
		t.Fatalf("expected exactly one add, got %d", repo.addCalls)
	}
	if v.IsNew() {
		t.Fatalf("saved customer must no longer be new")
	}
	want := []string{PropDisplayName}
	if !reflect.DeepEqual(*fired, want) {
		t.Fatalf("expected %v, got %v", want, *fired)
	}

	// a second save is harmless: the repository refuses the double-add
	if err := v.Save(context.Background()); err != nil {
		t.Fatalf("second save: %v", err)
	}
	all, _ := repo.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected one stored customer, got %d", len(all))
	}
}

func TestFieldErrorRouting(t *testing.T) {
	v, _ := newTestView(t, domain.New())

	if got := v.FieldError(validation.FieldCustomerType); got != MsgCustomerTypeUnselected {
		t.Fatalf("selector error = %q, want %q", got, MsgCustomerTypeUnselected)
	}
	if got := v.FieldError(validation.FieldEmail); got != validation.MsgEmailMissing {
		t.Fatalf("email error = %q, want %q", got, validation.MsgEmailMissing)
	}

	v.SetCustomerType(TypePerson)
	if got := v.FieldError(validation.FieldCustomerType); got != "" {
		t.Fatalf("resolved selector must validate clean, got %q", got)
	}

	v.SetEmail("ada@example.com")
	if got := v.FieldError(validation.FieldEmail); got != "" {
		t.Fatalf("valid email must validate clean, got %q", got)
	}
}

func TestCanSave(t *testing.T) {
	v, _ := newTestView(t, domain.New())
	if v.CanSave() {
		t.Fatalf("blank customer must not be savable")
	}

	v.SetFirstName("Ada")
	v.SetLastName("Berg")
	v.SetEmail("ada@example.com")
	if v.CanSave() {
		t.Fatalf("unresolved selector must block saving")
	}

	v.SetCustomerType(TypePerson)
	if !v.CanSave() {
		t.Fatalf("valid customer with resolved selector must be savable")
	}

	// flipping to company makes the stored last name illegal
	v.SetCustomerType(TypeCompany)
	if v.CanSave() {
		t.Fatalf("company with a last name must not be savable")
	}
}

func TestSaveCommandGatesOnValidity(t *testing.T) {
	v, repo := newTestView(t, domain.New())
	cmd := v.SaveCommand()
	if cmd != v.SaveCommand() {
		t.Fatalf("save command must be built once")
	}

	if cmd.CanExecute() {
		t.Fatalf("blank customer command must not be executable")
	}
	if err := cmd.Execute(context.Background()); !errors.Is(err, ErrNotExecutable) {
		t.Fatalf("expected ErrNotExecutable, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("refused command must not touch the repository")
	}

	canExecuteFires := 0
	cmd.Notifier().Subscribe(func(prop string) {
		if prop == PropCanExecute {
			canExecuteFires++
		}
	})

	v.SetFirstName("Ada")
	v.SetLastName("Berg")
	v.SetEmail("ada@example.com")
	v.SetCustomerType(TypePerson)

	// firstName, lastName, email, customerType and its lastName dependent
	if canExecuteFires != 5 {
		t.Fatalf("expected 5 re-evaluation triggers, got %d", canExecuteFires)
	}

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if repo.addCalls != 1 {
		t.Fatalf("expected one add via the command, got %d", repo.addCalls)
	}
}

func TestSelectedFlagNotifies(t *testing.T) {
	v, _ := newTestView(t, domain.NewFrom(250, "Ada", "Berg", false, "ada@example.com"))
	fired := recordNotifications(v)

	v.SetSelected(true)
	v.SetSelected(true)

	want := []string{PropSelected}
	if !reflect.DeepEqual(*fired, want) {
		t.Fatalf("expected %v, got %v", want, *fired)
	}
	if !v.Selected() {
		t.Fatalf("selected flag not set")
	}
}
