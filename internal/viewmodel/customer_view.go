package viewmodel

import (
	"context"
	"fmt"

	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/metrics"
	"github.com/adhikav/customerdesk/internal/notify"
	"github.com/adhikav/customerdesk/internal/repository"
	"github.com/adhikav/customerdesk/internal/validation"
)

// CustomerType is the tri-state person/company selector. It lives on the
// wrapper, not the customer: the customer only knows IsCompany, and the
// unspecified state exists so a fresh form starts with neither choice made.
type CustomerType int

const (
	TypeUnspecified CustomerType = iota
	TypePerson
	TypeCompany
)

// MsgCustomerTypeUnselected is surfaced while the selector is unresolved.
const MsgCustomerTypeUnselected = "Customer type must be selected"

// DisplayNameNew is shown for customers the repository has not accepted yet.
const DisplayNameNew = "New Customer"

// CustomerView wraps exactly one customer for its whole lifetime. Setters
// are value-equality no-ops; an effective change mutates the customer and
// then fires the property's notification plus any declared dependents.
type CustomerView struct {
	customer *domain.Customer
	repo     repository.Repository
	notifier *notify.Notifier

	customerType CustomerType
	selected     bool
	isNew        bool

	saveCommand *Command
}

// NewCustomerView wraps the customer, querying the repository to decide
// whether it is a new (not yet accepted) customer.
func NewCustomerView(ctx context.Context, repo repository.Repository, customer *domain.Customer) (*CustomerView, error) {
	if repo == nil {
		panic("viewmodel: nil repository")
	}
	if customer == nil {
		panic("viewmodel: nil customer")
	}
	contained, err := repo.Contains(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("query customer membership: %w", err)
	}
	return newCustomerView(repo, customer, !contained), nil
}

// newCustomerView wraps a customer whose membership is already known. The
// selector starts resolved for accepted customers, whose company flag is
// authoritative, and unspecified for new ones.
func newCustomerView(repo repository.Repository, customer *domain.Customer, isNew bool) *CustomerView {
	v := &CustomerView{
		customer: customer,
		repo:     repo,
		notifier: notify.New(),
		isNew:    isNew,
	}
	if !isNew {
		if customer.IsCompany {
			v.customerType = TypeCompany
		} else {
			v.customerType = TypePerson
		}
	}
	return v
}

// Notifier exposes the wrapper's change notifier for subscription wiring.
func (v *CustomerView) Notifier() *notify.Notifier {
	return v.notifier
}

// Customer returns the wrapped customer instance.
func (v *CustomerView) Customer() *domain.Customer {
	return v.customer
}

// IsNew reports whether the repository has not yet accepted the customer.
func (v *CustomerView) IsNew() bool {
	return v.isNew
}

// TotalSales mirrors the customer's total. It has no setter.
func (v *CustomerView) TotalSales() float64 {
	return v.customer.TotalSales
}

// IsCompany mirrors the customer's company flag. It is settable only through
// the customer type selector.
func (v *CustomerView) IsCompany() bool {
	return v.customer.IsCompany
}

// Email returns the customer email.
func (v *CustomerView) Email() string {
	return v.customer.Email
}

// SetEmail updates the customer email and notifies on effective change.
func (v *CustomerView) SetEmail(email string) {
	if email == v.customer.Email {
		return
	}
	v.customer.Email = email
	v.raise(PropEmail)
}

// FirstName returns the customer first name (the company name for company
// customers).
func (v *CustomerView) FirstName() string {
	return v.customer.FirstName
}

// SetFirstName updates the first name and notifies on effective change.
func (v *CustomerView) SetFirstName(name string) {
	if name == v.customer.FirstName {
		return
	}
	v.customer.FirstName = name
	v.raise(PropFirstName)
}

// LastName returns the customer last name.
func (v *CustomerView) LastName() string {
	return v.customer.LastName
}

// SetLastName updates the last name and notifies on effective change.
func (v *CustomerView) SetLastName(name string) {
	if name == v.customer.LastName {
		return
	}
	v.customer.LastName = name
	v.raise(PropLastName)
}

// CustomerType returns the selector state.
func (v *CustomerView) CustomerType() CustomerType {
	return v.customerType
}

// SetCustomerType resolves the selector and forces the customer's company
// flag to match. Re-selecting the current value or selecting the unspecified
// state is a no-op. An effective change notifies the selector itself and, via
// the declared dependency edge, lastName: its stored value is untouched but
// its validity just changed.
func (v *CustomerView) SetCustomerType(t CustomerType) {
	if t == v.customerType || t == TypeUnspecified {
		return
	}
	v.customerType = t
	v.customer.IsCompany = t == TypeCompany
	v.raise(PropCustomerType)
}

// Selected reports the aggregation flag. It is presentation-only state and is
// never persisted.
func (v *CustomerView) Selected() bool {
	return v.selected
}

// SetSelected toggles the aggregation flag and notifies on effective change.
func (v *CustomerView) SetSelected(selected bool) {
	if selected == v.selected {
		return
	}
	v.selected = selected
	v.raise(PropSelected)
}

// DisplayName derives the presentation name: the new-customer placeholder
// until the repository accepts the customer, the company name (stored in the
// first name field) for companies, and "Last, First" otherwise.
func (v *CustomerView) DisplayName() string {
	if v.isNew {
		return DisplayNameNew
	}
	if v.customer.IsCompany {
		return v.customer.FirstName
	}
	return fmt.Sprintf("%s, %s", v.customer.LastName, v.customer.FirstName)
}

// FieldError returns the user-facing message for one field, or "" when the
// field is valid. The synthetic customer type field is checked against the
// selector; every other field is checked against the wrapped customer.
func (v *CustomerView) FieldError(field validation.Field) string {
	if field == validation.FieldCustomerType {
		if v.customerType == TypeUnspecified {
			return MsgCustomerTypeUnselected
		}
		return ""
	}
	if err := validation.Validate(v.customer, field); err != nil {
		return err.Message
	}
	return ""
}

// CanSave reports save eligibility: the selector is resolved and every
// customer field validates clean.
func (v *CustomerView) CanSave() bool {
	return v.customerType != TypeUnspecified && validation.IsValid(v.customer)
}

// Save hands the customer to the repository. It fails with
// ErrCustomerInvalid, without calling the repository, when the customer does
// not validate; the repository itself refuses a double-add. A successful save
// re-derives the display name, so its notification fires.
func (v *CustomerView) Save(ctx context.Context) error {
	if !validation.IsValid(v.customer) {
		return ErrCustomerInvalid
	}
	if err := v.repo.Add(ctx, v.customer); err != nil {
		return fmt.Errorf("add customer: %w", err)
	}
	v.isNew = false
	metrics.CustomersSaved.Inc()
	v.notifier.Notify(PropDisplayName)
	return nil
}

// SaveCommand returns the gated save operation, bound to every property whose
// change could affect eligibility. The command is built once and reused.
func (v *CustomerView) SaveCommand() *Command {
	if v.saveCommand == nil {
		v.saveCommand = NewCommand(v.Save, v.CanSave)
		v.saveCommand.BindTo(v.notifier, PropEmail, PropFirstName, PropLastName, PropCustomerType)
	}
	return v.saveCommand
}

// raise fires the property's notification followed by its declared
// dependents.
func (v *CustomerView) raise(prop string) {
	v.notifier.Notify(prop)
	for _, dep := range propertyDependents[prop] {
		v.notifier.Notify(dep)
	}
}
