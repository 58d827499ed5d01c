// Package validation maps customer field values to user-facing errors.
//
// Validation errors are data, never Go errors: the presentation layer renders
// them inline next to the offending field.
package validation

import (
	"regexp"
	"strings"

	"github.com/adhikav/customerdesk/internal/domain"
	"github.com/adhikav/customerdesk/internal/metrics"
)

// Field identifies a validated customer field. The set is closed: checks are
// registered per identifier and unrecognized values validate clean.
type Field int

const (
	// FieldEmail is the customer email address.
	FieldEmail Field = iota
	// FieldFirstName is the customer first name, repurposed as the company
	// name for company customers.
	FieldFirstName
	// FieldLastName is the customer last name.
	FieldLastName
	// FieldCustomerType is the presentation-only person/company selector. It
	// has no entity-level check; the customer view validates it itself.
	FieldCustomerType
)

// String returns the property name the field is notified under.
func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldFirstName:
		return "firstName"
	case FieldLastName:
		return "lastName"
	case FieldCustomerType:
		return "customerType"
	default:
		return "unknown"
	}
}

// Error describes a single failed field check.
type Error struct {
	Field   Field
	Message string
}

// Messages surfaced by the built-in checks.
const (
	MsgEmailMissing     = "Email address is missing"
	MsgEmailInvalid     = "Email address is not in a valid format"
	MsgFirstNameMissing = "First name is missing"
	MsgLastNameMissing  = "Last name is missing"
	MsgCompanyLastName  = "A company cannot have a last name"
)

// Case-insensitive local-part@domain grammar: dot-separated atoms on both
// sides, two-plus letter top level label.
var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}$`)

// entityFields lists every field checked against the entity itself, in the
// order IsValid evaluates them.
var entityFields = []Field{FieldEmail, FieldFirstName, FieldLastName}

var fieldChecks = map[Field]func(*domain.Customer) string{
	FieldEmail:     checkEmail,
	FieldFirstName: checkFirstName,
	FieldLastName:  checkLastName,
}

// Validate runs the registered check for one field. It returns nil when the
// field is valid or when no check is registered for the identifier.
func Validate(c *domain.Customer, field Field) *Error {
	if c == nil {
		panic("validation: nil customer")
	}
	check, ok := fieldChecks[field]
	if !ok {
		return nil
	}
	msg := check(c)
	if msg == "" {
		return nil
	}
	metrics.ValidationFailures.WithLabelValues(field.String()).Inc()
	return &Error{Field: field, Message: msg}
}

// IsValid reports whether every entity field validates clean. All fields are
// always evaluated; there is no early return, so the result is deterministic
// regardless of which field fails first.
func IsValid(c *domain.Customer) bool {
	valid := true
	for _, field := range entityFields {
		if Validate(c, field) != nil {
			valid = false
		}
	}
	return valid
}

func checkEmail(c *domain.Customer) string {
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return MsgEmailMissing
	}
	if !emailPattern.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

func checkFirstName(c *domain.Customer) string {
	if strings.TrimSpace(c.FirstName) == "" {
		return MsgFirstNameMissing
	}
	return ""
}

// checkLastName is asymmetric on purpose: for a company the presence of any
// last name is the error, not merely unnecessary.
func checkLastName(c *domain.Customer) string {
	hasValue := strings.TrimSpace(c.LastName) != ""
	if c.IsCompany {
		if hasValue {
			return MsgCompanyLastName
		}
		return ""
	}
	if !hasValue {
		return MsgLastNameMissing
	}
	return ""
}
