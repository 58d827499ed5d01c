package validation

import (
	"testing"

	"github.com/adhikav/customerdesk/internal/domain"
)

func validPerson() *domain.Customer {
	return domain.NewFrom(1500, "A", "B", false, "a@b.co")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{name: "valid", email: "a@b.co", wantMsg: ""},
		{name: "valid mixed case", email: "Jane.Doe@Example.COM", wantMsg: ""},
		{name: "valid plus tag", email: "jane+desk@example.com", wantMsg: ""},
		{name: "empty", email: "", wantMsg: MsgEmailMissing},
		{name: "whitespace only", email: "   ", wantMsg: MsgEmailMissing},
		{name: "no at sign", email: "jane.example.com", wantMsg: MsgEmailInvalid},
		{name: "no tld", email: "jane@example", wantMsg: MsgEmailInvalid},
		{name: "double dot local", email: "jane..doe@example.com", wantMsg: MsgEmailInvalid},
		{name: "space inside", email: "jane doe@example.com", wantMsg: MsgEmailInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validPerson()
			c.Email = tc.email
			err := Validate(c, FieldEmail)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected valid email, got %q", err.Message)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got none", tc.wantMsg)
			}
			if err.Message != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, err.Message)
			}
			if err.Field != FieldEmail {
				t.Fatalf("expected FieldEmail, got %v", err.Field)
			}
		})
	}
}

func TestValidateFirstName(t *testing.T) {
	c := validPerson()
	if err := Validate(c, FieldFirstName); err != nil {
		t.Fatalf("expected valid first name, got %q", err.Message)
	}

	c.FirstName = "  "
	err := Validate(c, FieldFirstName)
	if err == nil || err.Message != MsgFirstNameMissing {
		t.Fatalf("expected %q, got %+v", MsgFirstNameMissing, err)
	}
}

func TestValidateLastNameAsymmetry(t *testing.T) {
	tests := []struct {
		name      string
		isCompany bool
		lastName  string
		wantMsg   string
	}{
		{name: "person with last name", isCompany: false, lastName: "Berg", wantMsg: ""},
		{name: "person missing last name", isCompany: false, lastName: "", wantMsg: MsgLastNameMissing},
		{name: "company with empty last name", isCompany: true, lastName: "", wantMsg: ""},
		{name: "company with last name", isCompany: true, lastName: "Berg", wantMsg: MsgCompanyLastName},
		{name: "company with whitespace last name", isCompany: true, lastName: "  ", wantMsg: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := domain.NewFrom(0, "Acme", tc.lastName, tc.isCompany, "contact@acme.com")
			err := Validate(c, FieldLastName)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected valid, got %q", err.Message)
				}
				return
			}
			if err == nil || err.Message != tc.wantMsg {
				t.Fatalf("expected %q, got %+v", tc.wantMsg, err)
			}
		})
	}
}

func TestValidateUnrecognizedFieldYieldsNone(t *testing.T) {
	c := validPerson()
	if err := Validate(c, FieldCustomerType); err != nil {
		t.Fatalf("selector field has no entity check, got %q", err.Message)
	}
	if err := Validate(c, Field(42)); err != nil {
		t.Fatalf("unknown field must validate clean, got %q", err.Message)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		customer *domain.Customer
		want     bool
	}{
		{name: "valid person", customer: domain.NewFrom(0, "A", "B", false, "a@b.co"), want: true},
		{name: "valid company", customer: domain.NewFrom(0, "Acme Group", "", true, "contact@acme.com"), want: true},
		{name: "missing email", customer: domain.NewFrom(0, "A", "B", false, ""), want: false},
		{name: "missing first name", customer: domain.NewFrom(0, "", "B", false, "a@b.co"), want: false},
		{name: "person missing last name", customer: domain.NewFrom(0, "A", "", false, "a@b.co"), want: false},
		{name: "company with last name", customer: domain.NewFrom(0, "Acme Group", "B", true, "contact@acme.com"), want: false},
		{name: "every field broken", customer: domain.New(), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.customer); got != tc.want {
				t.Fatalf("IsValid = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldEmail, "email"},
		{FieldFirstName, "firstName"},
		{FieldLastName, "lastName"},
		{FieldCustomerType, "customerType"},
		{Field(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.field.String(); got != tc.want {
			t.Fatalf("Field(%d).String() = %q, want %q", tc.field, got, tc.want)
		}
	}
}
