// Package domain holds the raw records edited through the presentation layer.
package domain

// Customer is the domain record behind a single customer row. It carries no
// identity of its own; the presentation layer and repositories track customers
// by instance. TotalSales is fixed at construction and is never written by
// presentation code afterwards.
type Customer struct {
	TotalSales float64
	FirstName  string
	LastName   string
	IsCompany  bool
	Email      string
}

// New returns a blank customer with every field at its zero value.
func New() *Customer {
	return &Customer{}
}

// NewFrom returns a customer populated from known values.
func NewFrom(totalSales float64, firstName, lastName string, isCompany bool, email string) *Customer {
	return &Customer{
		TotalSales: totalSales,
		FirstName:  firstName,
		LastName:   lastName,
		IsCompany:  isCompany,
		Email:      email,
	}
}
