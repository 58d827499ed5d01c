// Package viewmodel keeps customers, their presentation wrappers, and
// command-enablement state consistent under live edits. Everything here is
// synchronous and confined to one goroutine: a mutation returns only after
// every notification it caused has been dispatched.
package viewmodel

// Property names fired through the change notifiers.
const (
	PropEmail         = "email"
	PropFirstName     = "firstName"
	PropLastName      = "lastName"
	PropCustomerType  = "customerType"
	PropSelected      = "selected"
	PropDisplayName   = "displayName"
	PropCustomers     = "customers"
	PropTotalSelected = "totalSelected"
	PropCanExecute    = "canExecute"
)

// propertyDependents declares which properties are invalidated by a change to
// another. The value of a dependent need not change; its validity might. The
// one edge today: the customer type selector decides whether the stored last
// name is legal, so selector changes re-notify lastName.
var propertyDependents = map[string][]string{
	PropCustomerType: {PropLastName},
}
