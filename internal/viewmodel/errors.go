package viewmodel

import "errors"

var (
	// ErrCustomerInvalid is returned by Save when the wrapped customer fails
	// validation. The repository is never called in that case.
	ErrCustomerInvalid = errors.New("customer failed validation")

	// ErrNotExecutable is returned by Command.Execute when the guard reports
	// the command ineligible at the moment of execution.
	ErrNotExecutable = errors.New("command is not executable")
)
