package httperr

import "errors"

// BusinessError marks a request that is well-formed and references valid
// rows but asks for an inapplicable state change, e.g. removing a mechanic
// that is not assigned to the ticket.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
