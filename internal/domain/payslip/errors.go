package payslip

import "errors"

var ErrMissingFullName = errors.New("employee full name is required")
