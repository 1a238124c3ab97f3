package model

import "errors"

var (
	ErrInvalidCustomerID    = errors.New("customer id is not provided") // 400
	ErrInvalidPrice         = errors.New("invalid price")               // 400
	ErrInvalidDatetime      = errors.New("invalid datetime")            // 400
	ErrUnknownMethod        = errors.New("unknown payment method")      // 400
	ErrModifierOutOfRange   = errors.New("price modifier out of range") // 400
	ErrMissingRequiredField = errors.New("missing required field")      // 400
	ErrInvalidFieldFormat   = errors.New("invalid field format")        // 400
	ErrInvalidRange         = errors.New("invalid datetime range")      // 400
	ErrStorage              = errors.New("storage failure")             // 500
)
