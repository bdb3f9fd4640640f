package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrAccountInactive     = errors.New("account is inactive")

	// Entry errors
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidEntryType   = errors.New("invalid entry type")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)
