package domain

import "errors"

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrShopNotFound     = errors.New("shop not found")
	ErrPaymentNotFound  = errors.New("payment not found")
)

var (
	ErrAlreadyReserved = errors.New("quote is already reserved")
	ErrAlreadyPaid     = errors.New("quote is already paid")
)

var (
	// ErrPaymentGateway is the gateway client's fallback result: retries
	// exhausted or the circuit short-circuited the call.
	ErrPaymentGateway = errors.New("payment gateway unavailable")
	// ErrGatewayResponse marks a nominally successful gateway call whose
	// payload is unusable.
	ErrGatewayResponse = errors.New("invalid gateway response")
	ErrInternal        = errors.New("internal error")
)

var (
	ErrValidation = errors.New("validation error")
)
