package errors

var (
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "Insufficient funds",
	}
	ErrPayInLimitReached = &DomainError{
		Code:    "PAY_IN_LIMIT_REACHED",
		Message: "Account pay in limit reached",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
)
