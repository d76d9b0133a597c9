package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// InsufficientStockError is returned when an outbound note asks for more units
// than the product currently has. The message carries the product name and the
// quantity still available so the caller can surface it directly.
type InsufficientStockError struct {
	ProductName string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s (disponível: %s, solicitado: %s)",
		e.ProductName, e.Available.String(), e.Requested.String())
}
