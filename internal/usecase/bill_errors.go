package usecase

import (
	"errors"
	"fmt"
	"strings"

	"billing_service/internal/usecase/interfaces"
)

var (
	ErrInvalidBillID       = errors.New("invalid bill id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrBillNotFound        = errors.New("bill not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrPartialWriteFailure = errors.New("partial line item write failure")

	// ErrUpstreamUnavailable is the value remote clients wrap; re-exported so
	// handlers only depend on this package.
	ErrUpstreamUnavailable = interfaces.ErrUpstreamUnavailable
)

// LineItemFailure describes one line item that could not be persisted.
type LineItemFailure struct {
	ProductID int64
	Position  int
	Err       error
}

// PartialWriteError is returned together with the bill when the header was
// persisted but one or more line item writes failed. Nothing is rolled back.
type PartialWriteError struct {
	BillID   string
	Failures []LineItemFailure
}

func (e *PartialWriteError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("product %d (position %d): %v", f.ProductID, f.Position, f.Err))
	}
	return fmt.Sprintf("%s: bill %s: %d item(s) not persisted: %s",
		ErrPartialWriteFailure, e.BillID, len(e.Failures), strings.Join(parts, "; "))
}

func (e *PartialWriteError) Is(target error) bool {
	return target == ErrPartialWriteFailure
}
