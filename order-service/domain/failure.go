package domain

import (
	"context"
	stderrors "errors"
	"fmt"
)

// FailureReason is the closed set of business reasons an order can fail for.
type FailureReason string

const (
	FailureReasonPaymentDeclined      FailureReason = "PAYMENT_DECLINED"
	FailureReasonInvalidPaymentMethod FailureReason = "INVALID_PAYMENT_METHOD"
	FailureReasonOutOfStockItems      FailureReason = "OUT_OF_STOCK_ITEMS"
	FailureReasonSystemError          FailureReason = "SYSTEM_ERROR"
)

// BusinessError tags a failure with one of the closed failure reasons while
// keeping the originating cause opaque. Activity implementations raise these
// so the orchestrator can classify without knowing transport details.
type BusinessError struct {
	Reason  FailureReason
	Message string
	Cause   error
}

func (e *BusinessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Cause
}

// NewPaymentDeclinedError tags a declined card failure.
func NewPaymentDeclinedError(message string, cause error) *BusinessError {
	return &BusinessError{Reason: FailureReasonPaymentDeclined, Message: message, Cause: cause}
}

// NewInvalidPaymentMethodError tags a bad payment credential failure.
func NewInvalidPaymentMethodError(message string, cause error) *BusinessError {
	return &BusinessError{Reason: FailureReasonInvalidPaymentMethod, Message: message, Cause: cause}
}

// NewOutOfStockError tags an insufficient inventory failure.
func NewOutOfStockError(message string, cause error) *BusinessError {
	return &BusinessError{Reason: FailureReasonOutOfStockItems, Message: message, Cause: cause}
}

// HasFailureReason reports whether any error in the chain carries the given
// reason. Wrap layers added by pkg/errors or fmt.Errorf are unwrapped.
func HasFailureReason(err error, reason FailureReason) bool {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if be, ok := e.(*BusinessError); ok && be.Reason == reason {
			return true
		}
	}
	return false
}

// ClassifyFailure maps a failure onto a business failure reason. It is
// total: unrecognized failures classify as SYSTEM_ERROR. When a chain
// carries several reasons the declined-payment, invalid-payment-method,
// out-of-stock priority order decides.
func ClassifyFailure(err error) FailureReason {
	switch {
	case HasFailureReason(err, FailureReasonPaymentDeclined):
		return FailureReasonPaymentDeclined
	case HasFailureReason(err, FailureReasonInvalidPaymentMethod):
		return FailureReasonInvalidPaymentMethod
	case HasFailureReason(err, FailureReasonOutOfStockItems):
		return FailureReasonOutOfStockItems
	default:
		return FailureReasonSystemError
	}
}

// IsCancellation reports whether a failure is an external cancellation of
// the orchestration rather than a business failure. Cancellations still
// trigger compensation but skip failure finalization.
func IsCancellation(err error) bool {
	return stderrors.Is(err, context.Canceled)
}
