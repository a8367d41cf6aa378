package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureReason
	}{
		{
			name: "payment declined",
			err:  NewPaymentDeclinedError("insufficient funds", nil),
			want: FailureReasonPaymentDeclined,
		},
		{
			name: "invalid payment method",
			err:  NewInvalidPaymentMethodError("card expired", nil),
			want: FailureReasonInvalidPaymentMethod,
		},
		{
			name: "out of stock",
			err:  NewOutOfStockError("sku unavailable", nil),
			want: FailureReasonOutOfStockItems,
		},
		{
			name: "plain error",
			err:  errors.New("database unavailable"),
			want: FailureReasonSystemError,
		},
		{
			name: "nil error",
			err:  nil,
			want: FailureReasonSystemError,
		},
		{
			name: "declined wrapped with pkg/errors",
			err:  errors.Wrap(NewPaymentDeclinedError("insufficient funds", nil), "failed to debit credit card"),
			want: FailureReasonPaymentDeclined,
		},
		{
			name: "out of stock wrapped with fmt.Errorf",
			err:  fmt.Errorf("inventory check failed: %w", NewOutOfStockError("sku unavailable", nil)),
			want: FailureReasonOutOfStockItems,
		},
		{
			name: "double wrapped",
			err:  errors.Wrap(fmt.Errorf("step 4: %w", NewInvalidPaymentMethodError("bad card", nil)), "saga failed"),
			want: FailureReasonInvalidPaymentMethod,
		},
		{
			name: "business error carrying a tagged cause prefers the outer reason",
			err:  NewPaymentDeclinedError("declined", NewOutOfStockError("also out of stock", nil)),
			want: FailureReasonPaymentDeclined,
		},
		{
			name: "cancellation is not a business reason",
			err:  context.Canceled,
			want: FailureReasonSystemError,
		},
		{
			name: "deadline exceeded classifies as system error",
			err:  context.DeadlineExceeded,
			want: FailureReasonSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFailure(tt.err))
		})
	}
}

func TestHasFailureReason(t *testing.T) {
	err := errors.Wrap(NewOutOfStockError("sku unavailable", nil), "inventory check failed")

	assert.True(t, HasFailureReason(err, FailureReasonOutOfStockItems))
	assert.False(t, HasFailureReason(err, FailureReasonPaymentDeclined))
	assert.False(t, HasFailureReason(nil, FailureReasonOutOfStockItems))
}

func TestBusinessError_Error(t *testing.T) {
	assert.Equal(t, "PAYMENT_DECLINED: insufficient funds",
		NewPaymentDeclinedError("insufficient funds", nil).Error())
	assert.Equal(t, "OUT_OF_STOCK_ITEMS: sku unavailable: upstream 409",
		NewOutOfStockError("sku unavailable", errors.New("upstream 409")).Error())
}

func TestBusinessError_Unwrap(t *testing.T) {
	cause := errors.New("upstream 402")
	err := NewPaymentDeclinedError("declined", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCancellation(t *testing.T) {
	assert.True(t, IsCancellation(context.Canceled))
	assert.True(t, IsCancellation(errors.Wrap(context.Canceled, "inventory check failed")))
	assert.True(t, IsCancellation(fmt.Errorf("step interrupted: %w", context.Canceled)))

	// Deadlines are infrastructure failures, not caller cancellations.
	assert.False(t, IsCancellation(context.DeadlineExceeded))
	assert.False(t, IsCancellation(errors.New("database unavailable")))
	assert.False(t, IsCancellation(nil))
}
