package saga

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Compensation is a single undo action. It must be idempotent: the ledger
// guarantees at-least-once execution, never exactly-once.
type Compensation func(ctx context.Context) error

type step struct {
	name string
	fn   Compensation
}

// Compensations is an ordered ledger of undo actions for one saga run.
// An action is registered right before (or right after) the forward call
// whose side effect it reverses, and on failure the ledger is unwound in
// reverse registration order.
//
// A ledger belongs to exactly one orchestration and is not safe for
// concurrent use.
type Compensations struct {
	steps       []step
	compensated bool
}

// NewCompensations creates an empty ledger.
func NewCompensations() *Compensations {
	return &Compensations{}
}

// Add registers an undo action. The name is used for logging during unwind.
func (c *Compensations) Add(name string, fn Compensation) {
	c.steps = append(c.steps, step{name: name, fn: fn})
}

// Len reports how many undo actions are registered.
func (c *Compensations) Len() int {
	return len(c.steps)
}

// Compensate executes every registered action, newest first. A failing
// action is recorded and logged but never stops the remaining actions
// from running. The aggregate of failures is returned so the caller can
// log it; callers must not treat it as a reason to abort their own
// cleanup. Calling Compensate again after it has run is a no-op.
func (c *Compensations) Compensate(ctx context.Context) error {
	if c.compensated {
		return nil
	}
	c.compensated = true

	var failures []error
	for i := len(c.steps) - 1; i >= 0; i-- {
		s := c.steps[i]
		log.Printf("saga: compensating %s", s.name)
		if err := s.fn(ctx); err != nil {
			log.Printf("saga: compensation %s failed: %v", s.name, err)
			failures = append(failures, fmt.Errorf("%s: %w", s.name, err))
		}
	}

	if len(failures) > 0 {
		return &CompensationError{Errors: failures}
	}
	return nil
}

// CompensationError aggregates the failures of individual undo actions.
type CompensationError struct {
	Errors []error
}

func (e *CompensationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d compensation(s) failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}
