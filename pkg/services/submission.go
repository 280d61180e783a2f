package services

import (
	"context"
	"sync"

	"spaceshare-landing/pkg/clients/zoho"
	"spaceshare-landing/pkg/logger"
	"spaceshare-landing/pkg/models"
	"spaceshare-landing/pkg/utils"
	"spaceshare-landing/pkg/validation"
)

// State is the submission lifecycle of the lead form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// MsgSubmissionFailed is shown when the mailing list could not accept the
// contact. The detailed cause is logged, never sent to the client.
const MsgSubmissionFailed = "We couldn't sign you up right now. Please try again."

// SubmitResult is the outcome of one submit attempt, handed to the
// transport layer.
type SubmitResult struct {
	State State
	// FieldErrors is non-empty when validation rejected the values.
	FieldErrors map[string]string
	// Message is the user-facing failure message when State is failed.
	Message string
}

// LeadService is the interface the HTTP layer consumes.
type LeadService interface {
	Submit(ctx context.Context, values models.FormValues) SubmitResult
	Ready() bool
}

// SubmissionController drives the submission state machine:
// idle -> submitting -> (succeeded | failed). A failed attempt retries
// directly; success resets the held values to their defaults. Each
// Submit carries its own values, so attempts cannot see each other's
// data; the shared state only enforces the single-flight guard.
type SubmissionController struct {
	mu         sync.Mutex
	state      State
	values     models.FormValues
	failureMsg string

	validator  *validation.FormValidator
	subscriber zoho.Client
}

// NewSubmissionController creates a controller in the idle state with
// empty form values.
func NewSubmissionController(validator *validation.FormValidator, subscriber zoho.Client) *SubmissionController {
	return &SubmissionController{
		state:      StateIdle,
		validator:  validator,
		subscriber: subscriber,
	}
}

// Values returns the values of the last attempt: kept after a failure so
// the user can correct them, reset to defaults after a success.
func (c *SubmissionController) Values() models.FormValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// State returns the current submission state.
func (c *SubmissionController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// FailureMessage returns the user-facing message from the last failed
// attempt, or empty when the last attempt did not fail.
func (c *SubmissionController) FailureMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failureMsg
}

// Ready reports whether the subscriber is configured to accept contacts.
func (c *SubmissionController) Ready() bool {
	return c.subscriber.IsConfigured()
}

// Submit validates the given values and, if they pass, performs exactly
// one outbound subscribe call with those same values. While a submission
// is in flight further calls are no-ops returning a submitting snapshot.
// Success resets the held values to defaults; failure keeps them for
// correction. Validation failures report the attempt as idle and never
// touch the network.
func (c *SubmissionController) Submit(ctx context.Context, values models.FormValues) SubmitResult {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return SubmitResult{State: StateSubmitting}
	}

	result := c.validator.Validate(values)
	if !result.Valid() {
		c.state = StateIdle
		c.values = values
		c.mu.Unlock()
		return SubmitResult{State: StateIdle, FieldErrors: result.Fields}
	}

	c.state = StateSubmitting
	c.values = values
	c.failureMsg = ""
	c.mu.Unlock()

	// The outbound call happens outside the lock so state queries stay
	// responsive while it is pending.
	err := c.subscriber.Subscribe(ctx, values.ContactInfo())

	c.mu.Lock()
	defer c.mu.Unlock()

	leadID := utils.LeadID(values.Email)
	if err != nil {
		logger.Log.Error("lead submission failed", "lead", leadID, "error", err)
		c.state = StateFailed
		c.failureMsg = MsgSubmissionFailed
		return SubmitResult{State: StateFailed, Message: c.failureMsg}
	}

	logger.Log.Info("lead subscribed", "lead", leadID)
	c.state = StateSucceeded
	c.values = models.FormValues{}
	return SubmitResult{State: StateSucceeded}
}
