// Package flow drives the two-step registration sequence: a Details
// step gated by the batch validator, then a Payment step whose
// preconditions (selected method, non-blank transaction id) control
// whether submit is reachable.
package flow

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gubvirtualgamingclub/vgs-backend/form"
	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

type Step int

const (
	StepDetails Step = iota
	StepPayment
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// ErrInvalidDetails is returned by Next when the batch gate fails; the
// caller shows one aggregate alert, per-field messages stay on the
// flow.
var ErrInvalidDetails = errors.New("please fix the highlighted fields")

// Flow holds everything a registration attempt accumulates. Back
// navigation never resets it; values survive until the flow is
// discarded.
type Flow struct {
	frm     model.RegistrationForm
	methods []model.PaymentMethod

	step          Step
	answers       map[string]any
	fieldErrors   map[string]string
	methodID      int
	transactionID string
	inFlight      bool
}

// New starts a flow at the Details step. The first active payment
// method, when there is one, is preselected.
func New(frm model.RegistrationForm, methods []model.PaymentMethod) *Flow {
	f := &Flow{
		frm:         frm,
		methods:     methods,
		step:        StepDetails,
		answers:     map[string]any{},
		fieldErrors: map[string]string{},
	}
	if len(methods) > 0 {
		f.methodID = methods[0].ID
	}
	return f
}

func (f *Flow) Current() Step { return f.step }

// SetAnswer records a value and revalidates that field immediately,
// returning the inline message ("" when valid).
func (f *Flow) SetAnswer(fieldID string, value any) string {
	f.answers[fieldID] = value

	for _, fd := range f.frm.Fields {
		if fd.ID != fieldID {
			continue
		}
		msg := form.Validate(fd, value)
		if msg == "" {
			delete(f.fieldErrors, fieldID)
		} else {
			f.fieldErrors[fieldID] = msg
		}
		return msg
	}
	return ""
}

func (f *Flow) Answer(fieldID string) any { return f.answers[fieldID] }

func (f *Flow) Answers() map[string]any { return f.answers }

// FieldError returns the current inline message for a field.
func (f *Flow) FieldError(fieldID string) string { return f.fieldErrors[fieldID] }

// FieldErrors returns every current inline message keyed by field ID.
func (f *Flow) FieldErrors() map[string]string { return f.fieldErrors }

// Next advances Details -> Payment. It runs the batch gate over every
// field; on failure the flow stays put, per-field errors are recorded,
// and ErrInvalidDetails is returned for the aggregate alert.
func (f *Flow) Next() error {
	if f.step != StepDetails {
		return errors.Errorf("cannot advance from %s step", f.step)
	}

	errs := form.ValidateAll(f.frm.Fields, f.answers)
	if len(errs) > 0 {
		f.fieldErrors = errs
		return ErrInvalidDetails
	}

	f.fieldErrors = map[string]string{}
	f.step = StepPayment
	return nil
}

// Back returns to Details. Always permitted from Payment, and keeps
// every entered value.
func (f *Flow) Back() {
	if f.step == StepPayment {
		f.step = StepDetails
	}
}

// SelectMethod switches the payment method; the id must belong to one
// of the methods the flow was started with.
func (f *Flow) SelectMethod(id int) error {
	for _, m := range f.methods {
		if m.ID == id {
			f.methodID = id
			return nil
		}
	}
	return errors.Errorf("unknown payment method %d", id)
}

func (f *Flow) Method() int { return f.methodID }

func (f *Flow) SetTransactionID(id string) { f.transactionID = id }

func (f *Flow) TransactionID() string { return f.transactionID }

// CanSubmit reports whether the submit affordance is enabled: Payment
// step, a selected method, a non-blank transaction id, and no submit
// already in flight.
func (f *Flow) CanSubmit() bool {
	return f.step == StepPayment &&
		!f.inFlight &&
		f.methodID != 0 &&
		strings.TrimSpace(f.transactionID) != ""
}

// BeginSubmit marks the submission as in flight. It fails when the
// preconditions are unmet, so a double invocation cannot start two
// pipelines from one flow.
func (f *Flow) BeginSubmit() error {
	if !f.CanSubmit() {
		return errors.New("submission preconditions not met")
	}
	f.inFlight = true
	return nil
}

// FinishSubmit resolves the in-flight state: on success the flow is
// terminal, on failure it returns to an enabled Payment step so the
// user can retry.
func (f *Flow) FinishSubmit(ok bool) {
	f.inFlight = false
	if ok {
		f.step = StepSubmitted
	}
}
