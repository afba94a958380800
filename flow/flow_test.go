package flow

import (
	"errors"
	"testing"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

func testForm() model.RegistrationForm {
	return model.RegistrationForm{
		ID:       1,
		GameSlug: "valorant",
		Title:    "Valorant Cup",
		IsActive: true,
		Fields: []model.FormField{
			{ID: "name", Label: "Name", Type: model.FieldText, Required: true},
			{ID: "email", Label: "Email", Type: model.FieldEmail},
		},
	}
}

func testMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: 7, Name: "bKash", Number: "017000", IsActive: true},
		{ID: 9, Name: "Nagad", Number: "018000", IsActive: true},
	}
}

func TestFlowStartsAtDetailsWithFirstMethod(t *testing.T) {
	f := New(testForm(), testMethods())

	if f.Current() != StepDetails {
		t.Errorf("start step: %s", f.Current())
	}
	if f.Method() != 7 {
		t.Errorf("default method: %d", f.Method())
	}
}

// Required text field left empty blocks the gate; the optional email
// field does not pick up an error.
func TestFlowBlocksOnRequiredField(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetAnswer("email", "")

	err := f.Next()
	if !errors.Is(err, ErrInvalidDetails) {
		t.Fatalf("expected ErrInvalidDetails, got %v", err)
	}
	if f.Current() != StepDetails {
		t.Errorf("advanced despite invalid details: %s", f.Current())
	}
	if f.FieldError("name") == "" {
		t.Error("no inline error on the empty required field")
	}
	if f.FieldError("email") != "" {
		t.Errorf("unrelated field got an error: %q", f.FieldError("email"))
	}
}

func TestFlowAdvancesWhenAllValid(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetAnswer("name", "Rin")

	if err := f.Next(); err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if f.Current() != StepPayment {
		t.Errorf("step: %s", f.Current())
	}
}

func TestFlowSetAnswerRevalidates(t *testing.T) {
	f := New(testForm(), testMethods())

	if msg := f.SetAnswer("email", "abc"); msg != "Invalid email" {
		t.Errorf("live validation: %q", msg)
	}
	if msg := f.SetAnswer("email", "rin@example.com"); msg != "" {
		t.Errorf("corrected value still flagged: %q", msg)
	}
	if f.FieldError("email") != "" {
		t.Errorf("stale error kept: %q", f.FieldError("email"))
	}
}

func TestFlowBackPreservesValues(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetAnswer("name", "Rin")
	f.SetAnswer("email", "rin@example.com")
	if err := f.Next(); err != nil {
		t.Fatal(err)
	}
	f.SetTransactionID("TX123")

	f.Back()
	if f.Current() != StepDetails {
		t.Fatalf("step: %s", f.Current())
	}
	if f.Answer("name") != "Rin" || f.Answer("email") != "rin@example.com" {
		t.Errorf("answers lost on back navigation: %v", f.Answers())
	}
	if f.TransactionID() != "TX123" {
		t.Errorf("transaction id lost: %q", f.TransactionID())
	}
}

// Submit stays unreachable until a method is selected and the
// transaction id is non-blank.
func TestFlowSubmitPreconditions(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetAnswer("name", "Rin")
	if err := f.Next(); err != nil {
		t.Fatal(err)
	}

	if f.CanSubmit() {
		t.Error("submit enabled with empty transaction id")
	}
	f.SetTransactionID("   ")
	if f.CanSubmit() {
		t.Error("submit enabled with whitespace transaction id")
	}
	f.SetTransactionID("TX123")
	if !f.CanSubmit() {
		t.Error("submit disabled with all preconditions met")
	}
}

func TestFlowSubmitNotReachableFromDetails(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetTransactionID("TX123")
	if f.CanSubmit() {
		t.Error("submit reachable from details step")
	}
	if err := f.BeginSubmit(); err == nil {
		t.Error("BeginSubmit succeeded from details step")
	}
}

func TestFlowSelectMethod(t *testing.T) {
	f := New(testForm(), testMethods())

	if err := f.SelectMethod(9); err != nil {
		t.Fatalf("known method rejected: %v", err)
	}
	if f.Method() != 9 {
		t.Errorf("method: %d", f.Method())
	}
	if err := f.SelectMethod(42); err == nil {
		t.Error("unknown method accepted")
	}
}

func TestFlowInFlightSubmit(t *testing.T) {
	f := New(testForm(), testMethods())
	f.SetAnswer("name", "Rin")
	if err := f.Next(); err != nil {
		t.Fatal(err)
	}
	f.SetTransactionID("TX123")

	if err := f.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	if f.CanSubmit() {
		t.Error("submit enabled while in flight")
	}
	if err := f.BeginSubmit(); err == nil {
		t.Error("second BeginSubmit started while in flight")
	}

	// failed pipeline: back to an enabled payment step
	f.FinishSubmit(false)
	if f.Current() != StepPayment {
		t.Errorf("step after failed submit: %s", f.Current())
	}
	if !f.CanSubmit() {
		t.Error("retry not possible after failed submit")
	}

	// successful pipeline: terminal
	if err := f.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	f.FinishSubmit(true)
	if f.Current() != StepSubmitted {
		t.Errorf("step after successful submit: %s", f.Current())
	}
}
