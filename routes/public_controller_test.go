package routes

import (
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
			{ID: "name", Label: "Player Name", Type: model.FieldText, Required: true},
			{ID: "email", Label: "Email", Type: model.FieldEmail, Required: true},
		},
	}
}

func testMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: 7, Name: "bKash", Number: "017000", IsActive: true},
		{ID: 9, Name: "Nagad", Number: "018000", IsActive: true},
	}
}

func validSubmit() submitRequest {
	return submitRequest{
		Answers:         map[string]any{"name": "Rafi", "email": "rafi@example.com"},
		TransactionID:   "TXN123",
		PaymentMethodID: 9,
	}
}

func TestOfflineSelectsMissingAndInactiveForms(t *testing.T) {
	if !offline(model.RegistrationForm{}, false) {
		t.Error("missing form not offline")
	}

	frm := testForm()
	frm.IsActive = false
	if !offline(frm, true) {
		t.Error("inactive form not offline")
	}

	if offline(testForm(), true) {
		t.Error("active form reported offline")
	}
}

func TestSubmitGateBlocksInvalidDetails(t *testing.T) {
	req := validSubmit()
	req.Answers = map[string]any{"name": "Rafi", "email": "not-an-email"}

	fl, problems := submitGate(testForm(), testMethods(), req)
	if fl != nil {
		t.Fatal("gate passed with an invalid email")
	}
	if problems["email"] != "Invalid email" {
		t.Errorf("email problem: %q", problems["email"])
	}
	if _, ok := problems["name"]; ok {
		t.Errorf("valid field got a problem: %q", problems["name"])
	}
}

func TestSubmitGateRejectsUnknownMethod(t *testing.T) {
	req := validSubmit()
	req.PaymentMethodID = 42

	fl, problems := submitGate(testForm(), testMethods(), req)
	if fl != nil {
		t.Fatal("gate passed with an unknown payment method")
	}
	if problems["paymentMethodId"] != "Select a payment method" {
		t.Errorf("method problem: %q", problems["paymentMethodId"])
	}
}

func TestSubmitGateRejectsBlankTransactionID(t *testing.T) {
	for _, txid := range []string{"", "   "} {
		req := validSubmit()
		req.TransactionID = txid

		fl, problems := submitGate(testForm(), testMethods(), req)
		if fl != nil {
			t.Fatalf("gate passed with transaction id %q", txid)
		}
		if problems["transactionId"] != "Transaction ID is required" {
			t.Errorf("txid problem: %q", problems["transactionId"])
		}
	}
}

func TestSubmitGateReadiesTheFlow(t *testing.T) {
	fl, problems := submitGate(testForm(), testMethods(), validSubmit())
	if fl == nil {
		t.Fatalf("gate refused a valid payload: %v", problems)
	}
	if fl.Method() != 9 {
		t.Errorf("selected method: %d", fl.Method())
	}
	if fl.TransactionID() != "TXN123" {
		t.Errorf("transaction id: %q", fl.TransactionID())
	}
	if fl.Answers()["name"] != "Rafi" {
		t.Errorf("answers not carried: %v", fl.Answers())
	}
	// in flight: a second begin from the same flow must refuse
	if err := fl.BeginSubmit(); err == nil {
		t.Error("second submit started from one flow")
	}
}

// Unknown answer keys are dropped before the gate, so stray client
// payload never reaches the stored record.
func TestSubmitGateNormalizesAnswers(t *testing.T) {
	req := validSubmit()
	req.Answers["bogus"] = "ignore me"

	fl, _ := submitGate(testForm(), testMethods(), req)
	if fl == nil {
		t.Fatal("gate refused a valid payload")
	}
	if _, ok := fl.Answers()["bogus"]; ok {
		t.Error("unknown answer key kept")
	}
}
