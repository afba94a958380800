package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

func testForm() model.RegistrationForm {
	return model.RegistrationForm{
		Title: "Valorant Cup",
		Fields: []model.FormField{
			{ID: "f-name", Label: "Name", Type: model.FieldText},
			{ID: "f-days", Label: "Days", Type: model.FieldCheckbox, Options: []string{"Sat", "Sun"}},
		},
	}
}

func TestFlatten(t *testing.T) {
	answers := map[string]any{
		"f-name": "Rin",
		"f-days": []string{"Sat", "Sun"},
	}

	flat := Flatten(testForm(), answers, "bKash", "TX123")

	want := map[string]string{
		"Name":           "Rin",
		"Days":           "Sat, Sun",
		"Payment Method": "bKash",
		"Transaction ID": "TX123",
	}
	if len(flat) != len(want) {
		t.Fatalf("got %v, want %v", flat, want)
	}
	for k, v := range want {
		if flat[k] != v {
			t.Errorf("%s: got %q, want %q", k, flat[k], v)
		}
	}
}

func TestFlattenUnansweredFieldsAreBlank(t *testing.T) {
	flat := Flatten(testForm(), map[string]any{}, "bKash", "TX123")
	if flat["Name"] != "" || flat["Days"] != "" {
		t.Errorf("unanswered fields not blank: %v", flat)
	}
}

func TestSendDeliversJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %s", err)
		}
	}))
	defer srv.Close()

	NewClient().Send(context.Background(), srv.URL, map[string]string{"Name": "Rin"})

	if got["Name"] != "Rin" {
		t.Errorf("payload: %v", got)
	}
}

// Failures of every kind are swallowed: Send must simply return.
func TestSendSwallowsFailures(t *testing.T) {
	client := NewClient()

	// webhook errors out
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	client.Send(context.Background(), srv.URL, map[string]string{"a": "b"})

	// webhook is unreachable
	srv.Close()
	client.Send(context.Background(), srv.URL, map[string]string{"a": "b"})

	// nothing configured
	client.Send(context.Background(), "", map[string]string{"a": "b"})

	// bad target
	client.Send(context.Background(), "://not-a-url", map[string]string{"a": "b"})
}

// The forward is detached from the request: a Send started on a
// severed context still delivers after the request's own context is
// long gone.
func TestSendOutlivesRequestContext(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %s", err)
		}
	}))
	defer srv.Close()

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	NewClient().Send(context.WithoutCancel(reqCtx), srv.URL, map[string]string{"Name": "Rin"})

	if got["Name"] != "Rin" {
		t.Errorf("payload: %v", got)
	}
}
