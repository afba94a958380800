package form

import (
	"testing"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

func field(ftype model.FieldType, required bool) model.FormField {
	return model.FormField{ID: "f1", Label: "Player Name", Type: ftype, Required: required}
}

func TestValidateRequired(t *testing.T) {
	for _, ftype := range model.FieldTypes {
		var empty any = ""
		if ftype == model.FieldCheckbox {
			empty = []string{}
		}

		if msg := Validate(field(ftype, true), empty); msg == "" {
			t.Errorf("%s: required field accepted empty value", ftype)
		} else if msg != "Player Name is required" {
			t.Errorf("%s: unexpected message %q", ftype, msg)
		}

		if msg := Validate(field(ftype, false), empty); msg != "" {
			t.Errorf("%s: optional field rejected empty value: %q", ftype, msg)
		}

		if msg := Validate(field(ftype, false), nil); msg != "" {
			t.Errorf("%s: optional field rejected nil value: %q", ftype, msg)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	f := field(model.FieldEmail, false)

	for _, valid := range []string{"player@example.com", "a.b+c@sub.domain.org"} {
		if msg := Validate(f, valid); msg != "" {
			t.Errorf("%q rejected: %q", valid, msg)
		}
	}
	for _, invalid := range []string{"abc", "a@b", "@b.com", "a b@c.com"} {
		if msg := Validate(f, invalid); msg != "Invalid email" {
			t.Errorf("%q: got %q, want %q", invalid, msg, "Invalid email")
		}
	}
}

func TestValidateTel(t *testing.T) {
	f := field(model.FieldTel, false)

	if msg := Validate(f, "+1 (234) 567-890"); msg != "" {
		t.Errorf("valid phone rejected: %q", msg)
	}
	for _, invalid := range []string{"call me", "123abc", "0171x234"} {
		if msg := Validate(f, invalid); msg != "Invalid phone" {
			t.Errorf("%q: got %q, want %q", invalid, msg, "Invalid phone")
		}
	}
}

func TestValidateNumber(t *testing.T) {
	f := field(model.FieldNumber, false)

	for _, valid := range []string{"42", "3.14", "-7"} {
		if msg := Validate(f, valid); msg != "" {
			t.Errorf("%q rejected: %q", valid, msg)
		}
	}
	for _, invalid := range []string{"12abc", "NaN", "Inf", "-Inf", "+infinity"} {
		if msg := Validate(f, invalid); msg != "Invalid number" {
			t.Errorf("%q: got %q, want %q", invalid, msg, "Invalid number")
		}
	}
}

func TestValidateRequiredShortCircuits(t *testing.T) {
	f := field(model.FieldEmail, true)
	if msg := Validate(f, ""); msg != "Player Name is required" {
		t.Errorf("required check did not run first: %q", msg)
	}
}

func TestValidateNoFormatCheckForPlainTypes(t *testing.T) {
	for _, ftype := range []model.FieldType{model.FieldText, model.FieldTextarea, model.FieldDate, model.FieldTime} {
		if msg := Validate(field(ftype, true), "anything at all"); msg != "" {
			t.Errorf("%s: non-empty value rejected: %q", ftype, msg)
		}
	}
}

func TestValidateIsPure(t *testing.T) {
	f := field(model.FieldEmail, true)
	first := Validate(f, "not-an-email")
	second := Validate(f, "not-an-email")
	if first != second {
		t.Errorf("validate not idempotent: %q then %q", first, second)
	}
}

func TestValidateAllBatchGate(t *testing.T) {
	fields := make([]model.FormField, 0, 10)
	answers := map[string]any{}
	for i := 0; i < 10; i++ {
		f := model.FormField{
			ID:       string(rune('a' + i)),
			Label:    "Field",
			Type:     model.FieldText,
			Required: true,
		}
		fields = append(fields, f)
		answers[f.ID] = "ok"
	}

	if errs := ValidateAll(fields, answers); len(errs) != 0 {
		t.Fatalf("all-valid batch reported errors: %v", errs)
	}

	// one invalid field among ten blocks the gate
	answers["e"] = ""
	errs := ValidateAll(fields, answers)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if _, ok := errs["e"]; !ok {
		t.Fatalf("error not attributed to the failing field: %v", errs)
	}
}

func TestValidateCheckboxList(t *testing.T) {
	f := model.FormField{
		ID: "c", Label: "Games", Type: model.FieldCheckbox, Required: true,
		Options: []string{"Dota", "Valorant"},
	}

	if msg := Validate(f, []string{}); msg != "Games is required" {
		t.Errorf("empty list: got %q", msg)
	}
	if msg := Validate(f, []any{}); msg != "Games is required" {
		t.Errorf("empty decoded list: got %q", msg)
	}
	if msg := Validate(f, []string{"Dota"}); msg != "" {
		t.Errorf("non-empty list rejected: %q", msg)
	}
}

func TestNormalizeAnswers(t *testing.T) {
	fields := []model.FormField{
		{ID: "name", Label: "Name", Type: model.FieldText},
		{ID: "games", Label: "Games", Type: model.FieldCheckbox, Options: []string{"Dota", "Valorant"}},
	}
	// decoded JSON delivers []any and unknown keys
	answers := map[string]any{
		"name":    "Rin",
		"games":   []any{"Dota", "Valorant"},
		"stowawy": "dropped",
	}

	norm := NormalizeAnswers(fields, answers)
	if len(norm) != 2 {
		t.Fatalf("unknown keys kept: %v", norm)
	}
	if norm["name"] != "Rin" {
		t.Errorf("name: %v", norm["name"])
	}
	games, ok := norm["games"].([]string)
	if !ok || len(games) != 2 || games[0] != "Dota" || games[1] != "Valorant" {
		t.Errorf("games: %v", norm["games"])
	}
}

func TestTextJoinsLists(t *testing.T) {
	if got := Text([]string{"a", "b"}); got != "a, b" {
		t.Errorf("got %q", got)
	}
	if got := Text(nil); got != "" {
		t.Errorf("got %q", got)
	}
	if got := Text(42.0); got != "42" {
		t.Errorf("got %q", got)
	}
}
