package form

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rePhone = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// Validate checks a single value against its field definition and
// returns a user-facing message, or "" when the value is acceptable.
// It is pure: the same (field, value) pair always yields the same
// result. Check order is fixed: the required check short-circuits
// everything, an empty optional value passes, and only then does the
// type-specific format check run.
func Validate(field model.FormField, value any) string {
	if IsEmpty(value) {
		if field.Required {
			return field.Label + " is required"
		}
		return ""
	}

	switch field.Type {
	case model.FieldEmail:
		if !reEmail.MatchString(Text(value)) {
			return "Invalid email"
		}
	case model.FieldTel:
		if !rePhone.MatchString(Text(value)) {
			return "Invalid phone"
		}
	case model.FieldNumber:
		// ParseFloat admits "NaN" and "Inf", which are not numbers a
		// registrant can mean.
		n, err := strconv.ParseFloat(strings.TrimSpace(Text(value)), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return "Invalid number"
		}
	}
	return ""
}

// ValidateAll is the batch gate: it validates every field against the
// answer map and returns the non-empty messages keyed by field ID. An
// empty result means the whole step passes.
func ValidateAll(fields []model.FormField, answers map[string]any) map[string]string {
	errs := map[string]string{}
	for _, f := range fields {
		if msg := Validate(f, answers[f.ID]); msg != "" {
			errs[f.ID] = msg
		}
	}
	return errs
}

// IsEmpty reports whether a submitted value counts as "no answer":
// nil, the empty string, or an empty list (checkbox).
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

// Text flattens a submitted value to a single string. Lists (checkbox
// answers) are joined with ", ", matching how they are relayed.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Text(item)
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

// List coerces a submitted value to a string list for checkbox fields.
func List(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s := Text(item); s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	}
	return []string{Text(value)}
}

// NormalizeAnswers reshapes a decoded answer map into the canonical
// form stored on a Submission: only known field IDs are kept, checkbox
// answers become []string and everything else a plain string.
func NormalizeAnswers(fields []model.FormField, answers map[string]any) map[string]any {
	norm := make(map[string]any, len(fields))
	for _, f := range fields {
		v, ok := answers[f.ID]
		if !ok {
			continue
		}
		if f.Type == model.FieldCheckbox {
			norm[f.ID] = List(v)
		} else {
			norm[f.ID] = Text(v)
		}
	}
	return norm
}
