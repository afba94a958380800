package form

import (
	"fmt"
	"strings"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

// SplitOptions turns a newline-delimited option blob (the admin editor
// uses a textarea) into a clean option list, discarding blank lines.
func SplitOptions(text string) []string {
	var options []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			options = append(options, line)
		}
	}
	return options
}

// NormalizeField cleans up an authored field before it is persisted:
// the label is trimmed, choice-type option lists are re-split so that
// newline-delimited blobs and blank entries collapse into clean values,
// and option lists on non-choice types are dropped.
func NormalizeField(f model.FormField) model.FormField {
	f.Label = strings.TrimSpace(f.Label)
	f.Placeholder = strings.TrimSpace(f.Placeholder)
	f.HelpText = strings.TrimSpace(f.HelpText)

	if !f.Type.HasOptions() {
		f.Options = nil
		return f
	}

	var options []string
	for _, opt := range f.Options {
		options = append(options, SplitOptions(opt)...)
	}
	f.Options = options
	return f
}

// ValidateSchema checks the authoring invariants of a field list and
// returns one problem message per violation. An empty result means the
// schema may be saved.
func ValidateSchema(fields []model.FormField) (problems []string) {
	if len(fields) == 0 {
		problems = append(problems, "form must have at least one field")
		return
	}

	seen := map[string]bool{}
	for i, f := range fields {
		where := fmt.Sprintf("field %d", i+1)
		if f.Label != "" {
			where = fmt.Sprintf("field %q", f.Label)
		}

		if f.Label == "" {
			problems = append(problems, where+": label is required")
		}
		if !f.Type.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown type %q", where, f.Type))
			continue
		}
		if f.Type.HasOptions() && len(f.Options) == 0 {
			problems = append(problems, fmt.Sprintf("%s: %s fields need at least one option", where, f.Type))
		}
		if !f.Type.HasOptions() && len(f.Options) > 0 {
			problems = append(problems, fmt.Sprintf("%s: %s fields cannot have options", where, f.Type))
		}

		if f.ID != "" {
			if seen[f.ID] {
				problems = append(problems, where+": duplicate field id")
			}
			seen[f.ID] = true
		}
	}
	return
}
