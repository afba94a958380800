package form

import (
	"bytes"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

// Renderer turns form definitions into HTML controls. Each FieldType
// maps to exactly one control shape; unknown types are an error rather
// than a silent fallback.
type Renderer struct {
	tmpl *template.Template
}

// FieldView is the data one control template renders from.
type FieldView struct {
	Field   model.FormField
	Value   any
	Error   string
	Control template.HTML
}

type PageView struct {
	Form           model.RegistrationForm
	Methods        []model.PaymentMethod
	SelectedMethod int
	FieldsHTML     template.HTML
}

func NewRenderer() *Renderer {
	tmpl := template.New("form").Funcs(template.FuncMap{
		"str":      Text,
		"selected": func(value any, option string) bool { return Text(value) == option },
		"checked": func(value any, option string) bool {
			for _, v := range List(value) {
				if v == option {
					return true
				}
			}
			return false
		},
	})
	for _, src := range []string{
		inputTmpl, textareaTmpl, selectTmpl, radioTmpl, checkboxTmpl,
		fieldTmpl, registerPageTmpl, offlinePageTmpl,
	} {
		tmpl = template.Must(tmpl.Parse(src))
	}
	return &Renderer{tmpl: tmpl}
}

// controlName maps a field type to its control template. The switch is
// exhaustive over model.FieldTypes so a new type cannot slip through
// unhandled.
func controlName(t model.FieldType) (string, error) {
	switch t {
	case model.FieldTextarea:
		return "textarea", nil
	case model.FieldSelect:
		return "select", nil
	case model.FieldRadio:
		return "radio", nil
	case model.FieldCheckbox:
		return "checkbox", nil
	case model.FieldText, model.FieldEmail, model.FieldTel,
		model.FieldNumber, model.FieldDate, model.FieldTime:
		return "input", nil
	}
	return "", errors.Errorf("unsupported field type %q", t)
}

// Field renders one control with its label, help text and inline error.
func (r *Renderer) Field(f model.FormField, value any, errMsg string) (template.HTML, error) {
	name, err := controlName(f.Type)
	if err != nil {
		return "", err
	}

	var control bytes.Buffer
	view := FieldView{Field: f, Value: value, Error: errMsg}
	if err := r.tmpl.ExecuteTemplate(&control, name, view); err != nil {
		return "", errors.Wrapf(err, "render %s control", name)
	}
	view.Control = template.HTML(control.String())

	var out bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&out, "field", view); err != nil {
		return "", errors.Wrap(err, "render field")
	}
	return template.HTML(out.String()), nil
}

// Fields renders a whole schema in order, reflecting current values and
// per-field errors.
func (r *Renderer) Fields(fields []model.FormField, answers map[string]any, errs map[string]string) (template.HTML, error) {
	var out bytes.Buffer
	for _, f := range fields {
		html, err := r.Field(f, answers[f.ID], errs[f.ID])
		if err != nil {
			return "", err
		}
		out.WriteString(string(html))
		out.WriteByte('\n')
	}
	return template.HTML(out.String()), nil
}

// RegisterPage writes the full server-rendered registration page.
func (r *Renderer) RegisterPage(w io.Writer, frm model.RegistrationForm, methods []model.PaymentMethod) error {
	fieldsHTML, err := r.Fields(frm.Fields, nil, nil)
	if err != nil {
		return err
	}

	selected := 0
	if len(methods) > 0 {
		selected = methods[0].ID
	}
	view := PageView{
		Form:           frm,
		Methods:        methods,
		SelectedMethod: selected,
		FieldsHTML:     fieldsHTML,
	}
	return errors.Wrap(r.tmpl.ExecuteTemplate(w, "register", view), "render register page")
}

// OfflinePage writes the fixed terminal page shown when a form is
// missing or inactive.
func (r *Renderer) OfflinePage(w io.Writer) error {
	return errors.Wrap(r.tmpl.ExecuteTemplate(w, "offline", nil), "render offline page")
}
