package model

import "time"

// FieldType enumerates the supported registration-form controls.
// Renderer and validator both switch exhaustively over this set.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
	FieldTime     FieldType = "time"
)

// FieldTypes lists every supported type in a stable order.
var FieldTypes = []FieldType{
	FieldText, FieldEmail, FieldTel, FieldNumber, FieldTextarea,
	FieldSelect, FieldRadio, FieldCheckbox, FieldDate, FieldTime,
}

func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// HasOptions reports whether the type carries an option list.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// FormField is one input definition inside a registration form.
// Options must be non-empty exactly when the type is a choice type;
// this is enforced at authoring time, not at render time.
type FormField struct {
	ID          string    `json:"id,omitempty"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

// RegistrationForm is a named form bound to one game/event. Fields are
// ordered. Version backs the optimistic lock on whole-form saves.
type RegistrationForm struct {
	ID                   int         `json:"id,omitempty"`
	Version              int         `json:"version,omitempty"`
	GameSlug             string      `json:"gameSlug" validate:"required"`
	Title                string      `json:"title" validate:"required"`
	Description          string      `json:"description"`
	BannerURL            string      `json:"bannerUrl,omitempty"`
	LogoURL              string      `json:"logoUrl,omitempty"`
	GoogleSheetURL       string      `json:"googleSheetUrl" validate:"required,url"`
	IsActive             bool        `json:"isActive"`
	MaxRegistrations     *int        `json:"maxRegistrations,omitempty"`
	RegistrationDeadline *time.Time  `json:"registrationDeadline,omitempty"`
	Fields               []FormField `json:"fields" validate:"min=1"`
	CreatedAt            time.Time   `json:"createdAt,omitempty"`
}

// Submission is one user's answer set. Answers map FormField.ID to a
// string, or to a list of strings for checkbox fields. Created once,
// never mutated.
type Submission struct {
	ID              int            `json:"id,omitempty"`
	FormID          int            `json:"formId"`
	Answers         map[string]any `json:"answers"`
	TransactionID   string         `json:"transactionId"`
	PaymentMethodID int            `json:"paymentMethodId"`
	CreatedAt       time.Time      `json:"createdAt,omitempty"`
}

// PaymentMethod is an administrator-configured receiving account. The
// registration flow only ever sees active ones.
type PaymentMethod struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name" validate:"required"`
	Number       string `json:"number" validate:"required"`
	AccountType  string `json:"accountType"`
	Instructions string `json:"instructions"`
	LogoURL      string `json:"logoUrl,omitempty"`
	IsActive     bool   `json:"isActive"`
	Position     int    `json:"position"`
}

type Activity struct {
	ID          int        `json:"id,omitempty"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	HeldOn      *time.Time `json:"heldOn,omitempty"`
	Position    int        `json:"position"`
}

type Game struct {
	ID          int    `json:"id,omitempty"`
	Slug        string `json:"slug" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Position    int    `json:"position"`
}

type CommitteeMember struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn string `json:"linkedin,omitempty"`
	Position int    `json:"position"`
}

type Sponsor struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Tier     string `json:"tier"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Website  string `json:"website,omitempty"`
	Position int    `json:"position"`
}

type ContactMessage struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
