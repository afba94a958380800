package routes

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

// fetchFormWhere loads one registration form with its ordered field
// list. The clause filters on the outer form row; found is false when
// no form matched.
func fetchFormWhere(ctx context.Context, db *sql.DB, where string, arg any) (frm model.RegistrationForm, found bool, err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT
			s.id, s.version, s.game_slug, s.title, s.description,
			s.banner_url, s.logo_url, s.google_sheet_url, s.is_active,
			s.max_registrations, s.registration_deadline, s.created_at,
			f.id, f.type, f.label, f.required, f.placeholder, f.help_text, f.options
		FROM registration_form s
		LEFT OUTER JOIN form_field f ON (s.id = f.form_id)
		WHERE `+where+`
		ORDER BY f.position`,
		arg,
	)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		found = true

		var fid, ftype, flabel, fplaceholder, fhelp, fopts sql.NullString
		var frequired sql.NullBool
		err = rows.Scan(
			&frm.ID, &frm.Version, &frm.GameSlug, &frm.Title, &frm.Description,
			&frm.BannerURL, &frm.LogoURL, &frm.GoogleSheetURL, &frm.IsActive,
			&frm.MaxRegistrations, &frm.RegistrationDeadline, &frm.CreatedAt,
			&fid, &ftype, &flabel, &frequired, &fplaceholder, &fhelp, &fopts,
		)
		if err != nil {
			return
		}

		if !fid.Valid {
			// form without fields yet
			continue
		}
		fld := model.FormField{
			ID:          fid.String,
			Type:        model.FieldType(ftype.String),
			Label:       flabel.String,
			Required:    frequired.Bool,
			Placeholder: fplaceholder.String,
			HelpText:    fhelp.String,
		}
		if fopts.String != "" {
			if err = json.Unmarshal([]byte(fopts.String), &fld.Options); err != nil {
				return
			}
		}
		frm.Fields = append(frm.Fields, fld)
	}
	err = rows.Err()
	return
}

// insertFields writes a form's field list in order, minting an id for
// any field that does not have one yet.
func insertFields(ctx context.Context, tx *sql.Tx, formID int, fields []model.FormField) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO form_field (id, form_id, position, type, label, required, placeholder, help_text, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range fields {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}

		var optionsJson []byte
		if f.Options != nil {
			optionsJson, err = json.Marshal(f.Options)
			if err != nil {
				return err
			}
		}
		_, err = stmt.ExecContext(ctx,
			f.ID, formID, i, string(f.Type), f.Label, f.Required,
			f.Placeholder, f.HelpText, string(optionsJson),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// fetchPaymentMethods lists payment methods in display order,
// optionally filtered down to active ones.
func fetchPaymentMethods(ctx context.Context, db *sql.DB, activeOnly bool) ([]model.PaymentMethod, error) {
	query := `
		SELECT id, name, number, account_type, instructions, logo_url, is_active, position
		FROM payment_method`
	if activeOnly {
		query += `
		WHERE is_active`
	}
	query += `
		ORDER BY position, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []model.PaymentMethod{}
	for rows.Next() {
		m := model.PaymentMethod{}
		err = rows.Scan(&m.ID, &m.Name, &m.Number, &m.AccountType, &m.Instructions, &m.LogoURL, &m.IsActive, &m.Position)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
